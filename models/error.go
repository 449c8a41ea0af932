package models

import "github.com/kbukum/tradekit/schema"

// APIError is the error envelope the exchange returns on failed calls:
//
//	{"error": {"message": "...", "name": "..."}}
type APIError struct {
	Error *APIErrorDetail
}

// APIErrorDetail is the inner error payload.
type APIErrorDetail struct {
	Message string
	Name    string
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "APIError",
		New:  func() any { return &APIError{} },
		Fields: []schema.FieldSpec{
			{Attr: "error", Wire: "error", Type: schema.MustParse("APIErrorDetail"),
				Set: func(m, v any) { m.(*APIError).Error = v.(*APIErrorDetail) }},
		},
	})

	schema.Register(&schema.ModelSpec{
		Name: "APIErrorDetail",
		New:  func() any { return &APIErrorDetail{} },
		Fields: []schema.FieldSpec{
			{Attr: "message", Wire: "message", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*APIErrorDetail).Message = v.(string) }},
			{Attr: "name", Wire: "name", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*APIErrorDetail).Name = v.(string) }},
		},
	})
}
