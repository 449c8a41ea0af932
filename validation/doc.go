// Package validation provides input validation for tradekit configuration
// and endpoint parameters.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for configuration; endpoint wrappers use the programmatic form to
// reject missing required parameters before a request is built.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Host   string `validate:"required"`
//	    Scheme string `validate:"oneof=http https"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("symbol", symbol)
//	err := v.Validate()
package validation
