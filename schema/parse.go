package schema

import (
	"fmt"
	"strings"
)

var primitiveKinds = map[string]Kind{
	"String":   KindString,
	"Integer":  KindInteger,
	"Float":    KindFloat,
	"Boolean":  KindBool,
	"Date":     KindDate,
	"DateTime": KindDateTime,
	"Object":   KindObject,
	"File":     KindFile,
}

// Parse parses a type expression into a Descriptor.
//
// The grammar:
//
//	type  = primitive | "Array<" type ">" | "Map<String," type ">" | model
//	model = an identifier that is not a primitive name
func Parse(expr string) (*Descriptor, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil, fmt.Errorf("schema: empty type expression")
	}

	if inner, ok := strings.CutPrefix(s, "Array<"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return nil, fmt.Errorf("schema: unterminated Array in %q", expr)
		}
		elem, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return &Descriptor{Kind: KindArray, Elem: elem}, nil
	}

	if inner, ok := strings.CutPrefix(s, "Map<"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return nil, fmt.Errorf("schema: unterminated Map in %q", expr)
		}
		key, val, err := splitMapArgs(inner)
		if err != nil {
			return nil, fmt.Errorf("schema: %v in %q", err, expr)
		}
		if strings.TrimSpace(key) != "String" {
			return nil, fmt.Errorf("schema: map keys must be String, got %q in %q", key, expr)
		}
		elem, err := Parse(val)
		if err != nil {
			return nil, err
		}
		return &Descriptor{Kind: KindMap, Elem: elem}, nil
	}

	if kind, ok := primitiveKinds[s]; ok {
		return &Descriptor{Kind: kind}, nil
	}

	if !isIdentifier(s) {
		return nil, fmt.Errorf("schema: invalid type expression %q", expr)
	}
	return &Descriptor{Kind: KindModel, Name: s}, nil
}

// MustParse is Parse for package-level descriptor variables in
// generated code; it panics on malformed expressions.
func MustParse(expr string) *Descriptor {
	d, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return d
}

// splitMapArgs splits "K,V" on the first comma outside angle brackets.
func splitMapArgs(s string) (key, val string, err error) {
	depth := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return s[:i], s[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("missing map value type")
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
