package dsl

import (
	"context"

	skemora "github.com/skemora/skemora"
	js "github.com/skemora/skemora/jsonschema"
)

// Optional wraps s to mark an object field as allowed to be absent. Presence
// is decided by the enclosing object; when the field is present its value is
// validated by s unchanged (Optional does not imply nullable).
func Optional(s skemora.Schema) skemora.Schema { return optionalSchema{elem: s} }

type optionalSchema struct{ elem skemora.Schema }

func (o optionalSchema) Validate(ctx context.Context, v any) error { return o.elem.Validate(ctx, v) }

// Optionality lives in the parent's required list, so the export is the
// element's own schema.
func (o optionalSchema) JSONSchema() (*js.Schema, error) { return o.elem.JSONSchema() }

// IsOptional reports whether s is an Optional wrapper.
func IsOptional(s skemora.Schema) bool {
	_, ok := s.(optionalSchema)
	return ok
}

// Unwrap returns the schema inside an Optional wrapper, or s itself.
func Unwrap(s skemora.Schema) skemora.Schema {
	if o, ok := s.(optionalSchema); ok {
		return o.elem
	}
	return s
}

// Describe attaches a human-readable description to s. The description is
// metadata only: it appears in the JSON Schema export and never affects
// validation. An empty text returns s unchanged.
func Describe(s skemora.Schema, text string) skemora.Schema {
	if text == "" {
		return s
	}
	return describedSchema{elem: s, text: text}
}

type describedSchema struct {
	elem skemora.Schema
	text string
}

func (d describedSchema) Validate(ctx context.Context, v any) error { return d.elem.Validate(ctx, v) }

func (d describedSchema) JSONSchema() (*js.Schema, error) {
	out, err := d.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = &js.Schema{}
	}
	out.Description = d.text
	return out, nil
}

// DescriptionOf returns the description attached to s, looking through
// Optional wrappers. Empty when none is attached.
func DescriptionOf(s skemora.Schema) string {
	switch t := s.(type) {
	case describedSchema:
		return t.text
	case optionalSchema:
		return DescriptionOf(t.elem)
	default:
		return ""
	}
}
