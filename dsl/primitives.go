package dsl

import (
	"context"
	"encoding/json"
	"reflect"

	skemora "github.com/skemora/skemora"
	"github.com/skemora/skemora/i18n"
	js "github.com/skemora/skemora/jsonschema"
)

// String returns the minimal string schema implementation.
func String() skemora.Schema { return stringSchema{} }

// Number returns the number schema. It accepts json.Number, Go floats and Go
// integer kinds so that both decoder outputs and plain Go values validate.
func Number() skemora.Schema { return numberSchema{} }

// Bool returns the minimal bool schema implementation.
func Bool() skemora.Schema { return boolSchema{} }

// Null returns the schema accepting only JSON null.
func Null() skemora.Schema { return nullSchema{} }

type stringSchema struct{}

func (stringSchema) Validate(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return skemora.Issues{{Path: "/", Code: skemora.CodeInvalidType, Message: i18n.T(skemora.CodeInvalidType, nil), Hint: "expected string"}}
	}
	return nil
}

func (stringSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

type numberSchema struct{}

func (numberSchema) Validate(ctx context.Context, v any) error {
	switch v.(type) {
	case json.Number, float64, float32:
		return nil
	}
	if v != nil {
		switch reflect.TypeOf(v).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return nil
		}
	}
	return skemora.Issues{{Path: "/", Code: skemora.CodeInvalidType, Message: i18n.T(skemora.CodeInvalidType, nil), Hint: "expected number"}}
}

func (numberSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

type boolSchema struct{}

func (boolSchema) Validate(ctx context.Context, v any) error {
	if _, ok := v.(bool); !ok {
		return skemora.Issues{{Path: "/", Code: skemora.CodeInvalidType, Message: i18n.T(skemora.CodeInvalidType, nil), Hint: "expected boolean"}}
	}
	return nil
}

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

type nullSchema struct{}

func (nullSchema) Validate(ctx context.Context, v any) error {
	if v != nil {
		return skemora.Issues{{Path: "/", Code: skemora.CodeInvalidType, Message: i18n.T(skemora.CodeInvalidType, nil), Hint: "expected null"}}
	}
	return nil
}

func (nullSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "null"}, nil }
