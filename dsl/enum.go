package dsl

import (
	"context"
	"strings"

	skemora "github.com/skemora/skemora"
	"github.com/skemora/skemora/i18n"
	js "github.com/skemora/skemora/jsonschema"
)

// Enum returns a schema accepting exactly the given string literals, in order.
// Membership replaces the base-type check: any non-member fails, any member
// passes.
func Enum(values ...string) skemora.Schema {
	return enumSchema{values: append([]string(nil), values...)}
}

type enumSchema struct{ values []string }

func (e enumSchema) Validate(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok {
		return skemora.Issues{{Path: "/", Code: skemora.CodeInvalidType, Message: i18n.T(skemora.CodeInvalidType, nil), Hint: "expected string"}}
	}
	for _, it := range e.values {
		if it == s {
			return nil
		}
	}
	return skemora.Issues{{Path: "/", Code: skemora.CodeInvalidEnum, Message: i18n.T(skemora.CodeInvalidEnum, nil), Hint: "allowed: " + strings.Join(e.values, ", ")}}
}

func (e enumSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Enum: append([]string(nil), e.values...)}, nil
}
