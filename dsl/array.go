package dsl

import (
	"context"
	"strconv"

	skemora "github.com/skemora/skemora"
	"github.com/skemora/skemora/i18n"
	js "github.com/skemora/skemora/jsonschema"
)

// Array returns a schema validating homogeneous arrays: every element is
// checked against elem. Element issues are rebased under their index.
func Array(elem skemora.Schema) skemora.Schema { return arraySchema{elem: elem} }

type arraySchema struct{ elem skemora.Schema }

func (a arraySchema) Validate(ctx context.Context, v any) error {
	src, ok := v.([]any)
	if !ok {
		return skemora.Issues{{Path: "/", Code: skemora.CodeInvalidType, Message: i18n.T(skemora.CodeInvalidType, nil), Hint: "expected array"}}
	}
	var iss skemora.Issues
	for i := range src {
		if err := a.elem.Validate(ctx, src[i]); err != nil {
			iss = skemora.AppendIssues(iss, skemora.RebaseIssues("/"+strconv.Itoa(i), err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (a arraySchema) JSONSchema() (*js.Schema, error) {
	items, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: items}, nil
}
