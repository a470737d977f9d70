package skemora

import (
	"bytes"
	"context"

	"github.com/goccy/go-json"
)

// ValidateJSON decodes raw JSON bytes and validates the result against s.
// Numbers are decoded as json.Number to avoid float64 precision loss.
// Malformed JSON surfaces as a single parse_error issue at the root.
func ValidateJSON(ctx context.Context, s Schema, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return s.Validate(ctx, v)
}
