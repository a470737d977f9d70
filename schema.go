package skemora

import (
	"context"

	js "github.com/skemora/skemora/jsonschema"
)

// Schema validates an already-decoded JSON value (map[string]any, []any,
// string, bool, numbers, nil) against a fixed shape. Implementations are
// immutable after construction and safe for concurrent use.
type Schema interface {
	// Validate checks v and returns nil on success or Issues describing every
	// violation found, with JSON Pointer paths relative to v.
	Validate(ctx context.Context, v any) error
	// JSONSchema exports the structural description of this schema. The export
	// is deterministic: equal trees yield equal documents.
	JSONSchema() (*js.Schema, error)
}

// UnknownPolicy controls how unknown object keys are handled.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                            // Drop unknown keys.
	UnknownPassthrough                      // Accept unknown keys as-is.
)
