package convert

import "strings"

// Reasons carried by SchemaError. The set is fixed; callers may switch on it.
const (
	ReasonUnknownType         = "unknown type"
	ReasonRequiredNotDeclared = "required field not declared in properties"
	ReasonEmptyEnum           = "empty enum"
	ReasonMissingItems        = "missing items for array type"
	ReasonMissingProperties   = "missing properties for object type"
)

// SchemaError reports a malformed or unsatisfiable input schema. These are
// definition-time bugs in the supplied schema, never transient conditions:
// retrying the same input cannot change the outcome.
type SchemaError struct {
	// Path holds property names and "items" markers from the root down to the
	// offending node. Empty for the root itself.
	Path   []string
	Reason string
}

func (e *SchemaError) Error() string {
	return "convert: schema error at " + e.Pointer() + ": " + e.Reason
}

// Pointer renders the node path as a JSON-Pointer-like string ("/" for root).
func (e *SchemaError) Pointer() string {
	return "/" + strings.Join(e.Path, "/")
}
