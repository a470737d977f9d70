package jsonschema

// Schema is a minimal JSON Schema representation (draft-07 subset) used both
// as compiler input and for export. Keep this struct small and extend
// incrementally.
type Schema struct {
	// Core
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}

// RequiredSet returns the required names as a set for O(1) lookup.
func (s *Schema) RequiredSet() map[string]struct{} {
	if len(s.Required) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(s.Required))
	for _, n := range s.Required {
		out[n] = struct{}{}
	}
	return out
}
