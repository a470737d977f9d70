package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Decode parses a JSON document into a Schema tree.
// Structural conformity (required vs properties, items presence, ...) is not
// checked here; that is the compiler's job.
func Decode(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("jsonschema: invalid JSON: %w", err)
	}
	return &s, nil
}

// DecodeYAML parses the first non-empty document of a YAML stream into a
// Schema tree. YAML maps with non-string keys are dropped during
// normalization, matching JSON semantics.
func DecodeYAML(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("jsonschema: invalid YAML: %w", err)
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			continue
		}
		// Re-marshal through JSON so struct tags apply uniformly.
		b, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: normalize YAML: %w", err)
		}
		return Decode(b)
	}
	return nil, errors.New("jsonschema: no schema document found in YAML input")
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
