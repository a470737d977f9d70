// Package convert compiles a restricted JSON Schema (draft-07 subset:
// object/string/number/boolean/null/array/enum, with required and nested
// properties/items) into a validation schema tree. Conversion is one-way,
// pure and deterministic; malformed input fails with *SchemaError carrying
// the offending node's path and no partial tree is ever returned.
package convert

import (
	"errors"
	"sort"

	skemora "github.com/skemora/skemora"
	"github.com/skemora/skemora/dsl"
	js "github.com/skemora/skemora/jsonschema"
)

// Compile translates one JSON Schema node tree into one validation schema
// tree. Descriptions are carried over as metadata; property keys absent from
// required are wrapped in dsl.Optional.
func Compile(node *js.Schema, opts Options) (skemora.Schema, Diag, error) {
	d := &simpleDiag{}
	if node == nil {
		return nil, d, errors.New("convert: nil schema")
	}
	s, err := compileNode(node, nil, opts, d)
	if err != nil {
		return nil, d, err
	}
	return s, d, nil
}

// JSON decodes raw JSON bytes into a schema node tree and compiles it.
func JSON(data []byte, opts Options) (skemora.Schema, Diag, error) {
	node, err := js.Decode(data)
	if err != nil {
		return nil, &simpleDiag{}, err
	}
	return Compile(node, opts)
}

// YAML decodes the first schema document of a YAML stream and compiles it.
func YAML(data []byte, opts Options) (skemora.Schema, Diag, error) {
	node, err := js.DecodeYAML(data)
	if err != nil {
		return nil, &simpleDiag{}, err
	}
	return Compile(node, opts)
}

func compileNode(node *js.Schema, path []string, opts Options, d *simpleDiag) (skemora.Schema, error) {
	if node == nil {
		return nil, &SchemaError{Path: clonePath(path), Reason: ReasonUnknownType}
	}
	if node.Enum != nil {
		switch node.Type {
		case "", "string", "number", "integer", "boolean", "null":
			if len(node.Enum) == 0 {
				return nil, &SchemaError{Path: clonePath(path), Reason: ReasonEmptyEnum}
			}
			if node.Type == "" {
				d.warnf("enum without explicit type at %s treated as string enum", renderPath(path))
			}
			// enum membership is stricter than the base type check, so it
			// replaces it
			return dsl.Describe(dsl.Enum(node.Enum...), node.Description), nil
		default:
			d.warnf("enum on %s type at %s ignored", node.Type, renderPath(path))
		}
	}
	switch node.Type {
	case "string":
		return dsl.Describe(dsl.String(), node.Description), nil
	case "number", "integer":
		return dsl.Describe(dsl.Number(), node.Description), nil
	case "boolean":
		return dsl.Describe(dsl.Bool(), node.Description), nil
	case "null":
		return dsl.Describe(dsl.Null(), node.Description), nil
	case "object":
		return compileObject(node, path, opts, d)
	case "array":
		if node.Items == nil {
			return nil, &SchemaError{Path: clonePath(path), Reason: ReasonMissingItems}
		}
		elem, err := compileNode(node.Items, childPath(path, "items"), opts, d)
		if err != nil {
			return nil, err
		}
		return dsl.Describe(dsl.Array(elem), node.Description), nil
	default:
		return nil, &SchemaError{Path: clonePath(path), Reason: ReasonUnknownType}
	}
}

func compileObject(node *js.Schema, path []string, opts Options, d *simpleDiag) (skemora.Schema, error) {
	if node.Properties == nil {
		return nil, &SchemaError{Path: clonePath(path), Reason: ReasonMissingProperties}
	}
	// required must reference declared properties; checked up front so the
	// offender is reported before any child conversion work
	for _, name := range node.Required {
		if _, ok := node.Properties[name]; !ok {
			return nil, &SchemaError{Path: childPath(path, name), Reason: ReasonRequiredNotDeclared}
		}
	}
	req := node.RequiredSet()

	b := dsl.Object()
	switch opts.Unknown {
	case skemora.UnknownStrip:
		b.UnknownStrip()
	case skemora.UnknownPassthrough:
		b.UnknownPassthrough()
	default:
		b.UnknownStrict()
	}

	// properties in key-sorted order for deterministic error selection
	names := make([]string, 0, len(node.Properties))
	for name := range node.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		child, err := compileNode(node.Properties[name], childPath(path, name), opts, d)
		if err != nil {
			return nil, err
		}
		if _, isReq := req[name]; !isReq {
			child = dsl.Optional(child)
		}
		b.Field(name, child)
	}
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	return dsl.Describe(s, node.Description), nil
}

// childPath returns path extended by seg without aliasing the parent slice.
func childPath(path []string, seg string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = seg
	return out
}

func clonePath(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	return append([]string(nil), path...)
}

func renderPath(path []string) string {
	return (&SchemaError{Path: path}).Pointer()
}
