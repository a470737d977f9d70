package dsl

import (
	"context"
	"fmt"
	"sort"

	skemora "github.com/skemora/skemora"
	"github.com/skemora/skemora/i18n"
	js "github.com/skemora/skemora/jsonschema"
)

type objectSchema struct {
	fields        map[string]skemora.Schema
	unknownPolicy skemora.UnknownPolicy
	sortedKeys    []string
}

var _ skemora.Schema = (*objectSchema)(nil)

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	src, ok := v.(map[string]any)
	if !ok {
		return skemora.Issues{{Path: "/", Code: skemora.CodeInvalidType, Message: i18n.T(skemora.CodeInvalidType, nil), Hint: "expected object"}}
	}
	var iss skemora.Issues
	// known fields in key-sorted order for deterministic error selection
	for _, k := range o.sortedKeys {
		s := o.fields[k]
		val, exists := src[k]
		if !exists {
			if !IsOptional(s) {
				iss = skemora.AppendIssues(iss, skemora.Issue{Path: "/" + k, Code: skemora.CodeRequired, Message: i18n.T(skemora.CodeRequired, nil), Hint: "required property missing"})
			}
			continue
		}
		if err := s.Validate(ctx, val); err != nil {
			iss = skemora.AppendIssues(iss, skemora.RebaseIssues("/"+k, err)...)
		}
	}
	if o.unknownPolicy == skemora.UnknownStrict {
		uks := make([]string, 0, len(src))
		for k := range src {
			if _, known := o.fields[k]; !known {
				uks = append(uks, k)
			}
		}
		sort.Strings(uks)
		for _, k := range uks {
			iss = skemora.AppendIssues(iss, skemora.Issue{Path: "/" + k, Code: skemora.CodeUnknownKey, Message: i18n.T(skemora.CodeUnknownKey, nil)})
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	req := make([]string, 0, len(o.fields))
	for _, k := range o.sortedKeys {
		s := o.fields[k]
		ps, err := s.JSONSchema()
		if err != nil {
			return nil, err
		}
		props[k] = ps
		if !IsOptional(s) {
			req = append(req, k)
		}
	}
	var additional any
	switch o.unknownPolicy {
	case skemora.UnknownStrict:
		additional = false
	case skemora.UnknownStrip, skemora.UnknownPassthrough:
		additional = true
	}
	out := &js.Schema{Type: "object", Properties: props, AdditionalProperties: additional}
	if len(req) > 0 {
		out.Required = req
	}
	return out, nil
}

// ObjectBuilder accumulates fields and unknown-key policy, then Build produces
// an immutable object schema. Fields are required unless wrapped in Optional.
type ObjectBuilder struct {
	fields        map[string]skemora.Schema
	unknownPolicy skemora.UnknownPolicy
	err           error
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:        map[string]skemora.Schema{},
		unknownPolicy: skemora.UnknownStrict,
	}
}

// Field registers a field with its schema. Wrap the schema in Optional to
// allow the field to be absent.
func (b *ObjectBuilder) Field(name string, s skemora.Schema) *ObjectBuilder {
	if s == nil {
		b.err = fmt.Errorf("dsl: nil schema for field %q", name)
		return b
	}
	if _, dup := b.fields[name]; dup {
		b.err = fmt.Errorf("dsl: duplicate field %q", name)
		return b
	}
	b.fields[name] = s
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *ObjectBuilder) UnknownStrict() *ObjectBuilder {
	b.unknownPolicy = skemora.UnknownStrict
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *ObjectBuilder) UnknownStrip() *ObjectBuilder {
	b.unknownPolicy = skemora.UnknownStrip
	return b
}

// UnknownPassthrough sets unknown policy to Passthrough.
func (b *ObjectBuilder) UnknownPassthrough() *ObjectBuilder {
	b.unknownPolicy = skemora.UnknownPassthrough
	return b
}

// Build finalizes the object schema. The builder must not be reused after a
// successful Build.
func (b *ObjectBuilder) Build() (skemora.Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	fields := make(map[string]skemora.Schema, len(b.fields))
	keys := make([]string, 0, len(b.fields))
	for k, s := range b.fields {
		fields[k] = s
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &objectSchema{fields: fields, unknownPolicy: b.unknownPolicy, sortedKeys: keys}, nil
}

// MustBuild is Build that panics on error; intended for static schemas.
func (b *ObjectBuilder) MustBuild() skemora.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
