package dsl_test

import (
	"context"
	"testing"

	g "github.com/skemora/skemora/dsl"
)

func TestOptional_WrapAndUnwrap(t *testing.T) {
	base := g.String()
	opt := g.Optional(base)

	if !g.IsOptional(opt) {
		t.Fatalf("expected IsOptional to see the wrapper")
	}
	if g.IsOptional(base) {
		t.Fatalf("bare schema must not be optional")
	}
	if g.Unwrap(opt) != base {
		t.Fatalf("Unwrap must return the wrapped schema")
	}
	if g.Unwrap(base) != base {
		t.Fatalf("Unwrap of a bare schema is the schema itself")
	}

	// Optional delegates validation untouched
	if err := opt.Validate(context.Background(), "hi"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := opt.Validate(context.Background(), 1); err == nil {
		t.Fatalf("optional must not loosen the value check")
	}
}

func TestDescribe_MetadataOnly(t *testing.T) {
	s := g.Describe(g.String(), "a display name")

	if got := g.DescriptionOf(s); got != "a display name" {
		t.Fatalf("expected description, got %q", got)
	}
	if err := s.Validate(context.Background(), "x"); err != nil {
		t.Fatalf("description must not affect validation, got %v", err)
	}

	doc, err := s.JSONSchema()
	if err != nil || doc.Description != "a display name" || doc.Type != "string" {
		t.Fatalf("unexpected export: %+v err=%v", doc, err)
	}
}

func TestDescribe_EmptyIsNoop(t *testing.T) {
	base := g.String()
	if g.Describe(base, "") != base {
		t.Fatalf("empty description must return the schema unchanged")
	}
}

func TestDescriptionOf_ThroughOptional(t *testing.T) {
	s := g.Optional(g.Describe(g.Number(), "age in years"))
	if got := g.DescriptionOf(s); got != "age in years" {
		t.Fatalf("expected description through Optional, got %q", got)
	}
}
