package dsl_test

import (
	"context"
	"testing"

	skemora "github.com/skemora/skemora"
	g "github.com/skemora/skemora/dsl"
)

func TestArray_Homogeneous(t *testing.T) {
	s := g.Array(g.String())
	ctx := context.Background()

	if err := s.Validate(ctx, []any{"a", "b"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := s.Validate(ctx, []any{}); err != nil {
		t.Fatalf("empty array expected valid, got %v", err)
	}

	err := s.Validate(ctx, []any{"a", 2, 3})
	iss, ok := skemora.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two element issues, got %v", err)
	}
	if iss[0].Path != "/1" || iss[1].Path != "/2" {
		t.Fatalf("element issues must be indexed, got %q %q", iss[0].Path, iss[1].Path)
	}
}

func TestArray_NonArrayInput(t *testing.T) {
	s := g.Array(g.String())
	err := s.Validate(context.Background(), "not an array")
	iss, ok := skemora.AsIssues(err)
	if !ok || iss[0].Code != skemora.CodeInvalidType || iss[0].Path != "/" {
		t.Fatalf("expected invalid_type at root, got %v", err)
	}
}

func TestArray_NestedPathRebase(t *testing.T) {
	inner := g.Object().Field("id", g.String()).MustBuild()
	s := g.Array(inner)

	err := s.Validate(context.Background(), []any{
		map[string]any{"id": "x"},
		map[string]any{},
	})
	iss, ok := skemora.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Path != "/1/id" || iss[0].Code != skemora.CodeRequired {
		t.Fatalf("expected required at /1/id, got %+v", iss[0])
	}
}
