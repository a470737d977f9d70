package dsl_test

import (
	"context"
	"testing"

	skemora "github.com/skemora/skemora"
	g "github.com/skemora/skemora/dsl"
)

func TestEnum_Membership(t *testing.T) {
	s := g.Enum("a", "b")
	ctx := context.Background()

	for _, v := range []string{"a", "b"} {
		if err := s.Validate(ctx, v); err != nil {
			t.Fatalf("member %q expected valid, got %v", v, err)
		}
	}
	err := s.Validate(ctx, "c")
	iss, ok := skemora.AsIssues(err)
	if !ok || iss[0].Code != skemora.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum for non-member, got %v", err)
	}
}

func TestEnum_NonStringInput(t *testing.T) {
	s := g.Enum("a")
	err := s.Validate(context.Background(), 1)
	iss, ok := skemora.AsIssues(err)
	if !ok || iss[0].Code != skemora.CodeInvalidType {
		t.Fatalf("expected invalid_type for non-string, got %v", err)
	}
}

func TestEnum_ExportKeepsOrder(t *testing.T) {
	doc, err := g.Enum("z", "a").JSONSchema()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(doc.Enum) != 2 || doc.Enum[0] != "z" || doc.Enum[1] != "a" {
		t.Fatalf("enum export must preserve declaration order, got %v", doc.Enum)
	}
}
