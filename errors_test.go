package skemora_test

import (
	"errors"
	"strings"
	"testing"

	skemora "github.com/skemora/skemora"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := skemora.Issues{
		{Path: "/a", Code: skemora.CodeInvalidType},
		{Path: "/b", Code: skemora.CodeUnknownKey},
		{Path: "/c", Code: skemora.CodeRequired},
		{Path: "/d", Code: skemora.CodeInvalidEnum},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "invalid_type at /a") {
		t.Fatalf("expected first issue in summary, got %q", s)
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected overflow marker in summary, got %q", s)
	}
}

func TestAsIssues(t *testing.T) {
	var err error = skemora.Issues{{Path: "/", Code: skemora.CodeRequired}}
	iss, ok := skemora.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected to extract one issue, got ok=%v iss=%v", ok, iss)
	}
	if _, ok := skemora.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors must not convert to Issues")
	}
	if _, ok := skemora.AsIssues(nil); ok {
		t.Fatalf("nil must not convert to Issues")
	}
}

func TestRebaseIssues(t *testing.T) {
	child := skemora.Issues{
		{Path: "/", Code: skemora.CodeInvalidType},
		{Path: "/inner", Code: skemora.CodeRequired},
	}
	out := skemora.RebaseIssues("/outer", child)
	if out[0].Path != "/outer" {
		t.Fatalf("root child path should collapse to base, got %q", out[0].Path)
	}
	if out[1].Path != "/outer/inner" {
		t.Fatalf("nested child path should be prefixed, got %q", out[1].Path)
	}

	wrapped := skemora.RebaseIssues("/x", errors.New("boom"))
	if len(wrapped) != 1 || wrapped[0].Code != skemora.CodeParseError || wrapped[0].Path != "/x" {
		t.Fatalf("non-Issues error should wrap as parse_error at base, got %v", wrapped)
	}
}
