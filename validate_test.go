package skemora_test

import (
	"context"
	"testing"

	skemora "github.com/skemora/skemora"
	g "github.com/skemora/skemora/dsl"
)

func TestValidateJSON_OK(t *testing.T) {
	s := g.Object().
		Field("name", g.String()).
		Field("age", g.Optional(g.Number())).
		MustBuild()

	if err := skemora.ValidateJSON(context.Background(), s, []byte(`{"name":"alice","age":30}`)); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	// big integers survive thanks to UseNumber decoding
	if err := skemora.ValidateJSON(context.Background(), s, []byte(`{"name":"alice","age":9007199254740993}`)); err != nil {
		t.Fatalf("expected json.Number to validate as number, got %v", err)
	}
}

func TestValidateJSON_MalformedInput(t *testing.T) {
	s := g.Object().Field("name", g.String()).MustBuild()
	err := skemora.ValidateJSON(context.Background(), s, []byte(`{"name":`))
	iss, ok := skemora.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Code != skemora.CodeParseError || iss[0].Path != "/" {
		t.Fatalf("expected parse_error at root, got %+v", iss[0])
	}
}
