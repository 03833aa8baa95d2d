package recipeschema_test

import (
	"testing"

	j "github.com/goccy/go-json"

	recipeschema "github.com/prefix-community/recipe-schema"
)

func TestDecodeYAML_NormalizesNumbers(t *testing.T) {
	doc, err := recipeschema.DecodeYAML([]byte("build:\n  number: 3\n"))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected a mapping, got %T", doc)
	}
	build, ok := m["build"].(map[string]any)
	if !ok {
		t.Fatalf("expected build mapping, got %T", m["build"])
	}
	if got, want := build["number"], j.Number("3"); got != want {
		t.Fatalf("number = %v (%T), want %v", got, got, want)
	}
}

func TestDecodeYAML_ParseErrorIsIssues(t *testing.T) {
	_, err := recipeschema.DecodeYAML([]byte("package: ["))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	iss, ok := recipeschema.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	if iss[0].Code != recipeschema.CodeParseError {
		t.Fatalf("code = %q, want %q", iss[0].Code, recipeschema.CodeParseError)
	}
}

func TestDecodeJSON(t *testing.T) {
	doc, err := recipeschema.DecodeJSON([]byte(`{"package":{"name":"demo","version":"1.0.0"}}`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected a mapping, got %T", doc)
	}
	if _, ok := m["package"]; !ok {
		t.Fatalf("package key missing after decode")
	}
}
