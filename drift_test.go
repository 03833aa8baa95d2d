package recipeschema_test

import (
	"bytes"
	"os"
	"testing"

	recipeschema "github.com/prefix-community/recipe-schema"
)

// The committed artifacts are what editors and CI consume; a model change
// without a regenerated schema must fail here, not in a downstream consumer.

func TestCommittedSchema_MatchesGeneration(t *testing.T) {
	want, err := recipeschema.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got, err := os.ReadFile("schema.json")
	if err != nil {
		t.Fatalf("reading committed schema: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("schema.json drifts from generation; refresh with: go run ./cmd/recipe-schema generate -o schema.json")
	}
}

func TestCommittedVariantSchema_MatchesGeneration(t *testing.T) {
	want, err := recipeschema.GenerateVariant()
	if err != nil {
		t.Fatalf("GenerateVariant: %v", err)
	}
	got, err := os.ReadFile("variant-schema.json")
	if err != nil {
		t.Fatalf("reading committed variant schema: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("variant-schema.json drifts from generation; refresh with: go run ./cmd/recipe-schema generate -variant -o variant-schema.json")
	}
}
