package recipeschema_test

import (
	"path/filepath"
	"testing"

	recipeschema "github.com/prefix-community/recipe-schema"
)

func TestExamples_ValidRecipesConform(t *testing.T) {
	paths, err := filepath.Glob("examples/valid/*/recipe.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no valid example recipes found")
	}
	v := newValidator(t)
	for _, path := range paths {
		t.Run(filepath.Base(filepath.Dir(path)), func(t *testing.T) {
			doc, err := recipeschema.DecodeFile(path)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if err := v.Validate(doc); err != nil {
				t.Fatalf("expected %s to validate, got: %v", path, err)
			}
		})
	}
}

func TestExamples_InvalidRecipesAreRejected(t *testing.T) {
	paths, err := filepath.Glob("examples/invalid/*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no invalid example recipes found")
	}
	v := newValidator(t)
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			doc, err := recipeschema.DecodeFile(path)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			err = v.Validate(doc)
			if err == nil {
				t.Fatalf("expected %s to fail validation", path)
			}
			iss, ok := recipeschema.AsIssues(err)
			if !ok || len(iss) == 0 {
				t.Fatalf("expected Issues, got %T: %v", err, err)
			}
			for _, it := range iss {
				if it.Path == "" {
					t.Errorf("issue without a location: %+v", it)
				}
			}
		})
	}
}
