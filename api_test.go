package recipeschema_test

import (
	"strings"
	"testing"

	recipeschema "github.com/prefix-community/recipe-schema"
)

const minimalRecipe = `
context:
  version: 1.0.0

package:
  name: demo
  version: ${{ version }}

source:
  url: https://example.com/demo-1.0.0.tar.gz

requirements: {}
`

func newValidator(t *testing.T) *recipeschema.Validator {
	t.Helper()
	v, err := recipeschema.NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	return v
}

func TestValidate_MinimalRecipe(t *testing.T) {
	v := newValidator(t)
	if err := v.ValidateYAML([]byte(minimalRecipe)); err != nil {
		t.Fatalf("minimal recipe should validate, got: %v", err)
	}
}

func TestValidate_MissingRequiredFieldIsNamed(t *testing.T) {
	v := newValidator(t)
	recipe := strings.Replace(minimalRecipe, "  version: ${{ version }}\n", "", 1)
	err := v.ValidateYAML([]byte(recipe))
	if err == nil {
		t.Fatalf("recipe without package.version should fail validation")
	}
	iss, ok := recipeschema.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	var atPackage, namesField bool
	for _, it := range iss {
		if it.Code != recipeschema.CodeSchemaViolation {
			t.Errorf("unexpected issue code %q", it.Code)
		}
		if it.Path == "/package" {
			atPackage = true
		}
		if strings.Contains(it.Message, "version") {
			namesField = true
		}
	}
	if !atPackage {
		t.Errorf("no issue located at /package: %v", iss)
	}
	if !namesField {
		t.Errorf("no issue names the missing field: %v", iss)
	}
}

func TestValidate_ConditionalForms(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		name    string
		patches string
		wantOK  bool
	}{
		{"plain entry", `
  patches:
    - fix.patch
`, true},
		{"selector in list", `
  patches:
    - fix.patch
    - if: win
      then: windows.patch
`, true},
		{"selector with else", `
  patches:
    - if: win
      then: windows.patch
      else: unix.patch
`, true},
		{"bare selector", `
  patches:
    if: win
    then: windows.patch
`, true},
		{"selector missing then", `
  patches:
    - if: win
`, false},
		{"selector with unknown key", `
  patches:
    - if: win
      otherwise: windows.patch
`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recipe := strings.Replace(minimalRecipe,
				"source:\n  url: https://example.com/demo-1.0.0.tar.gz\n",
				"source:\n  url: https://example.com/demo-1.0.0.tar.gz"+tc.patches,
				1)
			err := v.ValidateYAML([]byte(recipe))
			if tc.wantOK && err != nil {
				t.Fatalf("expected valid, got: %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Fatalf("expected validation failure")
			}
		})
	}
}

func TestValidate_EmptyBuildScript(t *testing.T) {
	v := newValidator(t)
	recipe := minimalRecipe + "\nbuild:\n  script: \"\"\n"
	if err := v.ValidateYAML([]byte(recipe)); err != nil {
		t.Fatalf("an empty script string is a valid no-op, got: %v", err)
	}
}

func TestValidate_UnknownTopLevelKey(t *testing.T) {
	v := newValidator(t)
	err := v.ValidateYAML([]byte(minimalRecipe + "\nunknown_section: {}\n"))
	if err == nil {
		t.Fatalf("unknown top-level key should fail strict validation")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := recipeschema.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := recipeschema.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("Generate is not deterministic")
	}
}

func TestWriteSchema(t *testing.T) {
	var sb strings.Builder
	if err := recipeschema.WriteSchema(&sb); err != nil {
		t.Fatalf("WriteSchema: %v", err)
	}
	if !strings.Contains(sb.String(), `"$schema"`) {
		t.Fatalf("schema document misses the $schema marker")
	}
}
