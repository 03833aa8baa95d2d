package recipeschema

import (
	"io"

	"github.com/prefix-community/recipe-schema/recipe"
)

// Generate returns the JSON Schema document for recipe.yaml as indented JSON
// with a trailing newline. Output is byte-identical across runs for an
// unchanged model.
func Generate() ([]byte, error) {
	b, err := recipe.SchemaDocument()
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeGenerateError, Message: "generating recipe schema", Cause: err}}
	}
	return b, nil
}

// GenerateVariant returns the JSON Schema document for variant configuration
// files (variants.yaml).
func GenerateVariant() ([]byte, error) {
	b, err := recipe.VariantSchemaDocument()
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeGenerateError, Message: "generating variant schema", Cause: err}}
	}
	return b, nil
}

// WriteSchema generates the recipe schema and writes it to w.
func WriteSchema(w io.Writer) error {
	b, err := Generate()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
