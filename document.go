package recipeschema

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a recipe.yaml document into a JSON-normalized value:
// mappings become map[string]any and numbers become json.Number, so the
// result can be handed straight to a JSON Schema validator.
func DecodeYAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "invalid YAML", Cause: err}}
	}
	return normalize(doc)
}

// DecodeJSON parses a JSON document into the same normalized shape as
// DecodeYAML.
func DecodeJSON(data []byte) (any, error) {
	var doc any
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "invalid JSON", Cause: err}}
	}
	return doc, nil
}

// DecodeFile reads and decodes a recipe document, choosing the codec from the
// file extension (.json is JSON, everything else is treated as YAML).
func DecodeFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "reading " + path, Cause: err}}
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return DecodeJSON(data)
	}
	return DecodeYAML(data)
}

// normalize round-trips a yaml.v3 value through JSON so that numeric types
// collapse to json.Number and nested containers use JSON shapes.
func normalize(doc any) (any, error) {
	b, err := j.Marshal(doc)
	if err != nil {
		// yaml.v3 can produce values JSON cannot carry, e.g. non-string map keys
		return nil, Issues{Issue{Path: "/", Code: CodeInvalidDocument, Message: "document is not representable as JSON", Cause: err}}
	}
	return DecodeJSON(b)
}
