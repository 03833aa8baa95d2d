package recipeschema

import (
	"bytes"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Validator checks recipe documents against the generated JSON Schema. It is
// safe for concurrent use once constructed.
type Validator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// NewValidator compiles the schema generated from the current model.
func NewValidator() (*Validator, error) {
	b, err := Generate()
	if err != nil {
		return nil, err
	}
	return NewValidatorFromSchema(b)
}

// NewValidatorFromSchema compiles a schema document, e.g. the committed
// schema.json. The document must be a self-contained draft 2020-12 schema.
func NewValidatorFromSchema(schemaJSON []byte) (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: "schema document is not valid JSON", Cause: err}}
	}
	const url = "recipe-schema.json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeGenerateError, Message: "registering schema", Cause: err}}
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeGenerateError, Message: "compiling schema", Cause: err}}
	}
	return &Validator{schema: sch, printer: message.NewPrinter(language.English)}, nil
}

// Validate checks a decoded document (as produced by DecodeYAML/DecodeJSON)
// and returns nil or Issues.
func (v *Validator) Validate(doc any) error {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		return v.issuesFrom(ve)
	}
	return singleIssue(CodeSchemaViolation, err.Error())
}

// ValidateYAML decodes YAML bytes and validates the result.
func (v *Validator) ValidateYAML(data []byte) error {
	doc, err := DecodeYAML(data)
	if err != nil {
		return err
	}
	return v.Validate(doc)
}

// issuesFrom flattens the validator's error tree into Issues, one per leaf
// cause, each carrying a JSON Pointer to the offending location.
func (v *Validator) issuesFrom(ve *jsonschema.ValidationError) Issues {
	var iss Issues
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			iss = append(iss, Issue{
				Path:    jsonPointer(e.InstanceLocation),
				Code:    CodeSchemaViolation,
				Message: e.ErrorKind.LocalizedString(v.printer),
			})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return iss
}

// jsonPointer renders instance location tokens as an RFC 6901 pointer.
func jsonPointer(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, t := range tokens {
		t = strings.ReplaceAll(t, "~", "~0")
		t = strings.ReplaceAll(t, "/", "~1")
		b.WriteString("/")
		b.WriteString(t)
	}
	return b.String()
}
