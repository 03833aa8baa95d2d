package recipe

import (
	j "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

// Constrained string patterns shared with the generated schema. Kept as raw
// strings so the emitted patterns match the recipe format reference exactly.
const (
	patternPathNoBackslash = `^[^\\]+$`
	patternJinjaExpr       = `\$\{\{.*\}\}`
	patternGitURL          = `((git|ssh|http(s)?)|(git@[\w\.]+))(:(\/\/)?)([\w\.@:\/\\-~]+)`
	patternMD5             = `[a-fA-F0-9]{32}`
	patternSHA256          = `[a-fA-F0-9]{64}`
)

func uintPtr(n uint64) *uint64 { return &n }

// ref points at a reflected definition. Every name used here must be pinned
// by schemaIndex so the reference resolves in the assembled document.
func ref(def string) *jsonschema.Schema {
	return &jsonschema.Schema{Ref: "#/$defs/" + def}
}

func anyOf(alts ...*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{AnyOf: alts}
}

func arrayOf(item *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Items: item}
}

func stringSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string"}
}

func boolSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean"}
}

func nonEmptyString() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", MinLength: uintPtr(1)}
}

func patternString(pattern string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Pattern: pattern}
}

// jinjaExpr matches a ${{ ... }} template expression.
func jinjaExpr() *jsonschema.Schema {
	return patternString(patternJinjaExpr)
}

func pathNoBackslash() *jsonschema.Schema {
	return patternString(patternPathNoBackslash)
}

// matchSpec is a dependency spec such as "xtl >=0.7,<0.8". The format is not
// constrained at the schema level.
func matchSpec() *jsonschema.Schema {
	return stringSchema()
}

func unsignedInt() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Minimum: j.Number("0")}
}

// strictObject builds an object schema with additionalProperties:false, the
// same policy the reflector applies to every declared struct. Callers fill in
// Properties.
func strictObject(required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		Required:             required,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

// setDefault records a default on a reflected property. Used from
// JSONSchemaExtend hooks for values the struct tags cannot express with the
// right JSON type.
func setDefault(s *jsonschema.Schema, name string, v any) {
	if p, ok := s.Properties.Get(name); ok {
		p.Default = v
	}
}

// ifStatement builds the strict {if, then, else} selector for entries of the
// given item schema. then/else accept the item or a list of items, matching
// the shape of the surrounding conditional list.
func ifStatement(item *jsonschema.Schema) *jsonschema.Schema {
	branch := anyOf(item, arrayOf(item))
	s := strictObject("if", "then")
	s.Properties.Set("if", &jsonschema.Schema{Type: "string", Description: "The condition to evaluate"})
	s.Properties.Set("then", branch)
	s.Properties.Set("else", branch)
	return s
}

// condList builds the conditional-list union: a plain item, an if/then/else
// selector, or a list mixing both.
func condList(item *jsonschema.Schema) *jsonschema.Schema {
	sel := ifStatement(item)
	return anyOf(item, sel, arrayOf(anyOf(item, sel)))
}
