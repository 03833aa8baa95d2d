package recipe

import "github.com/invopop/jsonschema"

// Conditional lists accept a single entry, an {if, then, else} selector, or a
// list mixing both. The carrier types below only differ in the entry schema.
// Single entries are also accepted outside a list, which is why the Go element
// type is any.

// ConditionalStrings holds non-empty strings or selectors over them.
type ConditionalStrings []any

func (ConditionalStrings) JSONSchema() *jsonschema.Schema {
	return condList(nonEmptyString())
}

// ConditionalSpecs holds dependency match specs or selectors over them.
type ConditionalSpecs []any

func (ConditionalSpecs) JSONSchema() *jsonschema.Schema {
	return condList(matchSpec())
}

// ConditionalPaths holds relative paths (no backslashes) or selectors over
// them.
type ConditionalPaths []any

func (ConditionalPaths) JSONSchema() *jsonschema.Schema {
	return condList(pathNoBackslash())
}

// ConditionalGlobs holds glob values or selectors over them.
type ConditionalGlobs []any

func (ConditionalGlobs) JSONSchema() *jsonschema.Schema {
	return condList(ref("Glob"))
}

// TemplatedInt is an unsigned integer or a template expression evaluating to
// one.
type TemplatedInt string

func (TemplatedInt) JSONSchema() *jsonschema.Schema {
	return anyOf(unsignedInt(), jinjaExpr())
}

// TemplatedBool is a boolean or a template expression evaluating to one.
type TemplatedBool string

func (TemplatedBool) JSONSchema() *jsonschema.Schema {
	return anyOf(boolSchema(), jinjaExpr())
}

// TemplatedString is a free-form string; the template arm is kept as a
// distinct alternative so editors can surface it.
type TemplatedString string

func (TemplatedString) JSONSchema() *jsonschema.Schema {
	return anyOf(stringSchema(), jinjaExpr())
}
