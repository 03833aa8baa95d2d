package recipe

import "github.com/invopop/jsonschema"

// Glob selects files relative to a directory. Accepted forms: a single
// pattern, a conditional list of patterns, or an include/exclude map.
type Glob struct {
	Include ConditionalStrings `yaml:"include,omitempty" json:"include,omitempty"`
	Exclude ConditionalStrings `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

func (Glob) JSONSchema() *jsonschema.Schema {
	vec := condList(nonEmptyString())
	dict := strictObject("include")
	include := condList(nonEmptyString())
	include.Description = "Glob patterns to include"
	exclude := condList(nonEmptyString())
	exclude.Description = "Glob patterns to exclude"
	dict.Properties.Set("include", include)
	dict.Properties.Set("exclude", exclude)
	return anyOf(nonEmptyString(), vec, dict)
}
