package recipe

import "github.com/invopop/jsonschema"

// OutputBuild extends Build with caching between outputs.
type OutputBuild struct {
	Build
	CacheOnly bool               `yaml:"cache_only,omitempty" json:"cache_only,omitempty" jsonschema:"default=false,description=Do not output a package but use this output as an input to others"`
	CacheFrom ConditionalStrings `yaml:"cache_from,omitempty" json:"cache_from,omitempty" jsonschema:"description=Take the output of the specified outputs and copy them into the working directory"`
}

// Output is a sub-package of a multi-output recipe. Fields overwrite or merge
// with their top-level counterparts.
type Output struct {
	Package      *ComplexPackage    `yaml:"package,omitempty" json:"package,omitempty" jsonschema:"description=The package name and version; overwrites any top-level fields"`
	Source       ConditionalSources `yaml:"source,omitempty" json:"source,omitempty" jsonschema:"description=The source items to be downloaded and used for the build"`
	Build        *OutputBuild       `yaml:"build,omitempty" json:"build,omitempty" jsonschema:"description=Describes how the output should be built"`
	Requirements *Requirements      `yaml:"requirements,omitempty" json:"requirements,omitempty" jsonschema:"description=The package dependencies"`
	Tests        OutputTests        `yaml:"tests,omitempty" json:"tests,omitempty" jsonschema:"description=Tests to run after packaging"`
	About        *About             `yaml:"about,omitempty" json:"about,omitempty" jsonschema:"description=Package information merged with the top-level about field"`
	Extra        map[string]any     `yaml:"extra,omitempty" json:"extra,omitempty" jsonschema:"description=Arbitrary values merged with the top-level extra field"`
}

// ConditionalOutputs holds output entries or selectors over them.
type ConditionalOutputs []any

func (ConditionalOutputs) JSONSchema() *jsonschema.Schema {
	return condList(ref("Output"))
}
