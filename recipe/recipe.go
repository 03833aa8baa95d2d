package recipe

// BaseRecipe carries the fields shared by both recipe forms.
type BaseRecipe struct {
	SchemaVersion int                `yaml:"schema_version,omitempty" json:"schema_version,omitempty" jsonschema:"minimum=1,maximum=1,default=1,description=The version of the YAML schema for a recipe; assumed to be 1 when omitted"`
	Context       map[string]any     `yaml:"context,omitempty" json:"context,omitempty" jsonschema:"description=Arbitrary key-value pairs for template interpolation"`
	Source        ConditionalSources `yaml:"source,omitempty" json:"source,omitempty" jsonschema:"description=The source items to be downloaded and used for the build"`
	Build         *Build             `yaml:"build,omitempty" json:"build,omitempty" jsonschema:"description=Describes how the package should be built"`
	About         *About             `yaml:"about,omitempty" json:"about,omitempty" jsonschema:"description=A human readable description of the package information"`
	Extra         map[string]any     `yaml:"extra,omitempty" json:"extra,omitempty" jsonschema:"description=Arbitrary values included in the package manifest"`
}

// SimpleRecipe builds a single package.
type SimpleRecipe struct {
	BaseRecipe
	Package      SimplePackage    `yaml:"package" json:"package" jsonschema:"description=The package name and version"`
	Requirements *Requirements    `yaml:"requirements,omitempty" json:"requirements,omitempty" jsonschema:"description=The package dependencies"`
	Tests        ConditionalTests `yaml:"tests,omitempty" json:"tests,omitempty" jsonschema:"description=Tests to run after packaging"`
}

// ComplexRecipe builds multiple outputs from one shared source and build
// setup.
type ComplexRecipe struct {
	BaseRecipe
	Recipe  *ComplexPackage    `yaml:"recipe,omitempty" json:"recipe,omitempty" jsonschema:"description=The name and default version shared by the outputs"`
	Outputs ConditionalOutputs `yaml:"outputs" json:"outputs" jsonschema:"description=A list of outputs that are generated for this recipe"`
}
