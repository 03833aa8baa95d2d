package recipe

// SimplePackage identifies a single-output package. Both fields are required.
type SimplePackage struct {
	Name    string `yaml:"name" json:"name" jsonschema:"description=The package name"`
	Version string `yaml:"version" json:"version" jsonschema:"description=The package version"`
}

// ComplexPackage identifies a multi-output recipe; each output may overwrite
// the version.
type ComplexPackage struct {
	Name    string `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"description=The recipe name; used only to identify the recipe"`
	Version string `yaml:"version,omitempty" json:"version,omitempty" jsonschema:"description=The default version for each output; can be overwritten per output"`
}
