package recipe

import "github.com/invopop/jsonschema"

// About is the human readable description of the package.
type About struct {
	Homepage       string             `yaml:"homepage,omitempty" json:"homepage,omitempty" jsonschema:"format=uri,description=URL of the homepage of the package"`
	Repository     string             `yaml:"repository,omitempty" json:"repository,omitempty" jsonschema:"format=uri,description=URL that points to where the source code is hosted"`
	Documentation  string             `yaml:"documentation,omitempty" json:"documentation,omitempty" jsonschema:"format=uri,description=URL that points to where the documentation is hosted"`
	License        string             `yaml:"license,omitempty" json:"license,omitempty" jsonschema:"description=A license in SPDX format"`
	LicenseFile    ConditionalPaths   `yaml:"license_file,omitempty" json:"license_file,omitempty" jsonschema:"description=Paths to the license files of this package"`
	LicenseURL     string             `yaml:"license_url,omitempty" json:"license_url,omitempty" jsonschema:"description=A URL that points to the license file"`
	Summary        string             `yaml:"summary,omitempty" json:"summary,omitempty" jsonschema:"description=A short description of the package"`
	Description    PackageDescription `yaml:"description,omitempty" json:"description,omitempty" jsonschema:"description=Extended description of the package or a file (usually a README)"`
	PrelinkMessage string             `yaml:"prelink_message,omitempty" json:"prelink_message,omitempty"`
}

// PackageDescription is inline text or a pointer to a file in the source
// directory.
type PackageDescription string

func (PackageDescription) JSONSchema() *jsonschema.Schema {
	return anyOf(stringSchema(), ref("DescriptionFile"))
}

// DescriptionFile points at a file containing the package description.
type DescriptionFile struct {
	File string `yaml:"file" json:"file" jsonschema:"description=Path in the source directory that contains the package description"`
}

// The pattern cannot live in the struct tag: tag values pass through
// strconv.Unquote, which halves the backslashes and leaves an unclosed
// character class.
func (DescriptionFile) JSONSchemaExtend(s *jsonschema.Schema) {
	if p, ok := s.Properties.Get("file"); ok {
		p.Pattern = patternPathNoBackslash
	}
}
