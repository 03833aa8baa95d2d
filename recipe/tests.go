package recipe

import "github.com/invopop/jsonschema"

// TestRequirements are extra dependencies installed before running a test.
type TestRequirements struct {
	Build ConditionalSpecs `yaml:"build,omitempty" json:"build,omitempty" jsonschema:"description=Extra requirements with build platform architecture (emulators etc.)"`
	Run   ConditionalSpecs `yaml:"run,omitempty" json:"run,omitempty" jsonschema:"description=Extra run dependencies"`
}

// TestFiles are extra files included for a test.
type TestFiles struct {
	Source ConditionalStrings `yaml:"source,omitempty" json:"source,omitempty" jsonschema:"description=Extra files from the source directory"`
	Recipe ConditionalStrings `yaml:"recipe,omitempty" json:"recipe,omitempty" jsonschema:"description=Extra files from the recipe directory"`
}

// ScriptTest runs a script against the installed package.
type ScriptTest struct {
	Script       ScriptValue       `yaml:"script,omitempty" json:"script,omitempty" jsonschema:"description=A script to run to perform the test"`
	Requirements *TestRequirements `yaml:"requirements,omitempty" json:"requirements,omitempty" jsonschema:"description=Additional dependencies to install before running the test"`
	Files        *TestFiles        `yaml:"files,omitempty" json:"files,omitempty" jsonschema:"description=Additional files to include for the test"`
}

// PythonTestInner configures the python import test.
type PythonTestInner struct {
	Imports  ConditionalStrings `yaml:"imports" json:"imports" jsonschema:"description=Python imports to check after installing the built package"`
	PipCheck bool               `yaml:"pip_check,omitempty" json:"pip_check,omitempty" jsonschema:"default=true,description=Whether to run pip check during the test"`
}

// PythonTest checks that the given modules import cleanly.
type PythonTest struct {
	Python PythonTestInner `yaml:"python" json:"python" jsonschema:"description=Python specific test configuration"`
}

// DownstreamTest installs the package and re-runs the tests of a downstream
// package against it.
type DownstreamTest struct {
	Downstream string `yaml:"downstream" json:"downstream" jsonschema:"description=Spec of the downstream package whose tests must still succeed"`
}

// PackageContents lists files that must be present in the built package.
type PackageContents struct {
	Files        ConditionalStrings `yaml:"files,omitempty" json:"files,omitempty" jsonschema:"description=Files that should be in the package"`
	Include      ConditionalStrings `yaml:"include,omitempty" json:"include,omitempty" jsonschema:"description=Files that should be in the include folder of the package"`
	SitePackages ConditionalStrings `yaml:"site_packages,omitempty" json:"site_packages,omitempty" jsonschema:"description=Files that should be in the site-packages folder of the package"`
	Bin          ConditionalStrings `yaml:"bin,omitempty" json:"bin,omitempty" jsonschema:"description=Files that should be in the bin folder of the package"`
	Lib          ConditionalStrings `yaml:"lib,omitempty" json:"lib,omitempty" jsonschema:"description=Files that should be in the lib folder of the package"`
}

// PackageContentsTest asserts the package contains the specified files.
type PackageContentsTest struct {
	PackageContents PackageContents `yaml:"package_contents" json:"package_contents" jsonschema:"description=Test if the package contains the specified files"`
}

// testElementSchema is the closed union of test forms.
func testElementSchema() *jsonschema.Schema {
	return anyOf(
		ref("ScriptTest"),
		ref("PythonTest"),
		ref("DownstreamTest"),
		ref("PackageContentsTest"),
	)
}

// ConditionalTests holds test entries or selectors over them (single-output
// recipes).
type ConditionalTests []any

func (ConditionalTests) JSONSchema() *jsonschema.Schema {
	return condList(testElementSchema())
}

// OutputTests is the tests list of an output: entries may be tests, selectors
// or nested lists of either.
type OutputTests []any

func (OutputTests) JSONSchema() *jsonschema.Schema {
	entry := anyOf(testElementSchema(), ifStatement(testElementSchema()))
	return arrayOf(anyOf(testElementSchema(), ifStatement(testElementSchema()), arrayOf(entry)))
}
