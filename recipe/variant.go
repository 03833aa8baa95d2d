package recipe

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// VariantConfig models a variant configuration file (variants.yaml). Besides
// the declared keys, arbitrary variant keys map to a string or a list of
// strings.
type VariantConfig struct {
	ZipKeys       [][]string          `yaml:"zip_keys,omitempty" json:"zip_keys,omitempty" jsonschema:"description=Keys varied together instead of as a cross product"`
	PinRunAsBuild map[string]PinValue `yaml:"pin_run_as_build,omitempty" json:"pin_run_as_build,omitempty" jsonschema:"description=Per-package pins applied to run requirements from the build environment"`
}

func (VariantConfig) JSONSchemaExtend(s *jsonschema.Schema) {
	// free variant keys carry a value or a list of values
	s.AdditionalProperties = anyOf(stringSchema(), arrayOf(stringSchema()))
}

// PinValue is a pin or a list of pins for one package.
type PinValue []any

func (PinValue) JSONSchema() *jsonschema.Schema {
	return anyOf(ref("Pin"), arrayOf(ref("Pin")))
}

// Pin bounds the version range a run requirement is pinned to.
type Pin struct {
	MinPin string `yaml:"min_pin,omitempty" json:"min_pin,omitempty" jsonschema:"description=Lower pin expression such as x.x"`
	MaxPin string `yaml:"max_pin,omitempty" json:"max_pin,omitempty" jsonschema:"description=Upper pin expression such as x"`
}

// variantIndex pins the definitions of the variant schema, mirroring
// schemaIndex.
type variantIndex struct {
	Config VariantConfig `yaml:"config" json:"config"`
	Pin    Pin           `yaml:"pin" json:"pin"`
}

// VariantSchemaDocument emits the JSON Schema for variant configuration
// files.
func VariantSchemaDocument() ([]byte, error) {
	defs, err := reflectDefinitions(&variantIndex{}, "variantIndex")
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"VariantConfig", "Pin"} {
		if _, ok := defs[name]; !ok {
			return nil, fmt.Errorf("recipe: definition %q was not produced by reflection", name)
		}
	}
	root := &jsonschema.Schema{
		Version:     draftURL,
		Title:       "variants.yaml",
		Description: "Variant configuration for build recipes",
		Ref:         "#/$defs/VariantConfig",
		Definitions: defs,
	}
	return marshalDocument(root)
}
