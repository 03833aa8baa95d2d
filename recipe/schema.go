package recipe

import (
	"fmt"
	"sort"

	j "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

const draftURL = "https://json-schema.org/draft/2020-12/schema"

// schemaIndex pins every definition that a hand-written $ref may point at, so
// reflection is guaranteed to visit each one. The index itself never appears
// in the emitted document.
type schemaIndex struct {
	Simple          SimpleRecipe        `yaml:"simple" json:"simple"`
	Complex         ComplexRecipe       `yaml:"complex" json:"complex"`
	URL             URLSource           `yaml:"url" json:"url"`
	Git             GitSource           `yaml:"git" json:"git"`
	GitRev          GitRevSource        `yaml:"git_rev" json:"git_rev"`
	GitTag          GitTagSource        `yaml:"git_tag" json:"git_tag"`
	GitBranch       GitBranchSource     `yaml:"git_branch" json:"git_branch"`
	Local           LocalSource         `yaml:"local" json:"local"`
	FileScript      FileScript          `yaml:"file_script" json:"file_script"`
	ContentScript   ContentScript       `yaml:"content_script" json:"content_script"`
	RunExports      RunExports          `yaml:"run_exports" json:"run_exports"`
	Output          Output              `yaml:"output" json:"output"`
	ScriptTest      ScriptTest          `yaml:"script_test" json:"script_test"`
	PythonTest      PythonTest          `yaml:"python_test" json:"python_test"`
	DownstreamTest  DownstreamTest      `yaml:"downstream_test" json:"downstream_test"`
	ContentsTest    PackageContentsTest `yaml:"contents_test" json:"contents_test"`
	DescriptionFile DescriptionFile     `yaml:"description_file" json:"description_file"`
	Glob            Glob                `yaml:"glob" json:"glob"`
}

// pinnedDefs are the definition names hand-written refs rely on. Generation
// fails loudly when reflection did not produce one of them instead of
// emitting a schema with dangling references.
var pinnedDefs = []string{
	"SimpleRecipe", "ComplexRecipe",
	"URLSource", "GitSource", "GitRevSource", "GitTagSource", "GitBranchSource", "LocalSource",
	"FileScript", "ContentScript",
	"RunExports", "Output",
	"ScriptTest", "PythonTest", "DownstreamTest", "PackageContentsTest",
	"DescriptionFile", "Glob",
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		// Declared structs are strict: unknown keys are schema violations.
		AllowAdditionalProperties: false,
		// Property names come from the yaml tags; requiredness from the
		// absence of omitempty.
		FieldNameTag: "yaml",
		// Keep $id out of the document; it is published by path, not by URI.
		Anonymous: true,
	}
}

// SchemaDocument emits the full recipe.yaml JSON Schema as indented JSON with
// a trailing newline. Output is byte-identical across runs.
func SchemaDocument() ([]byte, error) {
	defs, err := reflectDefinitions(&schemaIndex{}, "schemaIndex")
	if err != nil {
		return nil, err
	}
	for _, name := range pinnedDefs {
		if _, ok := defs[name]; !ok {
			return nil, fmt.Errorf("recipe: definition %q was not produced by reflection", name)
		}
	}
	root := &jsonschema.Schema{
		Version:     draftURL,
		Title:       "recipe.yaml",
		Description: "A build recipe for a software package (schema_version 1)",
		OneOf: []*jsonschema.Schema{
			ref("SimpleRecipe"),
			ref("ComplexRecipe"),
		},
		Definitions: defs,
	}
	return marshalDocument(root)
}

// reflectDefinitions reflects the given index value and returns its
// definitions without the index entry itself.
func reflectDefinitions(index any, indexName string) (jsonschema.Definitions, error) {
	r := newReflector()
	s := r.Reflect(index)
	if len(s.Definitions) == 0 {
		return nil, fmt.Errorf("recipe: reflection produced no definitions")
	}
	delete(s.Definitions, indexName)
	return s.Definitions, nil
}

func marshalDocument(root *jsonschema.Schema) ([]byte, error) {
	b, err := j.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// DefinitionNames lists the definitions of the recipe schema in sorted order.
func DefinitionNames() ([]string, error) {
	defs, err := reflectDefinitions(&schemaIndex{}, "schemaIndex")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
