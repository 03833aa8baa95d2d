package recipe

import "github.com/invopop/jsonschema"

// ScriptCommon carries the fields shared by both script forms.
type ScriptCommon struct {
	Interpreter string             `yaml:"interpreter,omitempty" json:"interpreter,omitempty" jsonschema:"minLength=1,description=The interpreter to use for the script; defaults to bash on unix and cmd.exe on Windows"`
	Env         map[string]string  `yaml:"env,omitempty" json:"env,omitempty" jsonschema:"description=Environment variables to set for the script"`
	Secrets     ConditionalStrings `yaml:"secrets,omitempty" json:"secrets,omitempty" jsonschema:"description=Secrets set as environment variables but never shown in logs"`
}

// FileScript runs a script file. The bat or sh extension is appended on
// Windows or Unix respectively when none is given.
type FileScript struct {
	ScriptCommon
	File ScriptFile `yaml:"file" json:"file" jsonschema:"description=The file to use as the script"`
}

// ScriptFile is a path or a template expression evaluating to one.
type ScriptFile string

func (ScriptFile) JSONSchema() *jsonschema.Schema {
	return anyOf(pathNoBackslash(), jinjaExpr())
}

// ContentScript runs inline script content.
type ContentScript struct {
	ScriptCommon
	Content ScriptContent `yaml:"content" json:"content" jsonschema:"description=A string or list of strings with the script contents"`
}

// ScriptContent is the inline script body: a string or a conditional list of
// lines.
type ScriptContent []any

func (ScriptContent) JSONSchema() *jsonschema.Schema {
	return condList(stringSchema())
}

// ScriptValue is the script field of build and test sections: a single
// command string, a structured script object, or a conditional command list.
// Command strings are unconstrained; an empty script is a valid no-op.
type ScriptValue []any

func (ScriptValue) JSONSchema() *jsonschema.Schema {
	return anyOf(
		ref("FileScript"),
		ref("ContentScript"),
		condList(stringSchema()),
	)
}
