package recipe

import "github.com/invopop/jsonschema"

// SkipConditions lists expressions under which the build is skipped. A single
// string or boolean is also accepted.
type SkipConditions []any

func (SkipConditions) JSONSchema() *jsonschema.Schema {
	entry := anyOf(stringSchema(), boolSchema())
	return anyOf(stringSchema(), boolSchema(), arrayOf(entry))
}

// PrefixFiles toggles a prefix-replacement behavior globally or per path.
type PrefixFiles []any

func (PrefixFiles) JSONSchema() *jsonschema.Schema {
	return anyOf(boolSchema(), jinjaExpr(), condList(pathNoBackslash()))
}

// RelocationFiles toggles binary relocation globally or per glob.
type RelocationFiles []any

func (RelocationFiles) JSONSchema() *jsonschema.Schema {
	return anyOf(boolSchema(), jinjaExpr(), condList(ref("Glob")))
}

// VariantPriority is a signed integer or a template expression evaluating to
// one.
type VariantPriority string

func (VariantPriority) JSONSchema() *jsonschema.Schema {
	return anyOf(&jsonschema.Schema{Type: "integer"}, jinjaExpr())
}

// Build describes how the package is built.
type Build struct {
	Number                TemplatedInt       `yaml:"number,omitempty" json:"number,omitempty" jsonschema:"description=Build number to version the current build in addition to the package version"`
	String                TemplatedString    `yaml:"string,omitempty" json:"string,omitempty" jsonschema:"description=The build string to identify the build variant; usually omitted"`
	Skip                  SkipConditions     `yaml:"skip,omitempty" json:"skip,omitempty" jsonschema:"description=Conditions under which to skip the build; the build is skipped if any evaluates to true"`
	Noarch                string             `yaml:"noarch,omitempty" json:"noarch,omitempty" jsonschema:"enum=generic,enum=python,description=A noarch python package compiles .pyc files upon installation"`
	Script                ScriptValue        `yaml:"script,omitempty" json:"script,omitempty" jsonschema:"description=The script that invokes the build; a single line ending in .sh or .bat is interpreted as a file"`
	MergeBuildAndHostEnvs TemplatedBool      `yaml:"merge_build_and_host_envs,omitempty" json:"merge_build_and_host_envs,omitempty" jsonschema:"description=Merge the build and host environments; used by many R packages on Windows"`
	AlwaysIncludeFiles    ConditionalStrings `yaml:"always_include_files,omitempty" json:"always_include_files,omitempty" jsonschema:"description=Files to include even if they are present in the prefix before building"`
	AlwaysCopyFiles       ConditionalGlobs   `yaml:"always_copy_files,omitempty" json:"always_copy_files,omitempty" jsonschema:"description=Always copy these files into the environment instead of linking them"`
	Variant               *Variant           `yaml:"variant,omitempty" json:"variant,omitempty" jsonschema:"description=Options that influence how the different variants are computed"`
	Python                *Python            `yaml:"python,omitempty" json:"python,omitempty" jsonschema:"description=Python specific build configuration"`
	DynamicLinking        *DynamicLinking    `yaml:"dynamic_linking,omitempty" json:"dynamic_linking,omitempty" jsonschema:"description=Configuration to post-process dynamically linked libraries and executables"`
	LinkOptions           *LinkOptions       `yaml:"link_options,omitempty" json:"link_options,omitempty" jsonschema:"description=Options that influence how a package behaves when installed or uninstalled"`
	PrefixDetection       *PrefixDetection   `yaml:"prefix_detection,omitempty" json:"prefix_detection,omitempty" jsonschema:"description=Options that influence how the prefix replacement is done"`
	Files                 *Glob              `yaml:"files,omitempty" json:"files,omitempty" jsonschema:"description=Glob patterns to include or exclude files from the package"`
}

func (Build) JSONSchemaExtend(s *jsonschema.Schema) {
	setDefault(s, "number", 0)
	setDefault(s, "merge_build_and_host_envs", false)
}

// Variant controls how build variants are computed from the dependencies.
type Variant struct {
	UseKeys               ConditionalStrings `yaml:"use_keys,omitempty" json:"use_keys,omitempty" jsonschema:"description=Keys to forcibly use for the variant computation even if they are not in the dependencies"`
	IgnoreKeys            ConditionalStrings `yaml:"ignore_keys,omitempty" json:"ignore_keys,omitempty" jsonschema:"description=Keys to forcibly ignore for the variant computation even if they are in the dependencies"`
	DownPrioritizeVariant VariantPriority    `yaml:"down_prioritize_variant,omitempty" json:"down_prioritize_variant,omitempty" jsonschema:"description=Used to prefer this variant less over other variants"`
}

func (Variant) JSONSchemaExtend(s *jsonschema.Schema) {
	setDefault(s, "down_prioritize_variant", 0)
}

// Python holds python specific build configuration.
type Python struct {
	EntryPoints            ConditionalStrings `yaml:"entry_points,omitempty" json:"entry_points,omitempty" jsonschema:"description=Python entry points to create for the package"`
	UsePythonAppEntrypoint TemplatedBool      `yaml:"use_python_app_entrypoint,omitempty" json:"use_python_app_entrypoint,omitempty" jsonschema:"description=Whether python.app should be used as the entrypoint on macOS"`
	PreserveEggDir         TemplatedBool      `yaml:"preserve_egg_dir,omitempty" json:"preserve_egg_dir,omitempty"`
	SkipPycCompilation     ConditionalGlobs   `yaml:"skip_pyc_compilation,omitempty" json:"skip_pyc_compilation,omitempty" jsonschema:"description=Skip compiling pyc for some files"`
	DisablePip             TemplatedBool      `yaml:"disable_pip,omitempty" json:"disable_pip,omitempty"`
}

func (Python) JSONSchemaExtend(s *jsonschema.Schema) {
	setDefault(s, "use_python_app_entrypoint", false)
	setDefault(s, "preserve_egg_dir", false)
	setDefault(s, "disable_pip", false)
}

// DynamicLinking configures post-processing of dynamically linked artifacts.
type DynamicLinking struct {
	Rpaths                ConditionalStrings `yaml:"rpaths,omitempty" json:"rpaths,omitempty" jsonschema:"description=Linux only; list of rpaths"`
	BinaryRelocation      RelocationFiles    `yaml:"binary_relocation,omitempty" json:"binary_relocation,omitempty" jsonschema:"description=Whether to relocate binaries; a list of paths restricts relocation to those paths"`
	MissingDSOAllowlist   ConditionalGlobs   `yaml:"missing_dso_allowlist,omitempty" json:"missing_dso_allowlist,omitempty" jsonschema:"description=Allow linking against libraries that are not in the run requirements"`
	RpathAllowlist        ConditionalGlobs   `yaml:"rpath_allowlist,omitempty" json:"rpath_allowlist,omitempty" jsonschema:"description=Allow runpath or rpath to point to these locations outside of the environment"`
	OverdependingBehavior string             `yaml:"overdepending_behavior,omitempty" json:"overdepending_behavior,omitempty" jsonschema:"enum=ignore,enum=error,default=error,description=What to do when a run requirement is not linked against by any artifact"`
	OverlinkingBehavior   string             `yaml:"overlinking_behavior,omitempty" json:"overlinking_behavior,omitempty" jsonschema:"enum=ignore,enum=error,default=error,description=What to do when an artifact links against a library not in the run requirements"`
}

func (DynamicLinking) JSONSchemaExtend(s *jsonschema.Schema) {
	setDefault(s, "rpaths", []any{"lib/"})
	setDefault(s, "binary_relocation", true)
}

// ForceFileType forces the file type of the given files for prefix
// replacement.
type ForceFileType struct {
	Text   ConditionalGlobs `yaml:"text,omitempty" json:"text,omitempty" jsonschema:"description=Force the TEXT file type"`
	Binary ConditionalGlobs `yaml:"binary,omitempty" json:"binary,omitempty" jsonschema:"description=Force the BINARY file type"`
}

// PrefixDetection influences how prefix replacement is done.
type PrefixDetection struct {
	ForceFileType     *ForceFileType `yaml:"force_file_type,omitempty" json:"force_file_type,omitempty" jsonschema:"description=Force the file type of the given files to be TEXT or BINARY"`
	Ignore            PrefixFiles    `yaml:"ignore,omitempty" json:"ignore,omitempty" jsonschema:"description=Ignore all or specific files for prefix replacement"`
	IgnoreBinaryFiles PrefixFiles    `yaml:"ignore_binary_files,omitempty" json:"ignore_binary_files,omitempty" jsonschema:"description=Whether to detect binary files with prefix or not"`
}

func (PrefixDetection) JSONSchemaExtend(s *jsonschema.Schema) {
	setDefault(s, "ignore", false)
	setDefault(s, "ignore_binary_files", false)
}

// LinkOptions influence how a package behaves when it is installed or
// uninstalled.
type LinkOptions struct {
	PostLinkScript  string `yaml:"post_link_script,omitempty" json:"post_link_script,omitempty" jsonschema:"minLength=1,description=Script to execute after the package has been linked into an environment"`
	PreUnlinkScript string `yaml:"pre_unlink_script,omitempty" json:"pre_unlink_script,omitempty" jsonschema:"minLength=1,description=Script to execute before uninstalling the package from an environment"`
	PreLinkMessage  string `yaml:"pre_link_message,omitempty" json:"pre_link_message,omitempty" jsonschema:"minLength=1,description=Message to show before linking"`
}
