package recipe

import "github.com/invopop/jsonschema"

// BaseSource carries the fields shared by every source form.
type BaseSource struct {
	Patches         ConditionalPaths `yaml:"patches,omitempty" json:"patches,omitempty" jsonschema:"description=A list of patches to apply after fetching the source"`
	TargetDirectory string           `yaml:"target_directory,omitempty" json:"target_directory,omitempty" jsonschema:"minLength=1,description=The location in the working directory to place the source"`
}

// SourceURL is a download URL or a list of mirror URLs pointing at the same
// file.
type SourceURL []string

func (SourceURL) JSONSchema() *jsonschema.Schema {
	return anyOf(nonEmptyString(), arrayOf(nonEmptyString()))
}

// URLSource fetches an archive (or plain file) over HTTP and verifies it
// against a checksum.
type URLSource struct {
	BaseSource
	URL      SourceURL `yaml:"url" json:"url" jsonschema:"description=URL pointing to the source archive; can be a list of mirrors"`
	SHA256   string    `yaml:"sha256,omitempty" json:"sha256,omitempty" jsonschema:"minLength=64,maxLength=64,pattern=[a-fA-F0-9]{64},description=The SHA256 hash of the source archive"`
	MD5      string    `yaml:"md5,omitempty" json:"md5,omitempty" jsonschema:"minLength=32,maxLength=32,pattern=[a-fA-F0-9]{32},description=The MD5 hash of the source archive"`
	FileName string    `yaml:"file_name,omitempty" json:"file_name,omitempty" jsonschema:"minLength=1,description=A file name to rename the downloaded file to; does not apply to archives"`
}

// GitRepoURL is a git remote URL or a template expression evaluating to one.
type GitRepoURL string

func (GitRepoURL) JSONSchema() *jsonschema.Schema {
	return anyOf(patternString(patternGitURL), jinjaExpr())
}

// GitSource clones a git repository at its default branch. The rev/tag/branch
// variants below narrow the checkout.
type GitSource struct {
	BaseSource
	Git   GitRepoURL `yaml:"git" json:"git" jsonschema:"description=The URL that points to the git repository"`
	Depth *uint64    `yaml:"depth,omitempty" json:"depth,omitempty" jsonschema:"minimum=0,description=A value to use when shallow cloning the repository"`
	LFS   bool       `yaml:"lfs,omitempty" json:"lfs,omitempty" jsonschema:"default=false,description=Whether git-lfs files should be checked out as well"`
}

// GitRevSource checks out an explicit revision (hash or ref).
type GitRevSource struct {
	GitSource
	Rev string `yaml:"rev" json:"rev" jsonschema:"minLength=1,description=Revision to checkout (hash or ref)"`
}

// GitTagSource checks out a tag.
type GitTagSource struct {
	GitSource
	Tag string `yaml:"tag" json:"tag" jsonschema:"minLength=1,description=Tag to checkout"`
}

// GitBranchSource checks out a branch.
type GitBranchSource struct {
	GitSource
	Branch string `yaml:"branch" json:"branch" jsonschema:"minLength=1,description=Branch to check out"`
}

// LocalSource copies sources from a path on the local machine.
type LocalSource struct {
	BaseSource
	Path         string `yaml:"path" json:"path" jsonschema:"description=A path on the local machine that contains the source"`
	SHA256       string `yaml:"sha256,omitempty" json:"sha256,omitempty" jsonschema:"minLength=64,maxLength=64,pattern=[a-fA-F0-9]{64},description=The SHA256 hash of the source archive"`
	MD5          string `yaml:"md5,omitempty" json:"md5,omitempty" jsonschema:"minLength=32,maxLength=32,pattern=[a-fA-F0-9]{32},description=The MD5 hash of the source archive"`
	UseGitignore bool   `yaml:"use_gitignore,omitempty" json:"use_gitignore,omitempty" jsonschema:"default=true,description=Whether to honor the .gitignore file when copying the source"`
	FileName     string `yaml:"file_name,omitempty" json:"file_name,omitempty" jsonschema:"minLength=1,description=A file name to rename the file to; does not apply to archives"`
}

// sourceSchema is the union of every source form. The plain GitSource arm
// accepts a bare clone with no rev/tag/branch.
func sourceSchema() *jsonschema.Schema {
	return anyOf(
		ref("URLSource"),
		ref("GitRevSource"),
		ref("GitTagSource"),
		ref("GitBranchSource"),
		ref("GitSource"),
		ref("LocalSource"),
	)
}

// ConditionalSources holds source entries or selectors over them.
type ConditionalSources []any

func (ConditionalSources) JSONSchema() *jsonschema.Schema {
	return condList(sourceSchema())
}
