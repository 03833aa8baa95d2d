package recipe

import "github.com/invopop/jsonschema"

// Requirements lists the package dependencies per environment.
type Requirements struct {
	Build            ConditionalSpecs  `yaml:"build,omitempty" json:"build,omitempty" jsonschema:"description=Dependencies to install on the build platform architecture; everything that needs to execute at build time"`
	Host             ConditionalSpecs  `yaml:"host,omitempty" json:"host,omitempty" jsonschema:"description=Dependencies to install on the host platform architecture; all the packages the build links against"`
	Run              ConditionalSpecs  `yaml:"run,omitempty" json:"run,omitempty" jsonschema:"description=Dependencies that should be installed alongside this package"`
	RunConstraints   ConditionalSpecs  `yaml:"run_constraints,omitempty" json:"run_constraints,omitempty" jsonschema:"description=Constraints on optional dependencies at runtime"`
	RunExports       RunExportsValue   `yaml:"run_exports,omitempty" json:"run_exports,omitempty" jsonschema:"description=The run exports of this package"`
	IgnoreRunExports *IgnoreRunExports `yaml:"ignore_run_exports,omitempty" json:"ignore_run_exports,omitempty" jsonschema:"description=Ignore run exports by name or from certain packages"`
}

// RunExportsValue is either a conditional spec list (weak exports) or the
// categorized RunExports object.
type RunExportsValue []any

func (RunExportsValue) JSONSchema() *jsonschema.Schema {
	return anyOf(condList(matchSpec()), ref("RunExports"))
}

// RunExports are specs a package injects into the requirements of its
// dependents.
type RunExports struct {
	Weak              ConditionalSpecs `yaml:"weak,omitempty" json:"weak,omitempty" jsonschema:"description=Weak run exports apply from the host env to the run env"`
	Strong            ConditionalSpecs `yaml:"strong,omitempty" json:"strong,omitempty" jsonschema:"description=Strong run exports apply from the build and host env to the run env"`
	Noarch            ConditionalSpecs `yaml:"noarch,omitempty" json:"noarch,omitempty" jsonschema:"description=Noarch run exports are the only ones used when building noarch packages"`
	WeakConstraints   ConditionalSpecs `yaml:"weak_constraints,omitempty" json:"weak_constraints,omitempty" jsonschema:"description=Weak run constraints add run_constraints from the host env"`
	StrongConstraints ConditionalSpecs `yaml:"strong_constraints,omitempty" json:"strong_constraints,omitempty" jsonschema:"description=Strong run constraints add run_constraints from the build and host env"`
}

// IgnoreRunExports filters incoming run exports.
type IgnoreRunExports struct {
	ByName      ConditionalStrings `yaml:"by_name,omitempty" json:"by_name,omitempty" jsonschema:"description=Ignore run exports by name"`
	FromPackage ConditionalStrings `yaml:"from_package,omitempty" json:"from_package,omitempty" jsonschema:"description=Ignore run exports that come from the specified packages"`
}
