// Package recipeschema provides:
//
// - A declarative model of the recipe.yaml package build recipe format (see recipe/)
// - Mechanical JSON Schema (draft 2020-12) generation from that model (Generate)
// - Validation of recipe documents against the generated schema (Validator)
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
//   - Keep only public APIs in the root package; the model lives under recipe/,
//     the CLI under cmd/recipe-schema.
//   - Generation is deterministic: the same model always yields byte-identical
//     output, so CI can diff the committed schema.json against a fresh run.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := recipeschema.Generate()
//
//	v, err := recipeschema.NewValidator()
//	err = v.ValidateYAML(recipeBytes)
//	if iss, ok := recipeschema.AsIssues(err); ok { ... }
package recipeschema
