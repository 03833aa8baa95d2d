// Package recipe declares the shape of the recipe.yaml build recipe format,
// schema_version 1.
//
// The types here are purely declarative: recipes are validated as plain
// documents against the generated JSON Schema and are never decoded into
// these structs. Plain fields are reflected by invopop/jsonschema (with
// requiredness derived from the absence of omitempty); union-shaped fields
// use named carrier types whose JSONSchema methods spell out the accepted
// alternatives, so no union is ever collapsed lossily.
//
// SchemaDocument assembles the full document; cross-references between
// hand-built union schemas and reflected struct definitions are pinned by
// schemaIndex in schema.go.
package recipe
