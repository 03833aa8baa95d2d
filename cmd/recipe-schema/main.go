package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	recipeschema "github.com/prefix-community/recipe-schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "generate":
		generateCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "recipe-schema CLI\n\nUsage:\n  recipe-schema generate [-variant] [-o out.json]\n  recipe-schema check [-variant] [-schema schema.json]\n  recipe-schema validate [-schema schema.json] recipe.yaml [...]\n\nNotes:\n  - generate writes the JSON Schema for recipe.yaml (or variants.yaml with -variant) to stdout.\n  - check exits non-zero when the committed schema drifts from a fresh generation run.")
}

func generate(variant bool) []byte {
	var b []byte
	var err error
	if variant {
		b, err = recipeschema.GenerateVariant()
	} else {
		b, err = recipeschema.Generate()
	}
	if err != nil {
		fatalf("generate: %v", err)
	}
	return b
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var out string
	var variant bool
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.BoolVar(&variant, "variant", false, "generate the variant configuration schema instead")
	_ = fs.Parse(args)

	b := generate(variant)
	if out == "" {
		if _, err := os.Stdout.Write(b); err != nil {
			fatalf("writing schema: %v", err)
		}
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath string
	var variant bool
	fs.StringVar(&schemaPath, "schema", "schema.json", "committed schema file to compare against")
	fs.BoolVar(&variant, "variant", false, "check the variant configuration schema instead")
	_ = fs.Parse(args)

	want := generate(variant)
	got, err := os.ReadFile(schemaPath)
	if err != nil {
		fatalf("reading %s: %v", schemaPath, err)
	}
	if !bytes.Equal(got, want) {
		fatalf("%s drifts from the generated schema (regenerate with: recipe-schema generate -o %s)", schemaPath, schemaPath)
	}
	fmt.Fprintf(os.Stderr, "%s is up to date\n", schemaPath)
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "validate against this schema file instead of a fresh generation")
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(2)
	}

	var v *recipeschema.Validator
	var err error
	if schemaPath != "" {
		var b []byte
		if b, err = os.ReadFile(schemaPath); err != nil {
			fatalf("reading %s: %v", schemaPath, err)
		}
		v, err = recipeschema.NewValidatorFromSchema(b)
	} else {
		v, err = recipeschema.NewValidator()
	}
	if err != nil {
		fatalf("compiling schema: %v", err)
	}

	failed := false
	for _, path := range files {
		doc, err := recipeschema.DecodeFile(path)
		if err == nil {
			err = v.Validate(doc)
		}
		if err == nil {
			fmt.Printf("%s: ok\n", path)
			continue
		}
		failed = true
		if iss, ok := recipeschema.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Printf("%s: %s at %s: %s\n", path, it.Code, it.Path, it.Message)
			}
			continue
		}
		fmt.Printf("%s: %v\n", path, err)
	}
	if failed {
		os.Exit(1)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
