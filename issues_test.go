package recipeschema_test

import (
	"fmt"
	"strings"
	"testing"

	recipeschema "github.com/prefix-community/recipe-schema"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := recipeschema.Issues{
		{Path: "/a", Code: recipeschema.CodeSchemaViolation, Message: "boom"},
		{Path: "/b", Code: recipeschema.CodeSchemaViolation},
		{Path: "/c", Code: recipeschema.CodeSchemaViolation},
		{Path: "/d", Code: recipeschema.CodeSchemaViolation},
	}
	s := iss.Error()
	if !strings.Contains(s, "schema_violation at /a: boom") {
		t.Fatalf("summary misses first issue: %q", s)
	}
	if !strings.Contains(s, "(total 4)") {
		t.Fatalf("summary misses the total: %q", s)
	}
	if strings.Contains(s, "/d") {
		t.Fatalf("summary should cap the shown issues: %q", s)
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	iss := recipeschema.Issues{{Path: "/", Code: recipeschema.CodeParseError}}
	wrapped := fmt.Errorf("loading recipe: %w", iss)
	got, ok := recipeschema.AsIssues(wrapped)
	if !ok || len(got) != 1 {
		t.Fatalf("AsIssues failed on wrapped error: %v", wrapped)
	}
	if _, ok := recipeschema.AsIssues(nil); ok {
		t.Fatalf("AsIssues(nil) must report false")
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	got := recipeschema.AppendIssues(nil, recipeschema.Issue{Path: "/", Code: recipeschema.CodeDrift})
	if len(got) != 1 {
		t.Fatalf("AppendIssues(nil, ...) = %v", got)
	}
}
