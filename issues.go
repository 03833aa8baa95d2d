package recipeschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeParseError reports input that is not valid YAML or JSON.
	CodeParseError = "parse_error"
	// CodeInvalidDocument reports a document whose top level is not a mapping.
	CodeInvalidDocument = "invalid_document"
	// CodeSchemaViolation reports a document that fails schema validation.
	CodeSchemaViolation = "schema_violation"
	// CodeGenerateError reports a model shape that could not be projected
	// into JSON Schema.
	CodeGenerateError = "generate_error"
	// CodeDrift reports a committed schema that no longer matches a fresh
	// generation run.
	CodeDrift = "drift"
)

// Issue represents a single validation or generation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /source/0/sha256).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. schema_violation at /source/0/sha256: ...
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, msg string) Issues {
	return Issues{Issue{Path: "/", Code: code, Message: msg}}
}
