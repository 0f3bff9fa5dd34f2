// Package ident resolves the author identity written into a scaffolded
// manifest. Identity comes from an ordered chain of sources; the first
// source that yields a non-empty name determines the whole identity, and
// lower-ranked sources are never consulted.
package ident

import (
	"os"
	"strings"
)

// Identity is a resolved author identity. Absent fields are empty strings
// and are omitted from the rendered author string.
type Identity struct {
	Name  string
	Email string
}

// IsZero reports whether no source yielded a name. A zero identity means
// the manifest's authors field is omitted entirely, never written as an
// empty-string entry.
func (id Identity) IsZero() bool {
	return id.Name == ""
}

// AuthorString renders the escaped display form: `name` or `name <email>`.
// Double quotes are backslash-escaped because the value is embedded in a
// quoted manifest string.
func (id Identity) AuthorString() string {
	if id.IsZero() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(Escape(id.Name))
	if id.Email != "" {
		sb.WriteString(" <")
		sb.WriteString(Escape(id.Email))
		sb.WriteString(">")
	}
	return sb.String()
}

// Escape backslash-escapes double quotes for embedding in a quoted string.
func Escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Environ converts the process environment into the map form the resolver
// consumes. Passing the environment as a value keeps resolution
// deterministic in tests.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}
