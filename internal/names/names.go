// Package names validates proposed package names before any filesystem
// mutation takes place. Validation is a pure predicate: rules are checked
// in a fixed order and the first match wins.
package names

import (
	"fmt"

	"github.com/cratekit/cratekit/internal/errors"
)

// overrideRemedy is suggested only for names derived from the destination
// path. When --name was already used there is no point suggesting it again.
const overrideRemedy = "use --name to override the package name"

// artifactNames are directory and target names the build tool generates
// itself. A binary package with one of these names would collide with
// build output.
var artifactNames = map[string]bool{
	"deps":        true,
	"examples":    true,
	"build":       true,
	"incremental": true,
}

// keywords are the language keywords, plus `test` which is claimed by the
// built-in test harness.
var keywords = map[string]bool{
	"abstract": true, "alignof": true, "as": true, "become": true,
	"box": true, "break": true, "const": true, "continue": true,
	"crate": true, "do": true, "else": true, "enum": true,
	"extern": true, "false": true, "final": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true,
	"let": true, "loop": true, "macro": true, "match": true,
	"mod": true, "move": true, "mut": true, "offsetof": true,
	"override": true, "priv": true, "proc": true, "pub": true,
	"pure": true, "ref": true, "return": true, "self": true,
	"sizeof": true, "static": true, "struct": true, "super": true,
	"test": true, "trait": true, "true": true, "type": true,
	"typeof": true, "unsafe": true, "unsized": true, "use": true,
	"virtual": true, "where": true, "while": true, "yield": true,
}

// Validate checks a candidate package name. binary reports whether the
// package will produce an executable (the artifact-name check applies only
// then). explicit reports whether the name was supplied with --name rather
// than derived from the destination path; explicit names do not get the
// --name remedy attached.
//
// Rules, first match wins:
//  1. character outside [A-Za-z0-9_-]
//  2. name collides with a generated build artifact (binary packages)
//  3. name is a reserved language keyword
//  4. name starts with a decimal digit
func Validate(name string, binary, explicit bool) error {
	var remedy []string
	if !explicit {
		remedy = []string{overrideRemedy}
	}

	for _, c := range name {
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-' {
			continue
		}
		return errors.NewValidationError(
			errors.KindInvalidCharacter,
			fmt.Sprintf("invalid character `%c` in package name: `%s`", c, name),
			remedy...,
		)
	}

	if binary && artifactNames[name] {
		return errors.NewValidationError(
			errors.KindReservedName,
			fmt.Sprintf("the name `%s` collides with a build artifact and cannot be used as a package name", name),
			remedy...,
		)
	}

	if keywords[name] {
		return errors.NewValidationError(
			errors.KindReservedName,
			fmt.Sprintf("the name `%s` cannot be used as a package name", name),
			remedy...,
		)
	}

	if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		return errors.NewValidationError(
			errors.KindLeadingDigit,
			"package names starting with a digit cannot be used as a package name",
			remedy...,
		)
	}

	return nil
}
