package scaffold

import (
	"path/filepath"

	"github.com/cratekit/cratekit/internal/errors"
	"github.com/cratekit/cratekit/internal/vcs"
)

// Kind is the output kind of a scaffolded package.
type Kind int

const (
	// Binary produces an executable entry point (src/main.rs).
	Binary Kind = iota
	// Library produces a library module with a self-testing stub (src/lib.rs).
	Library
)

// String returns the human-readable kind used in the confirmation line.
func (k Kind) String() string {
	if k == Library {
		return "library"
	}
	return "binary (application)"
}

// ProjectSpec describes one scaffolding run. It is created once per
// invocation from caller input and immutable thereafter.
type ProjectSpec struct {
	// Path is the destination path as given by the caller.
	Path string
	// Kind is the package output kind.
	Kind Kind
	// ExplicitName is the --name override; empty when the name was
	// derived from the path.
	ExplicitName string
	// VCS is the requested version control mode (flag > config > auto).
	VCS vcs.Mode
	// Name is the resolved package name.
	Name string
}

// Explicit reports whether the package name was supplied rather than
// derived from the destination path.
func (s *ProjectSpec) Explicit() bool {
	return s.ExplicitName != ""
}

// NewProjectSpec builds the immutable spec for one run. lib and bin are
// the raw kind flags; requesting both is a conflict and fails before any
// filesystem access. vcsFlag is the --vcs value and cfgVCS the config
// default; the flag wins, and either counts as an explicit request.
//
// Name validation is deliberately not performed here: the scaffolder
// checks the destination first, matching the documented failure order.
func NewProjectSpec(path string, lib, bin bool, explicitName, vcsFlag, cfgVCS string) (*ProjectSpec, error) {
	if lib && bin {
		return nil, errors.NewArgumentError(
			errors.KindConflictingKinds,
			"can't specify both lib and binary outputs",
			"pass exactly one of --lib or --bin",
		)
	}

	kind := Binary
	if lib {
		kind = Library
	}

	requested := vcsFlag
	if requested == "" {
		requested = cfgVCS
	}
	mode, err := vcs.ParseMode(requested)
	if err != nil {
		return nil, errors.NewArgumentError(errors.KindUnknown, err.Error())
	}

	name := explicitName
	if name == "" {
		name = filepath.Base(filepath.Clean(path))
	}

	return &ProjectSpec{
		Path:         path,
		Kind:         kind,
		ExplicitName: explicitName,
		VCS:          mode,
		Name:         name,
	}, nil
}
