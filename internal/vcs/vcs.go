// Package vcs decides whether a scaffolded project gets its own version
// control repository and provides the repository operations the scaffolder
// needs. It uses the go-git library so no git CLI installation is required.
package vcs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/cratekit/cratekit/internal/logging"
)

// Mode is the requested version control behavior.
type Mode int

const (
	// Auto lets the probe decide: no repository when already inside one,
	// otherwise initialize git.
	Auto Mode = iota
	// Git forces repository initialization, even nested inside a parent
	// repository.
	Git
	// None forces no repository and no ignore file.
	None
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Git:
		return "git"
	case None:
		return "none"
	default:
		return "auto"
	}
}

// ParseMode parses a --vcs flag or config value. The empty string means
// the caller expressed no preference.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "git":
		return Git, nil
	case "none":
		return None, nil
	default:
		return Auto, fmt.Errorf("unknown vcs mode %q (expected git, none, or auto)", s)
	}
}

// Decision is the computed version control outcome. It is computed once
// before scaffolding begins and never recomputed.
type Decision int

const (
	// InitGit initializes a repository at the destination and writes an
	// ignore file.
	InitGit Decision = iota
	// NoVcs creates neither a repository nor an ignore file.
	NoVcs
)

// RepoRootFunc reports whether dir is the root of a repository.
// Injectable so the ancestor walk stays a pure function in tests.
type RepoRootFunc func(dir string) bool

// IsRepoRoot is the default probe: a directory is a repository root when
// it contains a `.git` entry. A plain file also counts (worktrees and
// submodules use a gitdir pointer file).
func IsRepoRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// InsideRepository walks from start upward through every ancestor and
// reports whether any of them is a repository root. start itself is
// included in the walk.
func InsideRepository(start string, isRoot RepoRootFunc) bool {
	if isRoot == nil {
		isRoot = IsRepoRoot
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return false
	}

	for {
		if isRoot(dir) {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

// Decide computes the version control decision for a scaffold rooted under
// start. An explicit request (Git or None) always wins: a caller asking
// for git gets a repository even nested inside a parent repository. Auto
// avoids nested repositories for sub-packages created inside an existing
// project tree, and defaults to git everywhere else.
func Decide(start string, requested Mode, isRoot RepoRootFunc) Decision {
	logger := logging.GetLogger("vcs")

	switch requested {
	case Git:
		logger.Debug().Str("start", start).Msg("explicit git request, initializing repository")
		return InitGit
	case None:
		logger.Debug().Str("start", start).Msg("explicit none request, skipping repository")
		return NoVcs
	}

	if InsideRepository(start, isRoot) {
		logger.Debug().Str("start", start).Msg("already inside a repository, skipping repository")
		return NoVcs
	}

	logger.Debug().Str("start", start).Msg("no ancestor repository, initializing repository")
	return InitGit
}

// InitRepository initializes a new repository rooted at path.
func InitRepository(path string) error {
	if _, err := git.PlainInit(path, false); err != nil {
		return fmt.Errorf("initializing repository at %s: %w", path, err)
	}
	return nil
}
