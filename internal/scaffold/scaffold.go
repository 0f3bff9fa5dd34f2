// Package scaffold orchestrates project creation: it validates the
// destination and package name, decides the version control outcome,
// resolves the author identity, and writes the project skeleton. Each run
// is a strictly ordered synchronous sequence; validation failures
// guarantee zero filesystem writes, while write failures after directory
// creation surface the underlying cause verbatim.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cratekit/cratekit/internal/config"
	"github.com/cratekit/cratekit/internal/errors"
	"github.com/cratekit/cratekit/internal/ident"
	"github.com/cratekit/cratekit/internal/logging"
	"github.com/cratekit/cratekit/internal/manifest"
	"github.com/cratekit/cratekit/internal/names"
	"github.com/cratekit/cratekit/internal/vcs"
)

// Scaffolder creates project skeletons. The zero value is usable; the
// fields exist so tests can inject a repository probe, a fake git config,
// and an output writer.
type Scaffolder struct {
	// IsRepoRoot overrides the repository-root probe (default: `.git` entry).
	IsRepoRoot vcs.RepoRootFunc
	// GitConfig overrides the git identity reader (default: go-git backed).
	GitConfig vcs.ConfigReader
	// Out receives the one-line confirmation (default: os.Stdout).
	Out io.Writer
}

func (s *Scaffolder) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Scaffolder) gitConfig() vcs.ConfigReader {
	if s.GitConfig != nil {
		return s.GitConfig
	}
	return vcs.GitConfig{}
}

// Create scaffolds a new project at spec.Path. The destination must not
// exist yet; the repository-ancestor walk starts at its parent.
func (s *Scaffolder) Create(spec *ProjectSpec, env map[string]string, cfg *config.Configuration) error {
	if _, err := os.Stat(spec.Path); err == nil {
		return errors.NewValidationError(
			errors.KindDestinationExists,
			fmt.Sprintf("destination `%s` already exists", spec.Path),
			"use `cratekit init` to initialize the directory in place",
		)
	}

	if err := names.Validate(spec.Name, spec.Kind == Binary, spec.Explicit()); err != nil {
		return err
	}

	abs, err := filepath.Abs(spec.Path)
	if err != nil {
		return errors.NewFilesystemError("resolving destination path", err)
	}
	start := filepath.Dir(abs)

	return s.scaffold(spec, env, cfg, start, false)
}

// InitInPlace scaffolds into an existing (or current) directory: the
// destination may already exist, the repository-ancestor walk starts at
// the destination itself, and an existing manifest is rejected.
func (s *Scaffolder) InitInPlace(spec *ProjectSpec, env map[string]string, cfg *config.Configuration) error {
	if manifest.Exists(spec.Path) {
		return errors.NewValidationError(
			errors.KindManifestExists,
			fmt.Sprintf("`%s` already exists in `%s`", manifest.FileName, spec.Path),
			"use `cratekit new` to create a project in a fresh directory",
		)
	}

	if err := names.Validate(spec.Name, spec.Kind == Binary, spec.Explicit()); err != nil {
		return err
	}

	abs, err := filepath.Abs(spec.Path)
	if err != nil {
		return errors.NewFilesystemError("resolving destination path", err)
	}

	return s.scaffold(spec, env, cfg, abs, true)
}

// scaffold performs the ordered write sequence shared by Create and
// InitInPlace. start is where the repository-ancestor walk begins.
// inPlace relaxes the template write so existing source files are kept.
func (s *Scaffolder) scaffold(spec *ProjectSpec, env map[string]string, cfg *config.Configuration, start string, inPlace bool) error {
	logger := logging.GetLogger("scaffold")

	// Computed once; never recomputed after writes begin.
	decision := vcs.Decide(start, spec.VCS, s.IsRepoRoot)

	resolver := ident.NewResolver(cfg.Name, cfg.Email, env, start, s.gitConfig())
	author := resolver.Resolve().AuthorString()

	srcDir := filepath.Join(spec.Path, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return errors.NewFilesystemError(fmt.Sprintf("creating directory `%s`", srcDir), err)
	}

	manifestPath := filepath.Join(spec.Path, manifest.FileName)
	if err := os.WriteFile(manifestPath, []byte(manifest.Render(spec.Name, author)), 0644); err != nil {
		return errors.NewFilesystemError(fmt.Sprintf("writing `%s`", manifestPath), err)
	}

	if err := s.writeTemplate(spec, srcDir, inPlace); err != nil {
		return err
	}

	if decision == vcs.InitGit {
		if err := vcs.InitRepository(spec.Path); err != nil {
			return errors.NewFilesystemError(fmt.Sprintf("initializing repository at `%s`", spec.Path), err)
		}
		ignorePath := filepath.Join(spec.Path, ".gitignore")
		if err := os.WriteFile(ignorePath, []byte(ignoreContents(spec.Kind)), 0644); err != nil {
			return errors.NewFilesystemError(fmt.Sprintf("writing `%s`", ignorePath), err)
		}
	}

	logger.Debug().
		Str("name", spec.Name).
		Str("kind", spec.Kind.String()).
		Bool("repository", decision == vcs.InitGit).
		Msg("project scaffolded")

	fmt.Fprintf(s.out(), "Created %s `%s` project\n", spec.Kind, spec.Name)
	return nil
}

// writeTemplate writes exactly one of the two source templates. In-place
// initialization keeps an existing source file instead of clobbering it.
func (s *Scaffolder) writeTemplate(spec *ProjectSpec, srcDir string, inPlace bool) error {
	file, contents := "main.rs", binSource
	if spec.Kind == Library {
		file, contents = "lib.rs", libSource
	}

	path := filepath.Join(srcDir, file)
	if inPlace {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return errors.NewFilesystemError(fmt.Sprintf("writing `%s`", path), err)
	}
	return nil
}
