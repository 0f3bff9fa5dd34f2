package vcs

import (
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"

	"github.com/cratekit/cratekit/internal/logging"
)

// ConfigReader provides read-only access to version control identity
// configuration. Injected into the identity resolver so tests can supply
// a deterministic fake instead of the machine-wide git state.
type ConfigReader interface {
	// LocalUser returns user.name and user.email from the per-repository
	// configuration of the repository containing repoPath. Both are empty
	// when there is no repository or no value.
	LocalUser(repoPath string) (name, email string)

	// GlobalUser returns user.name and user.email from the machine-wide
	// configuration. Both are empty when there is no value.
	GlobalUser() (name, email string)
}

// GitConfig reads identity configuration through go-git. Every lookup is
// failure-tolerant: an absent or unreadable config is "no value", never an
// error that could abort scaffolding.
type GitConfig struct{}

// LocalUser implements ConfigReader.
func (GitConfig) LocalUser(repoPath string) (string, string) {
	logger := logging.GetLogger("vcs")

	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		logger.Debug().Str("path", repoPath).Msg("no repository for local config lookup")
		return "", ""
	}

	cfg, err := repo.Config()
	if err != nil {
		logger.Debug().Err(err).Msg("local config unreadable, treating as absent")
		return "", ""
	}

	return cfg.User.Name, cfg.User.Email
}

// GlobalUser implements ConfigReader.
func (GitConfig) GlobalUser() (string, string) {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		logger := logging.GetLogger("vcs")
		logger.Debug().Err(err).Msg("global config unreadable, treating as absent")
		return "", ""
	}

	return cfg.User.Name, cfg.User.Email
}
