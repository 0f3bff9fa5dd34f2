// Package cli wires the cratekit commands. Each subcommand lives in its
// own file and registers itself on the root command from init().
package cli

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cratekit/cratekit/internal/config"
	"github.com/cratekit/cratekit/internal/errors"
	"github.com/cratekit/cratekit/internal/logging"
	"github.com/cratekit/cratekit/internal/version"
)

var (
	flagVerbose    int
	flagNoColor    bool
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "cratekit",
	Short: "Scaffold new Cargo packages",
	Long: `cratekit creates new Cargo packages: a manifest, a minimal source
tree, and (unless you are already inside a repository) a fresh git
repository with a sensible .gitignore.

Author metadata is resolved from, in order: the cratekit config file,
CRATEKIT_NAME/CRATEKIT_EMAIL, USER/USERNAME with EMAIL, repository-local
git config, global git config, and the GIT_AUTHOR_*/GIT_COMMITTER_*
environment pairs.`,
	Example: `  # Create a binary (application) package
  cratekit new hello

  # Create a library without a git repository
  cratekit new mylib --lib --vcs none

  # Initialize the current directory in place
  cratekit init`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagVerbose, flagNoColor)
		if flagNoColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "Increase logging verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to the user config file")
}

// Execute runs the CLI, printing any failure as exactly one structured
// error message on stderr. The returned error is nil on success.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		cliErr = classifyError(err)
	}
	errors.PrintError(cliErr)
	return cliErr
}

// ExitCodeFor maps an error returned by Execute to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		return ExitValidationFailed
	}
	switch cliErr.Category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigInvalid
	case errors.Filesystem:
		return ExitFilesystemFailed
	default:
		return ExitValidationFailed
	}
}

// classifyError turns flag-parsing failures from cobra into the
// structured taxonomy; anything else is surfaced as a validation failure.
func classifyError(err error) *errors.CLIError {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown flag") || strings.HasPrefix(msg, "unknown shorthand flag"):
		return errors.NewArgumentErrorWithUsage(
			errors.KindUnknownFlag, msg, rootCmd.UseLine(),
			"run `cratekit --help` to list the supported flags",
		)
	case strings.Contains(msg, "arg(s)") || strings.Contains(msg, "argument"):
		return errors.NewArgumentError(errors.KindMissingArgument, msg)
	default:
		return &errors.CLIError{Category: errors.Validation, Message: msg}
	}
}

// loadToolConfig loads the layered tool configuration, honoring --config.
func loadToolConfig() (*config.Configuration, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		UserConfigPath: flagConfigPath,
	})
	if err != nil {
		return nil, errors.NewConfigError(err.Error(),
			"fix or remove the offending config file, or point --config at a valid one")
	}
	return cfg, nil
}
