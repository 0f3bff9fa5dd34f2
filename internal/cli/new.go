package cli

import (
	"github.com/spf13/cobra"

	"github.com/cratekit/cratekit/internal/errors"
	"github.com/cratekit/cratekit/internal/ident"
	"github.com/cratekit/cratekit/internal/scaffold"
)

var (
	newLib  bool
	newBin  bool
	newName string
	newVcs  string
)

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new package at <path>",
	Long: `Create a new package at the given path.

The package name is taken from the final path segment unless --name is
passed. A git repository is initialized at the destination unless the
path is already inside an existing repository or --vcs none is given.`,
	Example: `  # Create a binary (application) package
  cratekit new foo

  # Create a library
  cratekit new foo --lib

  # Nested inside an existing repository, force a fresh one anyway
  cratekit new components/sub --vcs git

  # The path segment is not a valid package name; override it
  cratekit new my.app --name myapp`,
	Args:         needsPath("cratekit new [options] <path>"),
	SilenceUsage: true,
	RunE:         runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().BoolVar(&newLib, "lib", false, "Create a library package")
	newCmd.Flags().BoolVar(&newBin, "bin", false, "Create a binary (application) package")
	newCmd.Flags().StringVar(&newName, "name", "", "Set the package name, overriding the path-derived default")
	newCmd.Flags().StringVar(&newVcs, "vcs", "", "Version control mode: git, none, or auto")
}

// needsPath validates the single destination argument with a structured
// error instead of cobra's default text.
func needsPath(usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 1:
			return nil
		case 0:
			return errors.NewArgumentErrorWithUsage(
				errors.KindMissingArgument,
				"missing destination path",
				usage,
				"supply the path of the project to create",
			)
		default:
			return errors.NewArgumentErrorWithUsage(
				errors.KindMissingArgument,
				"too many arguments",
				usage,
			)
		}
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	spec, err := scaffold.NewProjectSpec(args[0], newLib, newBin, newName, newVcs, cfg.VCS)
	if err != nil {
		return err
	}

	s := &scaffold.Scaffolder{Out: cmd.OutOrStdout()}
	return s.Create(spec, ident.Environ(), cfg)
}
