package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cratekit/cratekit/internal/errors"
	"github.com/cratekit/cratekit/internal/ident"
	"github.com/cratekit/cratekit/internal/scaffold"
)

var (
	initLib  bool
	initBin  bool
	initName string
	initVcs  string
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a new package in an existing directory",
	Long: `Create a new package in an existing directory (the current one by
default). The directory keeps any source files it already has; only the
missing pieces of the skeleton are written. Fails if a manifest is
already present.`,
	Example: `  # Initialize the current directory
  cratekit init

  # Initialize an existing directory as a library
  cratekit init mylib --lib`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initLib, "lib", false, "Create a library package")
	initCmd.Flags().BoolVar(&initBin, "bin", false, "Create a binary (application) package")
	initCmd.Flags().StringVar(&initName, "name", "", "Set the package name, overriding the directory-derived default")
	initCmd.Flags().StringVar(&initVcs, "vcs", "", "Version control mode: git, none, or auto")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	// Resolve before deriving the name so `cratekit init` in the current
	// directory names the package after the directory, not ".".
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.NewFilesystemError("resolving destination path", err)
	}

	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	spec, err := scaffold.NewProjectSpec(abs, initLib, initBin, initName, initVcs, cfg.VCS)
	if err != nil {
		return err
	}

	s := &scaffold.Scaffolder{Out: cmd.OutOrStdout()}
	return s.InitInPlace(spec, ident.Environ(), cfg)
}
