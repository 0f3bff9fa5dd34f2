// Package cli tests the root command structure, error classification, and
// exit-code mapping.
// Related: internal/cli/root.go
// Tags: cli, root, exit-codes

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierrors "github.com/cratekit/cratekit/internal/errors"
)

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "cratekit", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "no-color", "config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s should exist", name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "new")
	assert.Contains(t, names, "init")
}

func TestClassifyError(t *testing.T) {
	tests := map[string]struct {
		err      error
		wantKind clierrors.ErrorKind
	}{
		"unknown flag": {
			err:      errors.New("unknown flag: --flag"),
			wantKind: clierrors.KindUnknownFlag,
		},
		"unknown shorthand flag": {
			err:      errors.New(`unknown shorthand flag: 'z' in -z`),
			wantKind: clierrors.KindUnknownFlag,
		},
		"argument count": {
			err:      errors.New("accepts at most 1 arg(s), received 2"),
			wantKind: clierrors.KindMissingArgument,
		},
		"anything else": {
			err:      errors.New("boom"),
			wantKind: clierrors.KindUnknown,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := classifyError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantKind, got.Kind)
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil is success": {
			err:  nil,
			want: ExitSuccess,
		},
		"argument errors": {
			err:  clierrors.NewArgumentError(clierrors.KindMissingArgument, "missing destination path"),
			want: ExitInvalidArguments,
		},
		"validation errors": {
			err:  clierrors.NewValidationError(clierrors.KindReservedName, "reserved"),
			want: ExitValidationFailed,
		},
		"config errors": {
			err:  clierrors.NewConfigError("bad config"),
			want: ExitConfigInvalid,
		},
		"filesystem errors": {
			err:  clierrors.NewFilesystemError("writing", errors.New("disk full")),
			want: ExitFilesystemFailed,
		},
		"plain errors": {
			err:  errors.New("boom"),
			want: ExitValidationFailed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}
