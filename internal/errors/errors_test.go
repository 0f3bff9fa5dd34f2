// Package errors tests structured error construction and formatting.
// Related: internal/errors/errors.go, internal/errors/format.go
// Tags: errors, cli, remediation

package errors

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIError_Error(t *testing.T) {
	t.Parallel()

	err := NewValidationError(KindReservedName, "the name `test` cannot be used as a crate name")
	assert.Equal(t, "the name `test` cannot be used as a crate name", err.Error())
	assert.Equal(t, Validation, err.Category)
	assert.Equal(t, KindReservedName, err.Kind)
}

func TestNewFilesystemError_WrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := NewFilesystemError("creating directory foo", cause)

	assert.Equal(t, KindFilesystem, err.Kind)
	assert.Contains(t, err.Message, "permission denied")
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want ErrorKind
	}{
		"cli error carries its kind": {
			err:  NewValidationError(KindLeadingDigit, "package names starting with a digit cannot be used as a crate name"),
			want: KindLeadingDigit,
		},
		"plain error maps to unknown": {
			err:  errors.New("boom"),
			want: KindUnknown,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := NewArgumentErrorWithUsage(
		KindMissingArgument,
		"missing destination path",
		"cratekit new [options] <path>",
		"supply the path of the project to create",
	)

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "error [Argument Error]: missing destination path")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "cratekit new [options] <path>")
	assert.Contains(t, out, "• supply the path of the project to create")
}

func TestFprintError_NilIsSilent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FprintError(&buf, nil)
	require.Empty(t, buf.String())
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Argument Error", Argument.String())
	assert.Equal(t, "Validation Error", Validation.String())
	assert.Equal(t, "Configuration Error", Configuration.String())
	assert.Equal(t, "Filesystem Error", Filesystem.String())
	assert.Equal(t, "Error", ErrorCategory(99).String())
}
