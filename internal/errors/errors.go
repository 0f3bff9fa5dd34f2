// Package errors provides structured error handling for the cratekit CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Validation errors are caused by a rejected package name or destination.
	Validation
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
	// Filesystem errors occur while writing the project skeleton.
	Filesystem
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Validation:
		return "Validation Error"
	case Configuration:
		return "Configuration Error"
	case Filesystem:
		return "Filesystem Error"
	default:
		return "Error"
	}
}

// ErrorKind identifies the specific failure within a category. Every kind
// is terminal for the current invocation; none are retried.
type ErrorKind int

const (
	// KindUnknown is the zero kind for wrapped errors without a specific classification.
	KindUnknown ErrorKind = iota
	// KindConflictingKinds signals that both library and binary outputs were requested.
	KindConflictingKinds
	// KindDestinationExists signals that the destination path already exists.
	KindDestinationExists
	// KindInvalidCharacter signals a package name character outside [A-Za-z0-9_-].
	KindInvalidCharacter
	// KindReservedName signals a package name reserved by the build tool or the language.
	KindReservedName
	// KindLeadingDigit signals a package name starting with a decimal digit.
	KindLeadingDigit
	// KindManifestExists signals an in-place init on a directory that already has a manifest.
	KindManifestExists
	// KindMissingArgument signals a missing required command argument.
	KindMissingArgument
	// KindUnknownFlag signals an unrecognized command-line flag.
	KindUnknownFlag
	// KindFilesystem signals an underlying filesystem failure during scaffolding.
	KindFilesystem
)

// CLIError is a structured error with category, kind, and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, Validation, etc.)
	Category ErrorCategory
	// Kind is the specific failure within the category.
	Kind ErrorKind
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates a new argument error with the given kind and remediation steps.
func NewArgumentError(kind ErrorKind, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Kind:        kind,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates a new argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(kind ErrorKind, message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Kind:        kind,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(kind ErrorKind, message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Validation,
		Kind:        kind,
		Message:     message,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewFilesystemError wraps an underlying filesystem failure. The cause is
// surfaced verbatim, not masked or retried.
func NewFilesystemError(message string, err error) *CLIError {
	return &CLIError{
		Category: Filesystem,
		Kind:     KindFilesystem,
		Message:  fmt.Sprintf("%s: %v", message, err),
		Err:      err,
	}
}

// IsCLIError checks if an error is a CLIError.
func IsCLIError(err error) bool {
	_, ok := err.(*CLIError)
	return ok
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}

// KindOf returns the kind of err, or KindUnknown when err is not a CLIError.
func KindOf(err error) ErrorKind {
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr.Kind
	}
	return KindUnknown
}
