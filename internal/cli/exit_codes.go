package cli

// Exit codes for the cratekit CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitValidationFailed indicates a rejected name or destination.
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates invalid command arguments or flags.
	ExitInvalidArguments = 2

	// ExitConfigInvalid indicates an unreadable or invalid config file.
	ExitConfigInvalid = 3

	// ExitFilesystemFailed indicates a write failure during scaffolding.
	ExitFilesystemFailed = 4
)
