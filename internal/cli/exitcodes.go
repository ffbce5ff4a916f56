package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: the terminal UI failing, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested file was not found.
	// Use for: a scenario or theme path that does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: scenario YAML that cannot be parsed or has no events.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: an initial board with duplicate or wrongly prefixed ids.
	ExitValidation = 5
)

// ExitCodeError carries the exit code a command wants the process to end with
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// withExitCode wraps err so main can exit with code
func withExitCode(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}
