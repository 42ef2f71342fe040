package model

import (
	"errors"
	"fmt"
)

// ExitCode defines the CLI exit codes. Scripts only get to distinguish
// success from failure; the error kind is reported on stderr.
type ExitCode int

const (
	// ExitSuccess indicates every requested action completed.
	ExitSuccess ExitCode = 0

	// ExitFailure indicates a usage error, a privilege error, or the first
	// failing cleanup action.
	ExitFailure ExitCode = 1
)

// ErrorKind is a coarse-grained categorization of CLI errors.
type ErrorKind string

const (
	// KindPrivilege means the process is not running with root privilege.
	KindPrivilege ErrorKind = "privilege"

	// KindUsage means the arguments were missing or not recognized.
	KindUsage ErrorKind = "usage"

	// KindLaunch means an external tool could not be started at all.
	KindLaunch ErrorKind = "launch"

	// KindExit means an external tool ran and exited with a non-zero status.
	KindExit ErrorKind = "exit"
)

// CLIError is a custom error type that carries an exit code and a kind.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes and output.
type CLIError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError of the given kind.
func NewCLIError(kind ErrorKind, message string) *CLIError {
	return &CLIError{Kind: kind, Code: ExitFailure, Message: message}
}

// WrapCLIError creates a new CLIError of the given kind that wraps an
// existing error.
func WrapCLIError(kind ErrorKind, message string, err error) *CLIError {
	return &CLIError{Kind: kind, Code: ExitFailure, Message: message, Err: err}
}

// KindOf returns the kind of the outermost CLIError in err's chain, or an
// empty kind if there is none.
func KindOf(err error) ErrorKind {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Kind
	}
	return ""
}

// IsKind reports whether err carries a CLIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
