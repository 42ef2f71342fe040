// Package model defines the domain types and value objects for the
// system-cleanup CLI.
//
// This package contains pure data structures with no external dependencies.
// It names the cleanup actions (Action) the CLI can dispatch, and defines
// the exit codes (ExitCode) and the error type (CLIError) that carries an
// exit code and an error kind for proper OS process exit handling.
package model
