// Package cli implements the cobra-based command line for system-cleanup.
//
// The binary has no subcommands: every cleanup action is a boolean flag on
// the root command (--clean, --cache, --journal, --all). Flags run in the
// order they are given, so cobra's own flag parsing is disabled and the
// argument vector is walked with pflag's ParseAll instead (see parse.go).
//
// A run goes through a fixed pipeline:
//   - privilege check (effective uid 0), before anything else
//   - argument parsing, which validates the whole vector first
//   - the requested actions, stopping at the first failure
//
// Run and Execute are the only places an error becomes an exit code. All
// dependencies with side effects are injected through Deps so tests can
// drive the real command with a recording runner.
package cli
