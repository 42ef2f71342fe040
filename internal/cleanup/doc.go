// Package cleanup implements the three maintenance actions and the
// fail-fast sequence that runs them.
//
// Each action prints a start line, drives one external tool (two for the
// orphan cleanup), and prints a success line or returns a model.CLIError
// describing the failure. Actions never print their own failure; the CLI
// does that once, on its way to the exit code.
//
// When a diskspace.Probe is configured, each action also samples free
// space on the filesystem holding its data directory before and after it
// runs, and appends the amount reclaimed to the success line. A failed
// sample is logged at debug level and never fails the action.
package cleanup
