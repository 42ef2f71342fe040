// Package proc runs the external system tools the cleanup actions are
// built on.
//
// Every invocation is a direct os/exec call with an explicit argument
// vector; nothing is ever passed through a shell, so package names and
// other operands cannot be reinterpreted as shell syntax. Failures are
// classified into two model.CLIError kinds:
//   - model.KindLaunch: the tool could not be started (missing binary,
//     permission denied, bad working directory, ...)
//   - model.KindExit: the tool ran and exited with a non-zero status
//
// The Runner interface is the seam the rest of the program is tested
// through; see the proctest subpackage for the in-memory implementation.
package proc
