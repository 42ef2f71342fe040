// Package logging builds the diagnostic logger shared by the CLI layers.
//
// Diagnostics go to stderr through logrus and stay quiet (warnings and up)
// unless SYSTEM_CLEANUP_DEBUG is set to a true value, in which case every
// subprocess invocation and disk probe is traced. User-facing progress
// lines are not log records and are printed separately.
package logging
