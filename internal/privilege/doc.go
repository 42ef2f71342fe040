// Package privilege enforces that the CLI runs as root.
//
// The check reads the effective uid through golang.org/x/sys/unix. Check is
// kept separate from EffectiveUID so callers can inject the uid in tests.
package privilege
