package proc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mmr-tortoise/system-cleanup/internal/logging"
	"github.com/mmr-tortoise/system-cleanup/internal/model"
)

// Runner executes external commands.
type Runner interface {
	// Run executes name with args, streaming its stdout and stderr, and
	// blocks until it exits.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes name with args and returns everything it wrote to
	// stdout. Stderr is streamed. On a non-zero exit the captured stdout
	// is still returned alongside the error.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Stdout and Stderr receive the child's streams. A nil writer
	// discards the stream.
	Stdout io.Writer
	Stderr io.Writer

	log *logrus.Logger
}

// NewExecRunner returns an ExecRunner streaming to stdout and stderr and
// tracing every invocation at debug level on log. A nil log disables
// tracing.
func NewExecRunner(stdout, stderr io.Writer, log *logrus.Logger) *ExecRunner {
	if log == nil {
		log = logging.Discard()
	}
	return &ExecRunner{Stdout: stdout, Stderr: stderr, log: log}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	// #nosec G204 -- argv is built by the cleanup actions, never via a shell
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	r.trace(name, args)
	return r.classify(name, args, cmd.Run())
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	// #nosec G204 -- argv is built by the cleanup actions, never via a shell
	cmd := exec.CommandContext(ctx, name, args...)

	// strings.Builder grows with the output, so long package lists are
	// never truncated.
	var stdout strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = r.Stderr

	r.trace(name, args)
	err := cmd.Run()
	return stdout.String(), r.classify(name, args, err)
}

func (r *ExecRunner) trace(name string, args []string) {
	r.log.WithField("argc", len(args)).Debugf("+ %s", CommandLine(name, args...))
}

// classify maps an exec error onto the CLIError kinds.
func (r *ExecRunner) classify(name string, args []string, err error) error {
	if err == nil {
		return nil
	}

	line := CommandLine(name, args...)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		r.log.WithField("status", exitStatus(err)).Debugf("- %s", line)
		return model.WrapCLIError(model.KindExit, fmt.Sprintf("%s failed", name), err)
	}

	r.log.WithError(err).Debugf("! %s", line)
	return model.WrapCLIError(model.KindLaunch, fmt.Sprintf("failed to start %s", name), err)
}

// exitStatus returns the exit status of the process behind err, or -1 if
// err does not come from a process that ran to completion.
func exitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// CommandLine renders name and args for logs and messages. Arguments
// containing whitespace are quoted so the rendering stays unambiguous.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
