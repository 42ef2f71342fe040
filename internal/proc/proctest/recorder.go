// Package proctest provides an in-memory proc.Runner for tests.
package proctest

import (
	"context"
	"sync"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// Argv returns the call as a single argument vector, name first.
func (c Call) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// Recorder is a proc.Runner that records every call and answers from
// scripted results keyed by command name. Commands without a script
// succeed with empty output.
type Recorder struct {
	mu sync.Mutex

	// Outputs maps a command name to the stdout Output returns for it.
	Outputs map[string]string

	// Errors maps a command name to the error Run/Output return for it.
	Errors map[string]error

	calls []Call
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// Run implements proc.Runner.
func (r *Recorder) Run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record(name, args)
	return r.Errors[name]
}

// Output implements proc.Runner.
func (r *Recorder) Output(_ context.Context, name string, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.record(name, args)
	return r.Outputs[name], r.Errors[name]
}

func (r *Recorder) record(name string, args []string) {
	r.calls = append(r.calls, Call{Name: name, Args: append([]string(nil), args...)})
}

// Calls returns a copy of every call recorded so far, in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Call(nil), r.calls...)
}

// Names returns the command names recorded so far, in order.
func (r *Recorder) Names() []string {
	calls := r.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.Name
	}
	return names
}
