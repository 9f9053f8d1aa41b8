package domain

import "time"

// ExecutionRequest describes one external tool invocation. It is built per
// call and never persisted.
type ExecutionRequest struct {
	Command string
	Args    []string
	// Env holds "KEY=value" overrides appended to the parent environment for
	// the child only; the parent environment is never mutated.
	Env []string
	Dir string
}

// ExecutionResult carries everything the harness needs from a finished child
// process. Stdout and stderr are captured independently and completely.
type ExecutionResult struct {
	ExitStatus int
	Stdout     []byte
	Stderr     []byte
	Duration   time.Duration
}

// Passed reports whether the child exited zero. A non-zero exit is a test
// failure, not a harness error.
func (r ExecutionResult) Passed() bool {
	return r.ExitStatus == 0
}

// RuntimeRecord is one timing ledger entry: integer wall-clock seconds
// followed by the artifact path.
type RuntimeRecord struct {
	Seconds int64
	Path    string
}
