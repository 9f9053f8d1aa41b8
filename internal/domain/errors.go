package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArtifact means a required input file was absent before any
	// process was spawned.
	ErrMissingArtifact = errors.New("artifact not found")
	// ErrMissingExpected means the expected-output file for an interactive
	// test was absent.
	ErrMissingExpected = errors.New("expected-output file not found")
	// ErrToolUnavailable means an external tool process could not be started
	// at all, as opposed to starting and exiting non-zero.
	ErrToolUnavailable = errors.New("tool could not be started")
	// ErrNoSession means no session manifest exists in the ledger directory.
	ErrNoSession = errors.New("no active session")
)

// ExitError carries a child's non-zero exit status out to main so the harness
// process can exit with the same code. It marks a failing test, not a harness
// malfunction.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode translates an error returned by a command into the harness's own
// process exit status: 0 for nil, the child's status for an ExitError, and 1
// for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}
