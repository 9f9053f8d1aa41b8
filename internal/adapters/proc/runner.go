package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/semkit/ktest/internal/domain"
	"github.com/semkit/ktest/internal/ports"
)

// Runner executes external tool processes with os/exec. Environment
// overrides are applied to the child only; the parent environment is never
// touched. There are no timeouts: a hung tool blocks until it exits or the
// context is cancelled by a terminating signal.
type Runner struct{}

var _ ports.Runner = (*Runner)(nil)

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Run(ctx context.Context, req domain.ExecutionRequest) (domain.ExecutionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExecutionResult{}, err
	}

	child := exec.CommandContext(ctx, req.Command, req.Args...)
	child.Dir = req.Dir
	child.Env = append(os.Environ(), req.Env...)

	var stdout, stderr bytes.Buffer
	child.Stdout = &stdout
	child.Stderr = &stderr

	start := time.Now()
	err := child.Run()
	elapsed := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return domain.ExecutionResult{Duration: elapsed},
				fmt.Errorf("spawn %s: %w", req.Command, errors.Join(domain.ErrToolUnavailable, err))
		}
	}

	return domain.ExecutionResult{
		ExitStatus: child.ProcessState.ExitCode(),
		Stdout:     stdout.Bytes(),
		Stderr:     stderr.Bytes(),
		Duration:   elapsed,
	}, nil
}
