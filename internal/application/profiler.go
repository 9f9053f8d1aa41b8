package application

import (
	"context"
	"fmt"
	"io"

	"github.com/semkit/ktest/internal/domain"
	"github.com/semkit/ktest/internal/ports"
)

// Profiler runs an artifact under its classified strategy and records the
// outcome in the ledger. Every successful profile appends exactly one
// pass-or-fail record and then exactly one runtime record, in that order.
type Profiler struct {
	executor *Executor
	ledger   ports.Ledger
	clock    ports.Clock
}

func NewProfiler(executor *Executor, ledger ports.Ledger, clock ports.Clock) *Profiler {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Profiler{
		executor: executor,
		ledger:   ledger,
		clock:    clock,
	}
}

// Profile executes the artifact and appends its outcome and runtime to the
// ledger. Harness malfunctions (missing files, unspawnable tools) record
// nothing; a started-but-failing test is a normal recorded outcome. A failed
// ledger append is fatal: losing a record is worse than crashing.
func (p *Profiler) Profile(ctx context.Context, artifact, expected string, diagnostics io.Writer) (domain.ExecutionResult, error) {
	start := p.clock.Now()

	result, err := p.executor.Test(ctx, artifact, expected, diagnostics)
	if err != nil {
		return result, err
	}

	elapsed := p.clock.Now().Sub(start)

	if err := p.ledger.AppendOutcome(ctx, artifact, result.Passed()); err != nil {
		return result, fmt.Errorf("record outcome: %w", err)
	}
	if err := p.ledger.AppendRuntime(ctx, artifact, elapsed); err != nil {
		return result, fmt.Errorf("record runtime: %w", err)
	}

	return result, nil
}
