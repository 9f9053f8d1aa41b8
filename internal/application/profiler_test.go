package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/semkit/ktest/internal/domain"
	"github.com/semkit/ktest/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfilerRecordsOutcomeThenRuntime(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	ledger := mocks.NewMockLedger(t)
	clock := mocks.NewMockClock(t)
	profiler := NewProfiler(NewExecutor(runner, testTools(), nil), ledger, clock)

	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(start).Once()
	clock.EXPECT().Now().Return(start.Add(7 * time.Second)).Once()

	runner.EXPECT().Run(mock.Anything, domain.ExecutionRequest{
		Command: "ksem-interpreter",
		Args:    []string{"tests/vm/add.sem"},
	}).Return(domain.ExecutionResult{ExitStatus: 0}, nil)

	var order []string
	ledger.EXPECT().AppendOutcome(mock.Anything, "tests/vm/add.sem", true).Run(func(_ context.Context, _ string, _ bool) {
		order = append(order, "outcome")
	}).Return(nil)
	ledger.EXPECT().AppendRuntime(mock.Anything, "tests/vm/add.sem", 7*time.Second).Run(func(_ context.Context, _ string, _ time.Duration) {
		order = append(order, "runtime")
	}).Return(nil)

	result, err := profiler.Profile(context.Background(), "tests/vm/add.sem", "", nil)
	require.NoError(t, err)
	assert.True(t, result.Passed())
	assert.Equal(t, []string{"outcome", "runtime"}, order)
}

func TestProfilerRecordsFailureAsNormalOutcome(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	ledger := mocks.NewMockLedger(t)
	clock := mocks.NewMockClock(t)
	profiler := NewProfiler(NewExecutor(runner, testTools(), nil), ledger, clock)

	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(start).Once()
	clock.EXPECT().Now().Return(start.Add(3 * time.Second)).Once()

	runner.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ExecutionResult{ExitStatus: 1}, nil)
	ledger.EXPECT().AppendOutcome(mock.Anything, "tests/vm/bad.sem", false).Return(nil)
	ledger.EXPECT().AppendRuntime(mock.Anything, "tests/vm/bad.sem", 3*time.Second).Return(nil)

	result, err := profiler.Profile(context.Background(), "tests/vm/bad.sem", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitStatus)
}

func TestProfilerRecordsNothingOnHarnessMalfunction(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	ledger := mocks.NewMockLedger(t)
	clock := mocks.NewMockClock(t)
	profiler := NewProfiler(NewExecutor(runner, testTools(), nil), ledger, clock)

	clock.EXPECT().Now().Return(time.Now()).Once()

	// Missing proof artifact fails before any process starts.
	artifact := filepath.Join(t.TempDir(), "proofs", "missing-spec")
	_, err := profiler.Profile(context.Background(), artifact, "", nil)
	require.ErrorIs(t, err, domain.ErrMissingArtifact)

	ledger.AssertNotCalled(t, "AppendOutcome")
	ledger.AssertNotCalled(t, "AppendRuntime")
}

func TestProfilerLedgerAppendFailureIsFatal(t *testing.T) {
	runner := mocks.NewMockRunner(t)
	ledger := mocks.NewMockLedger(t)
	clock := mocks.NewMockClock(t)
	profiler := NewProfiler(NewExecutor(runner, testTools(), nil), ledger, clock)

	start := time.Now()
	clock.EXPECT().Now().Return(start).Once()
	clock.EXPECT().Now().Return(start.Add(time.Second)).Once()

	runner.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ExecutionResult{ExitStatus: 0}, nil)

	appendErr := errors.New("disk full")
	ledger.EXPECT().AppendOutcome(mock.Anything, "tests/vm/add.sem", true).Return(appendErr)

	_, err := profiler.Profile(context.Background(), "tests/vm/add.sem", "", nil)
	require.ErrorIs(t, err, appendErr)
	ledger.AssertNotCalled(t, "AppendRuntime")
}
