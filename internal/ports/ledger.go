package ports

import (
	"context"
	"time"

	"github.com/semkit/ktest/internal/domain"
)

// Ledger is the append-only durable record of test outcomes. Appends must be
// fully durable before returning and must be single atomic writes so that
// concurrent harness processes never interleave partial records. No update or
// delete operation exists; session boundaries are the caller's concern.
type Ledger interface {
	AppendOutcome(ctx context.Context, path string, passed bool) error
	AppendRuntime(ctx context.Context, path string, elapsed time.Duration) error

	Passing(ctx context.Context) ([]string, error)
	Failing(ctx context.Context) ([]string, error)
	Runtimes(ctx context.Context) ([]domain.RuntimeRecord, error)
}
