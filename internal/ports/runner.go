package ports

import (
	"context"

	"github.com/semkit/ktest/internal/domain"
)

// Runner executes one external tool invocation and captures its output.
// A non-zero child exit status is reported through the result, not through
// the error return; the error return is reserved for processes that could
// not be started at all (wrapping domain.ErrToolUnavailable).
type Runner interface {
	Run(ctx context.Context, req domain.ExecutionRequest) (domain.ExecutionResult, error)
}
