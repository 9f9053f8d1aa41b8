package proc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/semkit/ktest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerCapturesStreamsIndependently(t *testing.T) {
	runner := NewRunner()

	result, err := runner.Run(context.Background(), domain.ExecutionRequest{
		Command: "sh",
		Args:    []string{"-c", "echo out; echo err >&2; exit 3"},
	})
	require.NoError(t, err, "non-zero exit is not a runner error")

	assert.Equal(t, 3, result.ExitStatus)
	assert.Equal(t, "out\n", string(result.Stdout))
	assert.Equal(t, "err\n", string(result.Stderr))
	assert.Positive(t, result.Duration)
}

func TestRunnerZeroExit(t *testing.T) {
	runner := NewRunner()

	result, err := runner.Run(context.Background(), domain.ExecutionRequest{
		Command: "sh",
		Args:    []string{"-c", "exit 0"},
	})
	require.NoError(t, err)
	assert.True(t, result.Passed())
}

func TestRunnerUnspawnableCommandIsInfrastructureError(t *testing.T) {
	runner := NewRunner()

	_, err := runner.Run(context.Background(), domain.ExecutionRequest{
		Command: "definitely-not-a-real-binary-xyz",
	})
	require.ErrorIs(t, err, domain.ErrToolUnavailable)
}

func TestRunnerEnvOverrideIsScopedToChild(t *testing.T) {
	runner := NewRunner()

	result, err := runner.Run(context.Background(), domain.ExecutionRequest{
		Command: "sh",
		Args:    []string{"-c", `printf "%s" "$KTEST_CHILD_ONLY"`},
		Env:     []string{"KTEST_CHILD_ONLY=visible"},
	})
	require.NoError(t, err)

	assert.Equal(t, "visible", string(result.Stdout))
	_, leaked := os.LookupEnv("KTEST_CHILD_ONLY")
	assert.False(t, leaked, "override must not leak into the parent environment")
}

func TestRunnerHonorsWorkingDirectory(t *testing.T) {
	runner := NewRunner()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), domain.ExecutionRequest{
		Command: "sh",
		Args:    []string{"-c", "pwd"},
		Dir:     dir,
	})
	require.NoError(t, err)
	assert.Equal(t, dir+"\n", string(result.Stdout))
}

func TestRunnerCancelledContext(t *testing.T) {
	runner := NewRunner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, domain.ExecutionRequest{Command: "sh", Args: []string{"-c", "sleep 60"}})
	require.Error(t, err)
}
