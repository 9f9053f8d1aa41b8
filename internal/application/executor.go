package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/semkit/ktest/internal/domain"
	"github.com/semkit/ktest/internal/ports"
	"go.uber.org/zap"
)

// ToolConfig names the external toolchain binaries and the default symbolic
// parameters passed to them.
type ToolConfig struct {
	Interpreter string
	Prover      string
	Mode        string
	Schedule    string
	ProofModule string
}

// RunOptions tunes a single interpreter invocation.
type RunOptions struct {
	Mode     string
	Schedule string
	Debugger bool
	Search   bool
}

// Executor builds tool invocations per strategy and judges pass/fail by the
// child's exit status alone.
type Executor struct {
	runner ports.Runner
	tools  ToolConfig
	log    *zap.Logger
}

func NewExecutor(runner ports.Runner, tools ToolConfig, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}

	return &Executor{
		runner: runner,
		tools:  tools,
		log:    log,
	}
}

// Run invokes the interpreter on a program artifact with the mode and
// schedule tokens, optionally in debugger or search mode.
func (e *Executor) Run(ctx context.Context, artifact string, opts RunOptions) (domain.ExecutionResult, error) {
	mode := opts.Mode
	if mode == "" {
		mode = e.tools.Mode
	}
	schedule := opts.Schedule
	if schedule == "" {
		schedule = e.tools.Schedule
	}

	args := []string{
		artifact,
		"--mode", bracketToken(mode),
		"--schedule", bracketToken(schedule),
	}
	if opts.Debugger {
		args = append(args, "--debugger")
	}
	if opts.Search {
		args = append(args, "--search")
	}

	e.log.Debug("invoking interpreter",
		zap.String("artifact", artifact),
		zap.Strings("args", args),
	)

	return e.runner.Run(ctx, domain.ExecutionRequest{
		Command: e.tools.Interpreter,
		Args:    args,
	})
}

// Interpret invokes the interpreter directly on an artifact with no extra
// parameters. This is the Default strategy.
func (e *Executor) Interpret(ctx context.Context, artifact string) (domain.ExecutionResult, error) {
	e.log.Debug("interpreting artifact", zap.String("artifact", artifact))

	return e.runner.Run(ctx, domain.ExecutionRequest{
		Command: e.tools.Interpreter,
		Args:    []string{artifact},
	})
}

// Prove invokes the prover on a specification artifact. The artifact must
// exist on disk; a missing file fails before any process is spawned.
func (e *Executor) Prove(ctx context.Context, artifact, module string) (domain.ExecutionResult, error) {
	if _, err := os.Stat(artifact); err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("%s: %w", artifact, domain.ErrMissingArtifact)
	}

	if module == "" {
		module = e.tools.ProofModule
	}

	e.log.Debug("invoking prover",
		zap.String("artifact", artifact),
		zap.String("module", module),
	)

	return e.runner.Run(ctx, domain.ExecutionRequest{
		Command: e.tools.Prover,
		Args:    []string{artifact, "--module", module},
	})
}

// Interactive runs the interpreter on an artifact whose stdout is compared
// against an expected-output file. The captured stdout is spooled to a
// temporary file that is removed on every exit path; on a non-zero exit a
// structural diff of expected vs actual goes to diagnostics as a side
// channel. Pass/fail stays the exit status, never the diff.
func (e *Executor) Interactive(ctx context.Context, artifact, expected string, diagnostics io.Writer) (domain.ExecutionResult, error) {
	if _, err := os.Stat(expected); err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("%s: %w", expected, domain.ErrMissingExpected)
	}

	result, err := e.runner.Run(ctx, domain.ExecutionRequest{
		Command: e.tools.Interpreter,
		Args:    []string{artifact},
	})
	if err != nil {
		return result, err
	}

	actual, err := os.CreateTemp("", "ktest-actual-*")
	if err != nil {
		return result, fmt.Errorf("create captured-output file: %w", err)
	}
	defer func() {
		_ = os.Remove(actual.Name())
	}()

	if _, err := actual.Write(result.Stdout); err != nil {
		_ = actual.Close()
		return result, fmt.Errorf("write captured output: %w", err)
	}
	if err := actual.Close(); err != nil {
		return result, fmt.Errorf("close captured output: %w", err)
	}

	if result.ExitStatus != 0 && diagnostics != nil {
		if err := e.emitDiff(expected, actual.Name(), diagnostics); err != nil {
			return result, err
		}
	}

	return result, nil
}

// Test classifies the artifact path and executes the matching strategy.
// The expected path is only consulted for interactive artifacts.
func (e *Executor) Test(ctx context.Context, artifact, expected string, diagnostics io.Writer) (domain.ExecutionResult, error) {
	strategy := domain.Classify(artifact)
	e.log.Debug("classified artifact",
		zap.String("artifact", artifact),
		zap.String("strategy", string(strategy)),
	)

	switch strategy {
	case domain.StrategyProof:
		return e.Prove(ctx, artifact, e.tools.ProofModule)
	case domain.StrategyInteractive:
		return e.Interactive(ctx, artifact, expected, diagnostics)
	default:
		return e.Interpret(ctx, artifact)
	}
}

func (e *Executor) emitDiff(expectedPath, actualPath string, diagnostics io.Writer) error {
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return fmt.Errorf("read expected output: %w", err)
	}

	actual, err := os.ReadFile(actualPath)
	if err != nil {
		return fmt.Errorf("read captured output: %w", err)
	}

	diff := cmp.Diff(splitLines(expected), splitLines(actual))
	if diff == "" {
		return nil
	}

	if _, err := fmt.Fprintf(diagnostics, "output mismatch (-expected +actual):\n%s", diff); err != nil {
		return fmt.Errorf("emit output diff: %w", err)
	}

	return nil
}

// bracketToken renders a symbolic parameter in the toolchain's bracketed
// form, e.g. NORMAL -> [NORMAL]. Already-bracketed input is left intact.
func bracketToken(token string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(token, "["), "]")
	return "[" + trimmed + "]"
}

func splitLines(data []byte) []string {
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
