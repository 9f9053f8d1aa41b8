package e2e

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	ledgerfile "github.com/semkit/ktest/internal/adapters/ledger/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeProfileAndSample(t *testing.T) {
	binaryPath := buildBinary(t)

	toolDir := t.TempDir()
	interpreter := writeStub(t, toolDir, "ksem-interpreter", `case "$1" in *bad*) exit 1;; *) exit 0;; esac`)

	ledgerDir := t.TempDir()
	env := []string{
		"KTEST_CONFIG_DIR=" + t.TempDir(),
		"KTEST_LEDGER_DIR=" + ledgerDir,
		"KTEST_TOOLS_INTERPRETER=" + interpreter,
	}

	// Two concurrent profile runs on different artifacts: the ledger must end
	// up with exactly one outcome and one runtime record per artifact.
	var wg sync.WaitGroup
	for _, artifact := range []string{"tests/vm/good.sem", "tests/vm/bad.sem"} {
		wg.Add(1)
		go func(artifact string) {
			defer wg.Done()
			_, _, _ = runKtest(t, binaryPath, env, "test-profile", artifact)
		}(artifact)
	}
	wg.Wait()

	store := ledgerfile.NewStore(ledgerDir)

	passing, err := store.Passing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"tests/vm/good.sem"}, passing)

	failing, err := store.Failing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"tests/vm/bad.sem"}, failing)

	records, err := store.Runtimes(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	stdout, stderr, err := runKtest(t, binaryPath, env, "get-failing", "--count", "5")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "tests/vm/bad.sem\n", stdout)
}

func TestSmokeExitStatusTransparency(t *testing.T) {
	binaryPath := buildBinary(t)

	toolDir := t.TempDir()
	interpreter := writeStub(t, toolDir, "ksem-interpreter", "exit 42")

	env := []string{
		"KTEST_CONFIG_DIR=" + t.TempDir(),
		"KTEST_LEDGER_DIR=" + t.TempDir(),
		"KTEST_TOOLS_INTERPRETER=" + interpreter,
	}

	_, _, err := runKtest(t, binaryPath, env, "interpret", "tests/vm/add.sem")
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 42, exitErr.ExitCode())
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ktest-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ktest")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ktest binary: %s", string(output))
	return binaryPath
}

func runKtest(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func repoRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above %s", dir)
		dir = parent
	}
}
