// Package file backs the outcome ledger with three append-only text logs.
// Each append is one O_APPEND write of a complete line followed by fsync, so
// records from concurrent harness processes never tear and survive abrupt
// termination.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/semkit/ktest/internal/domain"
	"github.com/semkit/ktest/internal/ports"
)

const (
	passingFile = "passing.lastrun"
	failingFile = "failing.lastrun"
	timingFile  = "timing.lastrun"

	ledgerDirMode  = 0o755
	ledgerFileMode = 0o644
)

type Store struct {
	dir string
}

var _ ports.Ledger = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Dir returns the ledger directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) AppendOutcome(ctx context.Context, path string, passed bool) error {
	name := failingFile
	if passed {
		name = passingFile
	}

	return s.appendLine(ctx, name, path)
}

func (s *Store) AppendRuntime(ctx context.Context, path string, elapsed time.Duration) error {
	seconds := int64(elapsed.Seconds())
	if seconds < 0 {
		seconds = 0
	}

	return s.appendLine(ctx, timingFile, fmt.Sprintf("%d %s", seconds, path))
}

func (s *Store) Passing(ctx context.Context) ([]string, error) {
	return s.readLines(ctx, passingFile)
}

func (s *Store) Failing(ctx context.Context) ([]string, error) {
	return s.readLines(ctx, failingFile)
}

func (s *Store) Runtimes(ctx context.Context) ([]domain.RuntimeRecord, error) {
	lines, err := s.readLines(ctx, timingFile)
	if err != nil {
		return nil, err
	}

	records := make([]domain.RuntimeRecord, 0, len(lines))
	for _, line := range lines {
		seconds, path, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("malformed runtime record %q", line)
		}

		parsed, err := strconv.ParseInt(seconds, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed runtime record %q: %w", line, err)
		}

		records = append(records, domain.RuntimeRecord{Seconds: parsed, Path: path})
	}

	return records, nil
}

func (s *Store) appendLine(ctx context.Context, name, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, ledgerDirMode); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, ledgerFileMode)
	if err != nil {
		return fmt.Errorf("open ledger %s: %w", name, err)
	}

	// One write per record: O_APPEND keeps concurrent appends from
	// interleaving as long as the record goes out in a single syscall.
	if _, err := f.Write([]byte(line + "\n")); err != nil {
		_ = f.Close()
		return fmt.Errorf("append to ledger %s: %w", name, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync ledger %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close ledger %s: %w", name, err)
	}

	return nil
}

func (s *Store) readLines(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read ledger %s: %w", name, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}
