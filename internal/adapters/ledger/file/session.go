package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/semkit/ktest/internal/domain"
)

const (
	sessionFile            = "session.toml"
	currentManifestVersion = 1
)

// Session describes one span of ledger writes between two resets.
type Session struct {
	Name      string
	StartedAt time.Time
}

type sessionManifest struct {
	Version   int       `toml:"version"`
	Name      string    `toml:"name"`
	StartedAt time.Time `toml:"started_at"`
}

// Reset truncates all three ledger logs and writes a fresh session manifest.
// The ledger itself stays append-only; starting a new session is the one
// destructive operation and it belongs to the caller, not the ledger.
func (s *Store) Reset(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, ledgerDirMode); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	for _, name := range []string{passingFile, failingFile, timingFile} {
		if err := os.WriteFile(filepath.Join(s.dir, name), nil, ledgerFileMode); err != nil {
			return fmt.Errorf("truncate ledger %s: %w", name, err)
		}
	}

	manifest := sessionManifest{
		Version:   currentManifestVersion,
		Name:      session.Name,
		StartedAt: session.StartedAt,
	}

	data, err := toml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode session manifest: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, sessionFile), data, ledgerFileMode); err != nil {
		return fmt.Errorf("write session manifest: %w", err)
	}

	return nil
}

// Session reads the current session manifest. domain.ErrNoSession is
// returned when no reset has been performed in this ledger directory.
func (s *Store) Session(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, domain.ErrNoSession
		}
		return Session{}, fmt.Errorf("read session manifest: %w", err)
	}

	var manifest sessionManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return Session{}, fmt.Errorf("decode session manifest: %w", err)
	}
	if manifest.Version > currentManifestVersion {
		return Session{}, fmt.Errorf("unsupported session manifest version %d (current %d)", manifest.Version, currentManifestVersion)
	}

	return Session{Name: manifest.Name, StartedAt: manifest.StartedAt}, nil
}
