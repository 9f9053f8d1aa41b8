package application

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/semkit/ktest/internal/ports"
)

// Sampler draws a randomized subset of the ledger's currently-failing
// artifact paths for manual triage. The default sampler shuffles differently
// on every call; a seeded sampler replays the same permutation, for CI runs
// that want reproducible triage batches.
type Sampler struct {
	ledger ports.Ledger
	rng    *rand.Rand
}

func NewSampler(ledger ports.Ledger) *Sampler {
	return &Sampler{ledger: ledger}
}

func NewSeededSampler(ledger ports.Ledger, seed int64) *Sampler {
	return &Sampler{
		ledger: ledger,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Sample returns at most count failing paths, de-duplicated and shuffled.
// When count meets or exceeds the failing set, the whole set is returned.
func (s *Sampler) Sample(ctx context.Context, count int) ([]string, error) {
	failing, err := s.ledger.Failing(ctx)
	if err != nil {
		return nil, fmt.Errorf("read failing ledger: %w", err)
	}

	// The ledger is a log, not a keyed table; the same path may appear many
	// times across appends.
	unique := dedupe(failing)

	shuffle := rand.Shuffle
	if s.rng != nil {
		shuffle = s.rng.Shuffle
	}
	shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	if count < 0 {
		count = 0
	}
	if count < len(unique) {
		unique = unique[:count]
	}

	return unique, nil
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	unique := make([]string, 0, len(paths))

	for _, path := range paths {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		unique = append(unique, path)
	}

	return unique
}
