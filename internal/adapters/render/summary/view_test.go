package summary

import (
	"testing"
	"time"

	"github.com/semkit/ktest/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderCounts(t *testing.T) {
	out := Render(Summary{
		Session:   "nightly",
		StartedAt: time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC),
		Passing:   []string{"a", "b", "c"},
		Failing:   []string{"d"},
		Runtimes: []domain.RuntimeRecord{
			{Seconds: 4, Path: "a"},
			{Seconds: 19, Path: "d"},
			{Seconds: 1, Path: "b"},
		},
	})

	assert.Contains(t, out, `ktest session "nightly"`)
	assert.Contains(t, out, "passing: 3")
	assert.Contains(t, out, "failing: 1")
	assert.Contains(t, out, "19s  d")
}

func TestRenderEmptySession(t *testing.T) {
	out := Render(Summary{})

	assert.Contains(t, out, "ktest session summary")
	assert.Contains(t, out, "No outcomes recorded yet.")
}

func TestSlowestRuntimesCapped(t *testing.T) {
	records := make([]domain.RuntimeRecord, 0, 8)
	for i := 0; i < 8; i++ {
		records = append(records, domain.RuntimeRecord{Seconds: int64(i), Path: "p"})
	}

	slowest := slowestRuntimes(records)
	assert.Len(t, slowest, slowestShown)
	assert.Equal(t, int64(7), slowest[0].Seconds)
}
