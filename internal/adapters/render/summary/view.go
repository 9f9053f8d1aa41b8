// Package summary renders a session's ledger contents for the terminal.
package summary

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/semkit/ktest/internal/domain"
)

const slowestShown = 5

// Summary aggregates one session's ledger state.
type Summary struct {
	Session   string
	StartedAt time.Time
	Passing   []string
	Failing   []string
	Runtimes  []domain.RuntimeRecord
}

func Render(s Summary) string {
	return renderView(s, newStyles())
}

func renderView(s Summary, st styles) string {
	title := "ktest session summary"
	if s.Session != "" {
		title = fmt.Sprintf("ktest session %q", s.Session)
	}

	lines := []string{st.title.Render(title)}
	if !s.StartedAt.IsZero() {
		lines = append(lines, st.header.Render("started: "+s.StartedAt.Format(time.RFC3339)))
	}

	if len(s.Passing) == 0 && len(s.Failing) == 0 {
		lines = append(lines, st.empty.Render("No outcomes recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		st.pass.Render(fmt.Sprintf("passing: %d", len(s.Passing))),
		failLine(len(s.Failing), st),
	)

	if slowest := slowestRuntimes(s.Runtimes); len(slowest) > 0 {
		section := []string{st.header.Render("slowest:")}
		for _, record := range slowest {
			section = append(section, st.detail.Render(fmt.Sprintf("  %4ds  %s", record.Seconds, record.Path)))
		}
		lines = append(lines, st.section.Render(lipgloss.JoinVertical(lipgloss.Left, section...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func failLine(count int, st styles) string {
	if count == 0 {
		return st.detail.Render("failing: 0")
	}

	return st.fail.Render(fmt.Sprintf("failing: %d", count))
}

func slowestRuntimes(records []domain.RuntimeRecord) []domain.RuntimeRecord {
	sorted := make([]domain.RuntimeRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Seconds > sorted[j].Seconds
	})

	if len(sorted) > slowestShown {
		sorted = sorted[:slowestShown]
	}

	return sorted
}
