package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type proveDoneMsg struct{}

type proveSpinnerModel struct {
	spinner spinner.Model
	label   string
	prove   tea.Cmd
	done    bool
}

func newProveSpinnerModel(label string, prove tea.Cmd) proveSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return proveSpinnerModel{
		spinner: s,
		label:   label,
		prove:   prove,
	}
}

func (m proveSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.prove)
}

func (m proveSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case proveDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m proveSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runProveSpinner keeps a spinner on output while prove runs; the prover's
// own result stays with the caller.
func runProveSpinner(ctx context.Context, output io.Writer, artifact string, prove func()) error {
	proveCmd := func() tea.Msg {
		prove()
		return proveDoneMsg{}
	}

	p := tea.NewProgram(
		newProveSpinnerModel(fmt.Sprintf("Proving %s...", artifact), proveCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run prove spinner: %w", err)
	}

	return nil
}
