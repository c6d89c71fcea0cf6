// Package tui provides the Bubble Tea terminal UI for linkcheck,
// displaying live check progress and a styled summary of the report.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lukemcguire/linkcheck/checker"
	"github.com/lukemcguire/linkcheck/result"
)

// Model is the Bubble Tea model for the check TUI.
type Model struct {
	ctx        context.Context
	cancel     context.CancelFunc
	checker    *checker.Checker
	spinner    spinner.Model
	progressCh <-chan checker.Event

	checked  int
	total    int
	broken   int
	current  string
	status   string
	quitting bool
	done     bool
	report   *result.Report
	err      error
	width    int
}

// NewModel creates a TUI model wired to the given checker and progress channel.
func NewModel(ctx context.Context, cancel context.CancelFunc, c *checker.Checker, progressCh <-chan checker.Event) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		ctx:        ctx,
		cancel:     cancel,
		checker:    c,
		spinner:    spin,
		progressCh: progressCh,
	}
}

// Init starts the spinner, check, and progress listener concurrently.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startCheck(), waitForProgress(m.progressCh))
}

// startCheck returns a tea.Cmd that runs the checker and sends CheckDoneMsg.
func (m Model) startCheck() tea.Cmd {
	return func() tea.Msg {
		report, err := m.checker.Run(m.ctx)
		return CheckDoneMsg{Report: report, Err: err}
	}
}

// Update handles messages from the Bubble Tea runtime.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case CheckProgressMsg:
		m.checked = msg.Checked
		m.total = msg.Total
		m.broken = msg.Broken
		m.current = msg.URL
		m.status = msg.Status
		return m, waitForProgress(m.progressCh)

	case CheckDoneMsg:
		if msg.Report == nil && msg.Err == nil {
			// Progress channel closed; the report arrives from startCheck.
			return m, nil
		}
		m.done = true
		m.report = msg.Report
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current TUI state.
func (m Model) View() string {
	if m.done {
		view := ""
		if m.report != nil {
			view = RenderSummary(m.report)
		}
		if m.err != nil {
			view += errorStyle.Render("Error: "+m.err.Error()) + "\n"
		}
		return view
	}
	if m.quitting {
		return dimStyle.Render("Interrupted.") + "\n"
	}
	last := m.current
	if m.status != "" {
		last = m.status + " " + m.current
	}
	return fmt.Sprintf("%s Checking... %d/%d links, broken %d\n%s\n",
		m.spinner.View(), m.checked, m.total, m.broken,
		dimStyle.Render("  "+last))
}

// Report returns the check report for output formatting.
func (m Model) Report() *result.Report {
	return m.report
}

// Err returns the error the check ended with, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user interrupted the check.
func (m Model) Quitting() bool {
	return m.quitting
}
