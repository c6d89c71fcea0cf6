package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lukemcguire/linkcheck/checker"
	"github.com/lukemcguire/linkcheck/result"
)

// CheckProgressMsg reports one line of the report.
type CheckProgressMsg struct {
	Checked int
	Total   int
	Broken  int
	URL     string
	Status  string
}

// CheckDoneMsg signals the check has completed.
type CheckDoneMsg struct {
	Report *result.Report
	Err    error
}

// waitForProgress returns a tea.Cmd that reads one event from the progress
// channel. When the channel closes, it returns a CheckDoneMsg with nil Report
// (the actual report comes from startCheck).
func waitForProgress(ch <-chan checker.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return CheckDoneMsg{}
		}
		return CheckProgressMsg{
			Checked: evt.Checked,
			Total:   evt.Total,
			Broken:  evt.Broken,
			URL:     evt.Result.URL,
			Status:  evt.Result.Status,
		}
	}
}
