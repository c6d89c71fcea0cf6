package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lukemcguire/linkcheck/checker"
	"github.com/lukemcguire/linkcheck/result"
	"github.com/lukemcguire/linkcheck/urlutil"
)

func newTestChecker(t *testing.T, progressCh chan<- checker.Event) *checker.Checker {
	t.Helper()
	target, err := urlutil.ParseTarget("https://example.com/")
	if err != nil {
		t.Fatalf("ParseTarget() error: %v", err)
	}
	return checker.New(checker.Config{
		Target:         target,
		RequestTimeout: 5 * time.Second,
	}, progressCh)
}

func brokenReport() *result.Report {
	report := &result.Report{
		Root: result.LinkResult{URL: "https://example.com/", Status: "200", StatusCode: 200, IsRoot: true, InScope: true},
		Stats: result.CheckStats{
			Duration: 3 * time.Second,
		},
	}
	report.Add(result.LinkResult{URL: "/ok", Count: 2, Status: "200", StatusCode: 200, InScope: true})
	report.Add(result.LinkResult{URL: "/dead", Count: 1, Status: "404", StatusCode: 404, ErrorCategory: result.Category4xx, InScope: true})
	report.Add(result.LinkResult{
		URL:           "/refused",
		Count:         3,
		Status:        string(result.CategoryConnectionRefused),
		Error:         "connection refused",
		ErrorCategory: result.CategoryConnectionRefused,
		InScope:       true,
	})
	report.Add(result.LinkResult{URL: "https://elsewhere.example.org/", Count: 1})
	return report
}

func TestNewModel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	progressCh := make(chan checker.Event, 10)
	c := newTestChecker(t, progressCh)

	model := NewModel(ctx, cancel, c, progressCh)

	if model.ctx != ctx {
		t.Error("expected ctx to be stored in model")
	}
	if model.cancel == nil {
		t.Error("expected cancel to be stored in model")
	}
	if model.checker != c {
		t.Error("expected checker to be stored in model")
	}
	if model.progressCh != progressCh {
		t.Error("expected progressCh to be stored in model")
	}
	if model.checked != 0 || model.broken != 0 || model.total != 0 {
		t.Error("expected initial counters to be zero")
	}
	if model.done {
		t.Error("expected done to be false initially")
	}
}

func TestReportAccessors(t *testing.T) {
	report := brokenReport()
	runErr := errors.New("boom")
	model := Model{report: report, err: runErr, quitting: true}

	if model.Report() != report {
		t.Error("Report() did not return the stored report")
	}
	if !errors.Is(model.Err(), runErr) {
		t.Errorf("Err() = %v, want %v", model.Err(), runErr)
	}
	if !model.Quitting() {
		t.Error("Quitting() = false, want true")
	}
}

func TestRenderSummary_NilReport(t *testing.T) {
	output := RenderSummary(nil)
	if output == "" {
		t.Error("expected non-empty output for nil report")
	}
}

func TestRenderSummary_NoBrokenLinks(t *testing.T) {
	report := &result.Report{
		Root: result.LinkResult{URL: "https://example.com/", Status: "200", IsRoot: true},
	}
	report.Add(result.LinkResult{URL: "/a", Count: 4, Status: "200", InScope: true})
	report.Add(result.LinkResult{URL: "mailto:x@y.z", Count: 1})
	report.Stats.Duration = 2 * time.Second

	output := RenderSummary(report)
	if !strings.Contains(output, "No broken links found") {
		t.Errorf("expected success message, got: %s", output)
	}
	if !strings.Contains(output, "Checked 1 of 2 unique links (5 total)") {
		t.Errorf("expected link counts, got: %s", output)
	}
}

func TestRenderSummary_WithBrokenLinks(t *testing.T) {
	output := RenderSummary(brokenReport())

	for _, want := range []string{
		"/dead",
		"404",
		"connection refused",
		"Client Errors (4xx)",
		"Connection Refused",
		"2 broken links",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "elsewhere.example.org") {
		t.Errorf("out-of-scope link should not be listed as broken: %s", output)
	}
}

func TestRenderSummary_BrokenRoot(t *testing.T) {
	report := &result.Report{
		Root: result.LinkResult{URL: "https://example.com/", Status: "404", IsRoot: true},
	}

	output := RenderSummary(report)
	if !strings.Contains(output, "Can not get a root page") {
		t.Errorf("expected root failure message, got: %s", output)
	}
	if !strings.Contains(output, "404") {
		t.Errorf("expected root status, got: %s", output)
	}
}

func TestRenderSummary_RootDisallowed(t *testing.T) {
	report := &result.Report{
		Root: result.LinkResult{URL: "https://example.com/", IsRoot: true, InScope: true, Skipped: true},
	}

	output := RenderSummary(report)
	if !strings.Contains(output, "disallowed by robots.txt") {
		t.Errorf("expected robots message, got: %s", output)
	}
	if strings.Contains(output, "No broken links found") {
		t.Errorf("disallowed root should not report success: %s", output)
	}
}

func TestInit_ReturnsBatchCmd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	progressCh := make(chan checker.Event, 10)
	model := NewModel(ctx, cancel, newTestChecker(t, progressCh), progressCh)
	if cmd := model.Init(); cmd == nil {
		t.Error("Init() should return a non-nil batch command")
	}
}

func TestWaitForProgress(t *testing.T) {
	progressCh := make(chan checker.Event, 1)
	progressCh <- checker.Event{
		Result:  result.LinkResult{URL: "/a", Status: "404"},
		Checked: 1,
		Total:   3,
		Broken:  1,
	}

	msg := waitForProgress(progressCh)()
	progress, ok := msg.(CheckProgressMsg)
	if !ok {
		t.Fatalf("expected CheckProgressMsg, got %T", msg)
	}
	want := CheckProgressMsg{Checked: 1, Total: 3, Broken: 1, URL: "/a", Status: "404"}
	if progress != want {
		t.Errorf("got %+v, want %+v", progress, want)
	}

	close(progressCh)
	if _, ok := waitForProgress(progressCh)().(CheckDoneMsg); !ok {
		t.Error("expected CheckDoneMsg after channel close")
	}
}

func TestUpdate_CheckProgressMsg(t *testing.T) {
	model := Model{
		progressCh: make(chan checker.Event, 10),
	}

	msg := CheckProgressMsg{Checked: 5, Total: 9, Broken: 1, URL: "/page", Status: "404"}
	updatedModel, cmd := model.Update(msg)
	updated := updatedModel.(Model)

	if updated.checked != 5 {
		t.Errorf("expected checked=5, got %d", updated.checked)
	}
	if updated.total != 9 {
		t.Errorf("expected total=9, got %d", updated.total)
	}
	if updated.broken != 1 {
		t.Errorf("expected broken=1, got %d", updated.broken)
	}
	if updated.current != "/page" {
		t.Errorf("expected current URL to be set, got %s", updated.current)
	}
	if updated.status != "404" {
		t.Errorf("expected status=404, got %s", updated.status)
	}
	if cmd == nil {
		t.Error("expected non-nil cmd to re-subscribe to progress channel")
	}
}

func TestUpdate_CheckDoneMsg(t *testing.T) {
	model := Model{}
	report := brokenReport()

	updatedModel, cmd := model.Update(CheckDoneMsg{Report: report})
	updated := updatedModel.(Model)

	if !updated.done {
		t.Error("expected done=true after CheckDoneMsg")
	}
	if updated.report != report {
		t.Error("expected report to be stored")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_ClosedChannelDoesNotFinish(t *testing.T) {
	model := Model{}

	updatedModel, cmd := model.Update(CheckDoneMsg{})
	updated := updatedModel.(Model)

	if updated.done {
		t.Error("empty CheckDoneMsg should not mark the check done")
	}
	if cmd != nil {
		t.Error("expected no command for empty CheckDoneMsg")
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	model := Model{ctx: ctx, cancel: cancel}

	updatedModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	updated := updatedModel.(Model)

	if !updated.quitting {
		t.Error("expected quitting=true after ctrl+c")
	}
	if ctx.Err() == nil {
		t.Error("expected context to be cancelled")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_SpinnerTickMsg(t *testing.T) {
	model := Model{}
	// Send a spinner tick; should not panic.
	updatedModel, _ := model.Update(spinner.TickMsg{})
	_ = updatedModel.(Model)
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	model := Model{}
	updatedModel, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated := updatedModel.(Model)

	if updated.width != 120 {
		t.Errorf("expected width=120, got %d", updated.width)
	}
}

func TestView_InProgress(t *testing.T) {
	model := Model{
		checked: 3,
		total:   7,
		broken:  1,
		current: "/checking",
		status:  "503",
	}
	output := model.View()
	if !strings.Contains(output, "Checking") {
		t.Errorf("expected 'Checking' in progress view, got: %s", output)
	}
	if !strings.Contains(output, "3/7") {
		t.Errorf("expected progress count in view, got: %s", output)
	}
	if !strings.Contains(output, "503 /checking") {
		t.Errorf("expected last status and URL in view, got: %s", output)
	}
}

func TestView_DoneWithReport(t *testing.T) {
	model := Model{
		done: true,
		report: &result.Report{
			Root: result.LinkResult{URL: "https://example.com/", Status: "200", IsRoot: true},
		},
	}
	output := model.View()
	if !strings.Contains(output, "No broken links found") {
		t.Errorf("expected success message in done view, got: %s", output)
	}
}

func TestView_DoneWithError(t *testing.T) {
	model := Model{
		done: true,
		err:  context.Canceled,
	}
	output := model.View()
	if !strings.Contains(output, "Error") {
		t.Errorf("expected error message in done view, got: %s", output)
	}
}
