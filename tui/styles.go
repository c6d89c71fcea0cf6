package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lukemcguire/linkcheck/result"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	categoryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle         = lipgloss.NewStyle().Faint(true)
	urlStyle         = lipgloss.NewStyle()
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// categoryOrder defines the display order for error categories (most to least actionable).
var categoryOrder = []result.ErrorCategory{
	result.Category4xx,
	result.Category5xx,
	result.CategoryTimeout,
	result.CategoryDNSFailure,
	result.CategoryConnectionRefused,
	result.CategoryRedirectLoop,
	result.CategoryUnknown,
}

// RenderSummary produces a Lip Gloss styled summary of a link check report.
func RenderSummary(report *result.Report) string {
	if report == nil {
		return errorStyle.Render("No results available.")
	}

	var builder strings.Builder

	builder.WriteString(titleStyle.Render("Root: " + report.Root.URL))
	builder.WriteString("\n")

	if report.Root.Skipped {
		builder.WriteString(errorStyle.Render("Root page is disallowed by robots.txt"))
		builder.WriteString("\n")
		return builder.String()
	}

	if report.Root.Broken() {
		builder.WriteString(errorStyle.Render("Can not get a root page: " + report.Root.Status))
		builder.WriteString("\n")
		return builder.String()
	}

	elapsed := report.Stats.Duration.Round(time.Millisecond)

	if report.Stats.Broken == 0 {
		builder.WriteString(successStyle.Render("No broken links found!"))
		builder.WriteString("\n")
		builder.WriteString(dimStyle.Render(fmt.Sprintf(
			"Checked %d of %d unique links (%d total) in %s",
			report.Stats.Probed,
			report.Stats.UniqueLinks,
			report.Stats.TotalLinks,
			elapsed,
		)))
		builder.WriteString("\n")
		return builder.String()
	}

	// Group broken links by error category
	grouped := make(map[result.ErrorCategory][]result.LinkResult)
	for _, link := range report.Links {
		if !link.Broken() {
			continue
		}
		cat := link.ErrorCategory
		if cat == "" {
			cat = result.CategoryUnknown
		}
		grouped[cat] = append(grouped[cat], link)
	}

	for _, cat := range categoryOrder {
		links, exists := grouped[cat]
		if !exists || len(links) == 0 {
			continue
		}

		builder.WriteString(categoryStyle.Render(fmt.Sprintf("## %s (%d)", result.FormatCategory(cat), len(links))))
		builder.WriteString("\n")

		rows := make([][]string, 0, len(links))
		for _, link := range links {
			status := link.Status
			if link.Error != "" {
				status = link.Error
			}
			rows = append(rows, []string{link.URL, status, strconv.Itoa(link.Count)})
		}

		catTable := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("URL", "Status", "Count").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col == 1 { // Status column
					return statusErrorStyle
				}
				return urlStyle
			}).
			Rows(rows...)

		builder.WriteString(catTable.Render())
		builder.WriteString("\n\n")
	}

	builder.WriteString(titleStyle.Render(fmt.Sprintf(
		"Found %d broken links out of %d checked (%s)",
		report.Stats.Broken,
		report.Stats.Probed,
		elapsed,
	)))
	builder.WriteString("\n")

	return builder.String()
}
