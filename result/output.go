package result

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// Format names accepted by WriteReport.
const (
	FormatTSV      = "tsv"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// WriteReport writes report to w in the named format.
func WriteReport(w io.Writer, format string, report *Report) error {
	switch format {
	case FormatTSV:
		return WriteTSV(w, report)
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatCSV:
		return WriteCSV(w, report)
	case FormatMarkdown:
		return WriteMarkdown(w, report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteJSON writes the report as an indented JSON object.
func WriteJSON(w io.Writer, report *Report) error {
	out := *report
	if out.Links == nil {
		out.Links = []LinkResult{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write json output: %w", err)
	}
	return nil
}

// csvHeader is the column order of WriteCSV.
var csvHeader = []string{"mark", "status", "count", "url", "in_scope", "skipped", "error_type", "error"}

// WriteCSV writes the root and link results as CSV.
// Always includes a header row. The root row has "root" in the count column.
func WriteCSV(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	rows := append([]LinkResult{report.Root}, report.Links...)
	for _, link := range rows {
		if err := cw.Write(csvRecord(link)); err != nil {
			return fmt.Errorf("write csv record for %s: %w", link.URL, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}

func csvRecord(link LinkResult) []string {
	count := rootLabel
	if !link.IsRoot {
		count = strconv.Itoa(link.Count)
	}
	return []string{
		link.Mark(),
		link.Status,
		count,
		link.URL,
		strconv.FormatBool(link.InScope),
		strconv.FormatBool(link.Skipped),
		string(link.ErrorCategory),
		link.Error,
	}
}

// WriteMarkdown writes the report as GitHub Flavored Markdown.
func WriteMarkdown(w io.Writer, report *Report) error {
	md := markdown.NewMarkdown(w)

	md.H1("Link Check Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Root", "`" + report.Root.URL + "`"},
			{"Status", report.Root.Status},
			{"Links", strconv.Itoa(report.Stats.TotalLinks)},
			{"Unique Links", strconv.Itoa(report.Stats.UniqueLinks)},
			{"Probed", strconv.Itoa(report.Stats.Probed)},
			{"Broken", strconv.Itoa(report.Stats.Broken)},
		},
	})
	md.PlainText("")

	if len(report.Links) > 0 {
		md.H2("Links")
		md.PlainText("")

		rows := make([][]string, 0, len(report.Links))
		for _, link := range report.Links {
			status := link.Status
			if link.Skipped {
				status = "robots.txt"
			}
			rows = append(rows, []string{
				link.Mark(),
				status,
				strconv.Itoa(link.Count),
				"`" + link.URL + "`",
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Mark", "Status", "Count", "URL"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return fmt.Errorf("write markdown output: %w", err)
	}
	return nil
}
