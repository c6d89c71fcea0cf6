package result

import (
	"fmt"
	"io"
	"strconv"
)

// rootLabel replaces the occurrence count on the root line.
const rootLabel = "root"

// Reporter receives results as soon as they are known.
type Reporter interface {
	WriteResult(LinkResult) error
}

// TSVWriter streams results as tab-separated lines:
//
//	<mark>\t<status>\t<root|count>\t<url>
type TSVWriter struct {
	w io.Writer
}

// NewTSVWriter returns a TSVWriter writing to w.
func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{w: w}
}

// WriteResult writes one line for res.
func (t *TSVWriter) WriteResult(res LinkResult) error {
	if _, err := fmt.Fprintln(t.w, FormatLine(res)); err != nil {
		return fmt.Errorf("write result line for %s: %w", res.URL, err)
	}
	return nil
}

// FormatLine renders res as a report line without the trailing newline.
// Results that were not probed have empty mark and status columns.
func FormatLine(res LinkResult) string {
	label := rootLabel
	if !res.IsRoot {
		label = strconv.Itoa(res.Count)
	}

	if !res.Probed() {
		return "\t\t" + label + "\t" + res.URL
	}
	return res.Mark() + "\t" + res.Status + "\t" + label + "\t" + res.URL
}

// WriteTSV writes the whole report, root line first.
func WriteTSV(w io.Writer, report *Report) error {
	tw := NewTSVWriter(w)
	if err := tw.WriteResult(report.Root); err != nil {
		return err
	}
	for _, link := range report.Links {
		if err := tw.WriteResult(link); err != nil {
			return err
		}
	}
	return nil
}
