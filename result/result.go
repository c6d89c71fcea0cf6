package result

import "time"

// StatusOK is the only status text that leaves a line unmarked.
const StatusOK = "200"

// LinkResult is one line of a link check report.
type LinkResult struct {
	URL           string        `json:"url"`                  // The link as written in the page, or the root URL
	Count         int           `json:"count"`                // Occurrences in the root page (0 for the root)
	Status        string        `json:"status"`               // Status code text, or an error category; empty if not probed
	StatusCode    int           `json:"status_code"`          // HTTP status code (0 if unreachable or not probed)
	Error         string        `json:"error,omitempty"`      // Transport error message
	ErrorCategory ErrorCategory `json:"error_type,omitempty"` // Classification of Error
	InScope       bool          `json:"in_scope"`             // Root-relative or same authority as the root
	Skipped       bool          `json:"skipped,omitempty"`    // In scope but disallowed by robots.txt
	IsRoot        bool          `json:"is_root"`              // The root page itself
}

// Probed reports whether a request was made for this result.
func (r LinkResult) Probed() bool {
	return !r.Skipped && (r.IsRoot || r.InScope)
}

// Broken reports whether a probed result did not return 200.
func (r LinkResult) Broken() bool {
	return r.Probed() && r.Status != StatusOK
}

// Mark returns "*" for broken results and "" otherwise.
func (r LinkResult) Mark() string {
	if r.Broken() {
		return "*"
	}
	return ""
}

// CheckStats contains aggregate statistics for one root page.
type CheckStats struct {
	TotalLinks  int           `json:"total_links"`  // Links extracted, duplicates included
	UniqueLinks int           `json:"unique_links"` // Grouped links
	Probed      int           `json:"probed"`       // Grouped links that were requested
	Broken      int           `json:"broken"`       // Probed links without a 200
	Duration    time.Duration `json:"-"`            // Wall time including intervals
}

// Report is the complete output of checking one root page.
type Report struct {
	Root  LinkResult   `json:"root"`
	Links []LinkResult `json:"links"`
	Stats CheckStats   `json:"stats"`
}

// Add appends a grouped link result and updates the statistics.
func (r *Report) Add(link LinkResult) {
	r.Links = append(r.Links, link)
	r.Stats.TotalLinks += link.Count
	r.Stats.UniqueLinks++
	if link.Probed() {
		r.Stats.Probed++
	}
	if link.Broken() {
		r.Stats.Broken++
	}
}
