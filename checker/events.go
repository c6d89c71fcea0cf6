package checker

import "github.com/lukemcguire/linkcheck/result"

// Event reports one line of the report as soon as it is known.
type Event struct {
	Result  result.LinkResult
	Checked int // Grouped links reported so far (the root is not counted)
	Total   int // Grouped links found on the root page (0 until the root is parsed)
	Broken  int // Broken grouped links so far
}
