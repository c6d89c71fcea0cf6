package checker

import "slices"

// LinkGroup is a unique link and the number of times it appeared.
type LinkGroup struct {
	URL   string
	Count int
}

// GroupLinks sorts a copy of links lexicographically and collapses runs of
// equal values into one LinkGroup each. Groups are returned in sort order and
// their counts sum to len(links). An empty input yields an empty slice.
func GroupLinks(links []string) []LinkGroup {
	sorted := slices.Clone(links)
	slices.Sort(sorted)

	groups := []LinkGroup{}
	for _, link := range sorted {
		if n := len(groups); n > 0 && groups[n-1].URL == link {
			groups[n-1].Count++
			continue
		}
		groups = append(groups, LinkGroup{URL: link, Count: 1})
	}
	return groups
}
