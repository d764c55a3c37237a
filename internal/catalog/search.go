package catalog

import "strings"

// AllCategories is the sentinel meaning no category filter is applied.
const AllCategories = "All"

// Search holds the transient query/category pair for one gallery view and
// derives a filtered slice of an immutable artwork list on demand. It is
// not safe for concurrent use; each view owns its own Search.
type Search struct {
	entries  []Artwork
	query    string
	category string
}

func NewSearch(entries []Artwork) *Search {
	return &Search{entries: entries, category: AllCategories}
}

// SetQuery replaces the free-text query verbatim. Trimming and case
// folding happen at filter time, not here.
func (s *Search) SetQuery(q string) { s.query = q }

// SetCategory replaces the selected category. The value is not validated
// against the known set; an unknown category yields zero results.
func (s *Search) SetCategory(c string) { s.category = c }

func (s *Search) Query() string    { return s.query }
func (s *Search) Category() string { return s.category }

// Results applies the category filter, then the free-text filter, over the
// source list. Category matching is exact and case-sensitive; the query
// matches case-insensitively as a substring of title, artist, category,
// description or location. The source list is never mutated.
func (s *Search) Results() []Artwork {
	out := make([]Artwork, 0, len(s.entries))

	q := strings.ToLower(strings.TrimSpace(s.query))
	for _, a := range s.entries {
		if s.category != AllCategories && a.Category != s.category {
			continue
		}
		if q != "" && !matches(a, q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(a Artwork, loweredQuery string) bool {
	for _, field := range []string{a.Title, a.Artist, a.Category, a.Description, a.Location} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}

// Categories returns the sentinel followed by the distinct categories of
// the source list in first-occurrence order.
func (s *Search) Categories() []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{}, len(s.entries))
	for _, a := range s.entries {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	return out
}

func (s *Search) ResultCount() int { return len(s.Results()) }

func (s *Search) HasResults() bool { return s.ResultCount() > 0 }
