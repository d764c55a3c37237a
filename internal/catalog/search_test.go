package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(arts []Artwork) []int {
	out := make([]int, 0, len(arts))
	for _, a := range arts {
		out = append(out, a.ID)
	}
	return out
}

func TestSearch_DefaultsReturnEverything(t *testing.T) {
	s := NewSearch(SeedArtworks())

	got := ids(s.Results())
	want := []int{1, 2, 3, 4, 5, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
	if !s.HasResults() || s.ResultCount() != 6 {
		t.Fatalf("HasResults=%v ResultCount=%d", s.HasResults(), s.ResultCount())
	}
}

func TestSearch_CategoryFilterIsExactSubset(t *testing.T) {
	all := SeedArtworks()
	s := NewSearch(all)

	for _, c := range s.Categories() {
		s.SetCategory(c)
		s.SetQuery("")

		want := make([]int, 0)
		for _, a := range all {
			if c == AllCategories || a.Category == c {
				want = append(want, a.ID)
			}
		}
		if diff := cmp.Diff(want, ids(s.Results())); diff != "" {
			t.Fatalf("category %q (-want +got):\n%s", c, diff)
		}
	}
}

func TestSearch_QueryIsCaseInsensitiveSubstring(t *testing.T) {
	s := NewSearch(SeedArtworks())

	for _, q := range []string{"warli", "WARLI", "WaRlI", "  warli  "} {
		s.SetQuery(q)
		if diff := cmp.Diff([]int{1, 2}, ids(s.Results())); diff != "" {
			t.Fatalf("query %q (-want +got):\n%s", q, diff)
		}
	}
}

func TestSearch_QueryMatchesAcrossFields(t *testing.T) {
	s := NewSearch(SeedArtworks())

	cases := []struct {
		q    string
		want []int
	}{
		{"baua devi", []int{3}},         // artist
		{"bihar", []int{3, 4}},          // location
		{"pattachitra", []int{5}},       // category
		{"flowering", []int{4, 6}},      // description
		{"tree of life", []int{6}},      // title
		{"no such artwork anywhere", []int{}},
	}
	for _, tc := range cases {
		s.SetQuery(tc.q)
		if diff := cmp.Diff(tc.want, ids(s.Results())); diff != "" {
			t.Fatalf("query %q (-want +got):\n%s", tc.q, diff)
		}
	}
}

func TestSearch_CategoryThenQueryConjunction(t *testing.T) {
	s := NewSearch(SeedArtworks())
	s.SetCategory("Madhubani Art")
	s.SetQuery("women")

	got := s.Results()
	if len(got) != 1 || got[0].Title != "Women in Madhubani" {
		t.Fatalf("got %+v", got)
	}

	// Same query outside the category finds nothing.
	s.SetCategory("Warli Art")
	if s.HasResults() {
		t.Fatalf("expected no results, got %d", s.ResultCount())
	}
}

func TestSearch_UnknownCategoryYieldsZeroResults(t *testing.T) {
	s := NewSearch(SeedArtworks())
	s.SetCategory("Gond Art")

	if s.HasResults() {
		t.Fatalf("expected empty result set, got %d", s.ResultCount())
	}

	// Category matching is case-sensitive.
	s.SetCategory("warli art")
	if s.ResultCount() != 0 {
		t.Fatalf("lowercased category matched %d entries", s.ResultCount())
	}
}

func TestSearch_SetQueryIsIdempotent(t *testing.T) {
	s := NewSearch(SeedArtworks())

	s.SetQuery("madhubani")
	first := ids(s.Results())
	s.SetQuery("madhubani")
	second := ids(s.Results())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated SetQuery changed results (-first +second):\n%s", diff)
	}
}

func TestSearch_CategoriesFirstOccurrenceOrder(t *testing.T) {
	s := NewSearch(SeedArtworks())

	want := []string{"All", "Warli Art", "Madhubani Art", "Pattachitra", "Kalamkari"}
	if diff := cmp.Diff(want, s.Categories()); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}
}

func TestSearch_SourceListNeverMutated(t *testing.T) {
	src := SeedArtworks()
	s := NewSearch(src)
	s.SetQuery("warli")
	_ = s.Results()
	s.SetCategory("Madhubani Art")
	_ = s.Results()

	if diff := cmp.Diff(SeedArtworks(), src); diff != "" {
		t.Fatalf("source mutated (-want +got):\n%s", diff)
	}
}
