package catalog

// Artwork is one sellable record in the gallery. Records are immutable for
// the lifetime of the process; likes/views are popularity counters carried
// from the upstream dataset, not live counters.
type Artwork struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Likes       int    `json:"likes"`
	Views       int    `json:"views"`
	Image       string `json:"image"`
}

// SeedArtworks returns the demo gallery, ordered by id.
func SeedArtworks() []Artwork {
	return []Artwork{
		{
			ID:          1,
			Title:       "Dancing Celebration",
			Artist:      "Ramesh Vangad",
			Category:    "Warli Art",
			Price:       2500,
			Description: "Tribal figures circling a harvest dance, painted in rice paste on mud ground.",
			Location:    "Palghar, Maharashtra",
			Likes:       214,
			Views:       1892,
			Image:       "/images/dancing-celebration.jpg",
		},
		{
			ID:          2,
			Title:       "Warli Village Life",
			Artist:      "Sita Mashe",
			Category:    "Warli Art",
			Price:       3200,
			Description: "Daily scenes of farming, fishing and festivity in white pigment on ochre.",
			Location:    "Thane, Maharashtra",
			Likes:       178,
			Views:       1431,
			Image:       "/images/village-life.jpg",
		},
		{
			ID:          3,
			Title:       "Women in Madhubani",
			Artist:      "Baua Devi",
			Category:    "Madhubani Art",
			Price:       4500,
			Description: "Figures framed by fish and lotus borders in natural dye on handmade paper.",
			Location:    "Madhubani, Bihar",
			Likes:       342,
			Views:       2764,
			Image:       "/images/women-madhubani.jpg",
		},
		{
			ID:          4,
			Title:       "Peacock Garden",
			Artist:      "Dulari Devi",
			Category:    "Madhubani Art",
			Price:       3800,
			Description: "A pair of peacocks among flowering vines, double-line border in ink.",
			Location:    "Ranti, Bihar",
			Likes:       256,
			Views:       2103,
			Image:       "/images/peacock-garden.jpg",
		},
		{
			ID:          5,
			Title:       "Jagannath Triad",
			Artist:      "Apindra Swain",
			Category:    "Pattachitra",
			Price:       5600,
			Description: "Temple deities rendered in stone and shell colors on treated cloth.",
			Location:    "Raghurajpur, Odisha",
			Likes:       198,
			Views:       1675,
			Image:       "/images/jagannath-triad.jpg",
		},
		{
			ID:          6,
			Title:       "Tree of Life",
			Artist:      "Nirmala Reddy",
			Category:    "Kalamkari",
			Price:       2900,
			Description: "Birds nesting in a flowering tree, pen work with vegetable dyes on cotton.",
			Location:    "Srikalahasti, Andhra Pradesh",
			Likes:       167,
			Views:       1289,
			Image:       "/images/tree-of-life.jpg",
		},
	}
}
