package domain

// Category bit flags summed into the cat query parameter.
const (
	CategoryManga        = 1
	CategoryDoujinshi    = 2
	CategoryIllustration = 4
)

type CategoryFilter struct {
	Name     string
	Selected bool
}

// SortLabels are the selectable sort options shown by the host, in
// selector index order.
var SortLabels = []string{"Title", "Pages", "Date published", "Date uploaded", "Popularity"}

type SortFilter struct {
	Index     int
	Ascending bool
}

type Filters struct {
	Categories    []CategoryFilter
	Sort          *SortFilter
	FavoritesOnly bool
}

// NewFilters returns the default filter set: no categories selected,
// sorted by date published descending, favorites off.
func NewFilters() Filters {
	return Filters{
		Categories: []CategoryFilter{
			{Name: "Manga"},
			{Name: "Doujinshi"},
			{Name: "Illustration"},
		},
		Sort: &SortFilter{Index: 2},
	}
}
