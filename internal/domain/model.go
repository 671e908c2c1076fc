package domain

// UpdateStrategy tells the host how often manga metadata should be refreshed.
type UpdateStrategy int

const (
	UpdateAlways UpdateStrategy = iota
	UpdateFetchOnce
)

// Status of a manga. Galleries are one-shot releases, so everything
// mapped by this client is StatusCompleted.
type Status int

const (
	StatusUnknown Status = iota
	StatusOngoing
	StatusCompleted
)

type Manga struct {
	URL            string
	Title          string
	ThumbnailURL   string
	Artist         string
	Author         string
	Genre          string
	Status         Status
	UpdateStrategy UpdateStrategy
	Initialized    bool
}

type Chapter struct {
	URL  string
	Name string
	// UploadedAt is the publish time in epoch milliseconds, matching
	// what reader hosts expect for chapter dates.
	UploadedAt int64
	Number     float32
}

type Page struct {
	Index    int
	ImageURL string
}

// MangasPage is one page of a paginated listing.
type MangasPage struct {
	Mangas      []Manga
	HasNextPage bool
}
