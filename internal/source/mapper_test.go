package source

import (
	"testing"

	"anchira/internal/domain"
	"anchira/internal/payload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFromURL(t *testing.T) {
	assert.Equal(t, "443/mF9Qz", PathFromURL("/g/443/mF9Qz"))
	assert.Equal(t, "443/mF9Qz", PathFromURL("https://anchira.to/g/443/mF9Qz"))
}

func TestPathFromURL_RoundTripsGeneratedURLs(t *testing.T) {
	ep := testEndpoints(t)

	entry := payload.Entry{ID: 443, Key: "mF9Qz"}
	manga := mapDetail(entry, ep, false)

	assert.Equal(t, "443/mF9Qz", PathFromURL(manga.URL))
	assert.Equal(t, ep.LibraryURL()+"/443/mF9Qz", galleryURL(ep, manga.URL))
}

func TestMapLibrary(t *testing.T) {
	ep := testEndpoints(t)

	resp := payload.LibraryResponse{
		Entries: []payload.ListEntry{
			{
				ID:    443,
				Key:   "mF9Qz",
				Title: "Space Saga",
				Cover: payload.Image{Name: "1.png"},
				Tags: []payload.Tag{
					{Name: "Jane", Namespace: 1},
					{Name: "Acme", Namespace: 2},
					{Name: "Sci-Fi"},
				},
			},
		},
		Total: 20,
	}

	page := mapLibrary(resp, ep, false)

	require.Len(t, page.Mangas, 1)
	m := page.Mangas[0]
	assert.Equal(t, "/g/443/mF9Qz", m.URL)
	assert.Equal(t, "Space Saga", m.Title)
	assert.Equal(t, defaultCDNURL+"/443/mF9Qz/m/1.png", m.ThumbnailURL)
	assert.Equal(t, "Jane", m.Artist)
	assert.Equal(t, "Acme", m.Author)
	assert.Equal(t, "sci-fi", m.Genre)
	assert.Equal(t, domain.StatusCompleted, m.Status)
	assert.Equal(t, domain.UpdateFetchOnce, m.UpdateStrategy)
	assert.True(t, page.HasNextPage)
}

func TestMapLibrary_LastPage(t *testing.T) {
	ep := testEndpoints(t)

	entries := make([]payload.ListEntry, 20)
	page := mapLibrary(payload.LibraryResponse{Entries: entries, Total: 20}, ep, false)

	assert.False(t, page.HasNextPage)
}

func TestMapLibrary_NoEntries(t *testing.T) {
	ep := testEndpoints(t)

	// the reported total does not matter once entries are absent
	page := mapLibrary(payload.LibraryResponse{Total: 99}, ep, false)

	assert.Empty(t, page.Mangas)
	assert.False(t, page.HasNextPage)
}

func TestMapDetail(t *testing.T) {
	ep := testEndpoints(t)

	entry := payload.Entry{
		ID:         443,
		Key:        "mF9Qz",
		Title:      "Space Saga",
		ThumbIndex: 1,
		Hash:       "c0ffee",
		Data: []payload.Image{
			{Name: "1.png"},
			{Name: "2.png"},
		},
	}

	m := mapDetail(entry, ep, false)

	assert.Equal(t, "/g/443/mF9Qz", m.URL)
	assert.Equal(t, defaultCDNURL+"/443/mF9Qz/m/2.png", m.ThumbnailURL)
	assert.True(t, m.Initialized)
}

func TestMapDetail_ThumbIndexOutOfRange(t *testing.T) {
	ep := testEndpoints(t)

	entry := payload.Entry{ID: 443, Key: "mF9Qz", ThumbIndex: 5, Data: []payload.Image{{Name: "1.png"}}}

	assert.Empty(t, mapDetail(entry, ep, false).ThumbnailURL)
}

func TestMapChapters(t *testing.T) {
	entry := payload.Entry{ID: 443, Key: "mF9Qz", PublishedAt: 1700000000}

	chapters := mapChapters(entry)

	require.Len(t, chapters, 1)
	c := chapters[0]
	assert.Equal(t, "/g/443/mF9Qz", c.URL)
	assert.Equal(t, "Chapter", c.Name)
	assert.Equal(t, int64(1700000000000), c.UploadedAt)
	assert.Equal(t, float32(1), c.Number)
}

func TestMapPages(t *testing.T) {
	ep := testEndpoints(t)

	entry := payload.Entry{
		ID:   443,
		Key:  "mF9Qz",
		Hash: "c0ffee",
		Data: []payload.Image{{Name: "1.png"}, {Name: "2.png"}},
	}

	pages := mapPages(entry, ep)

	require.Len(t, pages, 2)
	assert.Equal(t, 0, pages[0].Index)
	assert.Equal(t, defaultCDNURL+"/443/mF9Qz/c0ffee/b/1.png", pages[0].ImageURL)
	assert.Equal(t, 1, pages[1].Index)
	assert.Equal(t, defaultCDNURL+"/443/mF9Qz/c0ffee/b/2.png", pages[1].ImageURL)
}
