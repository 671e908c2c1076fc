package source

import (
	"context"
	"testing"

	"anchira/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_FavoritesWithoutCredentials(t *testing.T) {
	c := New(&domain.Config{}, nil)

	_, err := c.Search(context.Background(), 1, "", domain.Filters{FavoritesOnly: true})

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestSearch_InvalidAlternateConfig(t *testing.T) {
	c := New(&domain.Config{UseAlternateAPI: true, AlternateAPIURL: "nope"}, nil)

	_, err := c.Search(context.Background(), 1, "", domain.Filters{})

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestMangaURL(t *testing.T) {
	c := New(&domain.Config{}, nil)

	manga := domain.Manga{URL: "/g/443/mF9Qz"}

	assert.Equal(t, "https://anchira.to/g/443/mF9Qz", c.MangaURL(manga))
}

func TestMangaURL_OpenSource(t *testing.T) {
	c := New(&domain.Config{OpenSource: true}, nil)
	c.sources.SetSourceURL("/g/443/mF9Qz", "https://original.example/galleries/99")

	manga := domain.Manga{URL: "/g/443/mF9Qz"}

	assert.Equal(t, "https://original.example/galleries/99", c.MangaURL(manga))

	// without a recorded source the gallery page still wins
	other := domain.Manga{URL: "/g/7/abc"}
	assert.Equal(t, "https://anchira.to/g/7/abc", c.MangaURL(other))
}

func TestChapterURL(t *testing.T) {
	c := New(&domain.Config{}, nil)

	chapter := domain.Chapter{URL: "/g/443/mF9Qz"}

	assert.Equal(t, "https://anchira.to/g/443/mF9Qz", c.ChapterURL(chapter))
}

func TestClientImageRequest_DefaultsToResampled(t *testing.T) {
	c := New(&domain.Config{}, nil)

	page := domain.Page{ImageURL: "https://kisakisexo.xyz/443/mF9Qz/c0ffee/b/1.png"}

	req, err := c.ImageRequest(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, page.ImageURL, req.URL.String())
}

func TestClientImageRequest_OriginalQuality(t *testing.T) {
	c := New(&domain.Config{ImageQuality: "a"}, nil)

	page := domain.Page{ImageURL: "https://kisakisexo.xyz/443/mF9Qz/c0ffee/b/1.png"}

	req, err := c.ImageRequest(context.Background(), page)
	require.NoError(t, err)
	assert.Equal(t, "https://kisakisexo.xyz/443/mF9Qz/c0ffee/a/1.png", req.URL.String())
}

func TestImageURLFromResponse(t *testing.T) {
	c := New(&domain.Config{}, nil)

	_, err := c.ImageURLFromResponse(nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
}
