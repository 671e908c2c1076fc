package source

import (
	"context"
	"net/url"
	"testing"

	"anchira/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEndpoints(t *testing.T) Endpoints {
	t.Helper()

	ep, err := ResolveEndpoints(&domain.Config{})
	require.NoError(t, err)
	return ep
}

func queryOf(t *testing.T, rawURL string) url.Values {
	t.Helper()

	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Query()
}

func TestListingURL_PageOnly(t *testing.T) {
	ep := testEndpoints(t)

	rawURL := listingURL(ep, 3, "", domain.Filters{})
	params := queryOf(t, rawURL)

	assert.Equal(t, "3", params.Get("page"))
	assert.False(t, params.Has("s"))
	assert.False(t, params.Has("cat"))
	assert.False(t, params.Has("sort"))
	assert.False(t, params.Has("order"))
}

func TestListingURL_BlankQueryOmitted(t *testing.T) {
	ep := testEndpoints(t)

	params := queryOf(t, listingURL(ep, 1, "   ", domain.Filters{}))

	assert.False(t, params.Has("s"))
}

func TestListingURL_CategoryBitmask(t *testing.T) {
	ep := testEndpoints(t)

	f := domain.NewFilters()
	f.Sort = nil
	f.Categories[0].Selected = true // Manga
	f.Categories[2].Selected = true // Illustration

	params := queryOf(t, listingURL(ep, 1, "", f))

	assert.Equal(t, "5", params.Get("cat"))
}

func TestListingURL_NoCategoriesOmitsParam(t *testing.T) {
	ep := testEndpoints(t)

	f := domain.NewFilters()
	f.Sort = nil

	params := queryOf(t, listingURL(ep, 1, "", f))

	assert.False(t, params.Has("cat"))
}

func TestListingURL_SortAscending(t *testing.T) {
	ep := testEndpoints(t)

	f := domain.Filters{Sort: &domain.SortFilter{Index: 1, Ascending: true}}

	params := queryOf(t, listingURL(ep, 1, "", f))

	assert.Equal(t, "2", params.Get("sort"))
	assert.Equal(t, "1", params.Get("order"))
}

func TestListingURL_UnmappedSortOmitted(t *testing.T) {
	ep := testEndpoints(t)

	f := domain.Filters{Sort: &domain.SortFilter{Index: 3}}

	params := queryOf(t, listingURL(ep, 1, "", f))

	assert.False(t, params.Has("sort"))
	assert.False(t, params.Has("order"))
}

func TestListingURL_FavoritesPathSwap(t *testing.T) {
	ep := testEndpoints(t)

	rawURL := listingURL(ep, 2, "", domain.Filters{FavoritesOnly: true})

	assert.Contains(t, rawURL, "/api/v1/user/favorites?")
	assert.Equal(t, "2", queryOf(t, rawURL).Get("page"))
}

func TestListingURL_SearchText(t *testing.T) {
	ep := testEndpoints(t)

	params := queryOf(t, listingURL(ep, 1, "space saga", domain.Filters{}))

	assert.Equal(t, "space saga", params.Get("s"))
}

func TestRefererFor_Gallery(t *testing.T) {
	ep := testEndpoints(t)

	got := refererFor(ep, ep.LibraryURL()+"/443/mF9Qz")

	assert.Equal(t, "https://anchira.to/g/443/mF9Qz", got)
}

func TestRefererFor_Favorites(t *testing.T) {
	ep := testEndpoints(t)

	got := refererFor(ep, ep.FavoritesURL()+"?page=1")

	assert.Equal(t, "https://anchira.to/favorites?page=1", got)
}

func TestRefererFor_Listing(t *testing.T) {
	ep := testEndpoints(t)

	got := refererFor(ep, ep.LibraryURL()+"?page=1")

	assert.Equal(t, "https://anchira.to?page=1", got)
}

func TestNewRequest_Headers(t *testing.T) {
	ep := testEndpoints(t)

	req, err := newRequest(context.Background(), ep, ep.LibraryURL()+"?page=1")
	require.NoError(t, err)

	assert.Equal(t, "XMLHttpRequest", req.Header.Get("X-Requested-With"))
	assert.NotEmpty(t, req.Header.Get("Referer"))
}

func TestImageRequest_QualityRewrite(t *testing.T) {
	page := domain.Page{ImageURL: "https://kisakisexo.xyz/443/mF9Qz/c0ffee/b/1.png"}

	req, err := ImageRequest(context.Background(), page, "a")
	require.NoError(t, err)

	assert.Equal(t, "https://kisakisexo.xyz/443/mF9Qz/c0ffee/a/1.png", req.URL.String())
}

func TestImageRequest_DefaultQualityKeepsURL(t *testing.T) {
	page := domain.Page{ImageURL: "https://kisakisexo.xyz/443/mF9Qz/c0ffee/b/1.png"}

	req, err := ImageRequest(context.Background(), page, "b")
	require.NoError(t, err)

	assert.Equal(t, page.ImageURL, req.URL.String())
}
