package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"anchira/internal/domain"
)

var galleryPathPattern = regexp.MustCompile(`/\d+/\S+`)

// sortCodes maps the sort selector index to the API sort parameter.
// Index 3 (date uploaded) is the API default and sends no parameter.
var sortCodes = map[int]string{
	0: "1",
	1: "2",
	2: "4",
	4: "32",
}

// listingURL builds the listing/search URL from pagination, query and
// filter state. With the favorites filter active the listing path is
// swapped for the user favorites path, which requires a session.
func listingURL(ep Endpoints, page int, query string, f domain.Filters) string {
	base := ep.LibraryURL()
	if f.FavoritesOnly {
		base = ep.FavoritesURL()
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	if strings.TrimSpace(query) != "" {
		params.Set("s", query)
	}

	var sum int
	for _, cat := range f.Categories {
		if !cat.Selected {
			continue
		}

		switch cat.Name {
		case "Manga":
			sum += domain.CategoryManga
		case "Doujinshi":
			sum += domain.CategoryDoujinshi
		case "Illustration":
			sum += domain.CategoryIllustration
		}
	}
	if sum > 0 {
		params.Set("cat", strconv.Itoa(sum))
	}

	if f.Sort != nil {
		if code, ok := sortCodes[f.Sort.Index]; ok {
			params.Set("sort", code)
		}
		if f.Sort.Ascending {
			params.Set("order", "1")
		}
	}

	return base + "?" + params.Encode()
}

// galleryURL builds the detail/chapter/pages URL for the id/key pair
// embedded in a generated /g/{id}/{key} URL.
func galleryURL(ep Endpoints, mangaURL string) string {
	return ep.LibraryURL() + "/" + PathFromURL(mangaURL)
}

// refererFor substitutes the API path segment with the matching
// public site path: gallery requests refer to the gallery page,
// favorites requests to the favorites page, listings to the site
// root.
func refererFor(ep Endpoints, requestURL string) string {
	switch {
	case galleryPathPattern.MatchString(strings.TrimPrefix(requestURL, ep.LibraryURL())):
		return strings.Replace(requestURL, ep.LibraryURL(), ep.SiteURL+"/g", 1)
	case strings.Contains(requestURL, "/user/favorites"):
		return strings.Replace(requestURL, ep.FavoritesURL(), ep.SiteURL+"/favorites", 1)
	default:
		return strings.Replace(requestURL, ep.LibraryURL(), ep.SiteURL, 1)
	}
}

// newRequest builds an API GET request carrying the marker and
// referer headers every API call needs.
func newRequest(ctx context.Context, ep Endpoints, requestURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Referer", refererFor(ep, requestURL))

	return req, nil
}

// ImageRequest rewrites the quality segment of a page's canonical
// image URL to the configured quality code before requesting it:
// "a" serves originals, "b" resampled copies.
func ImageRequest(ctx context.Context, page domain.Page, quality string) (*http.Request, error) {
	imageURL := page.ImageURL
	if quality != "" {
		imageURL = strings.Replace(imageURL, "/b/", "/"+quality+"/", 1)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	return req, nil
}
