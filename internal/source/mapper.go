package source

import (
	"fmt"
	"strings"

	"anchira/internal/domain"
	"anchira/internal/payload"
	"anchira/internal/tags"
)

// PathFromURL extracts the "id/key" pair from a URL produced by this
// client: the id is the second to last path segment, the key the
// last. This holds for every generated URL, so extraction always
// round-trips.
func PathFromURL(u string) string {
	parts := strings.Split(u, "/")
	if len(parts) < 2 {
		return u
	}

	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

func mapLibrary(resp payload.LibraryResponse, ep Endpoints, grouped bool) domain.MangasPage {
	// a page without entries means there is nothing further to fetch,
	// whatever the reported total says
	if resp.Entries == nil {
		return domain.MangasPage{Mangas: []domain.Manga{}}
	}

	mangas := make([]domain.Manga, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		mangas = append(mangas, domain.Manga{
			URL:            fmt.Sprintf("/g/%d/%s", e.ID, e.Key),
			Title:          e.Title,
			ThumbnailURL:   fmt.Sprintf("%s/%d/%s/m/%s", ep.CDNURL, e.ID, e.Key, e.Cover.Name),
			Artist:         tags.Artists(e.Tags),
			Author:         tags.Authors(e.Tags),
			Genre:          tags.Genre(e.Tags, grouped),
			Status:         domain.StatusCompleted,
			UpdateStrategy: domain.UpdateFetchOnce,
		})
	}

	return domain.MangasPage{
		Mangas:      mangas,
		HasNextPage: len(resp.Entries) < resp.Total,
	}
}

func mapDetail(entry payload.Entry, ep Endpoints, grouped bool) domain.Manga {
	var thumbnail string
	if entry.ThumbIndex >= 0 && entry.ThumbIndex < len(entry.Data) {
		thumbnail = fmt.Sprintf("%s/%d/%s/m/%s", ep.CDNURL, entry.ID, entry.Key, entry.Data[entry.ThumbIndex].Name)
	}

	return domain.Manga{
		URL:            fmt.Sprintf("/g/%d/%s", entry.ID, entry.Key),
		Title:          entry.Title,
		ThumbnailURL:   thumbnail,
		Artist:         tags.Artists(entry.Tags),
		Author:         tags.Authors(entry.Tags),
		Genre:          tags.Genre(entry.Tags, grouped),
		Status:         domain.StatusCompleted,
		UpdateStrategy: domain.UpdateFetchOnce,
		Initialized:    true,
	}
}

// mapChapters emits the one synthetic chapter every gallery has. The
// API reports publish times in epoch seconds; hosts expect
// milliseconds, so conversion happens here at the boundary.
func mapChapters(entry payload.Entry) []domain.Chapter {
	return []domain.Chapter{
		{
			URL:        fmt.Sprintf("/g/%d/%s", entry.ID, entry.Key),
			Name:       "Chapter",
			UploadedAt: entry.PublishedAt * 1000,
			Number:     1,
		},
	}
}

// mapPages preserves the API image order, which is the reading order.
func mapPages(entry payload.Entry, ep Endpoints) []domain.Page {
	pages := make([]domain.Page, 0, len(entry.Data))
	for i, img := range entry.Data {
		pages = append(pages, domain.Page{
			Index:    i,
			ImageURL: fmt.Sprintf("%s/%d/%s/%s/b/%s", ep.CDNURL, entry.ID, entry.Key, entry.Hash, img.Name),
		})
	}

	return pages
}
