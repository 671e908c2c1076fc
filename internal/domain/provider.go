package domain

import "context"

// Source is the browsing contract a reader host consumes.
type Source interface {
	String() string
	Latest(ctx context.Context, page int) (MangasPage, error)
	Popular(ctx context.Context, page int) (MangasPage, error)
	Search(ctx context.Context, page int, query string, filters Filters) (MangasPage, error)
	Details(ctx context.Context, mangaURL string) (Manga, error)
	Chapters(ctx context.Context, mangaURL string) ([]Chapter, error)
	Pages(ctx context.Context, chapterURL string) ([]Page, error)
	MangaURL(manga Manga) string
	ChapterURL(chapter Chapter) string
}
