package source

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"anchira/internal/domain"
	"anchira/internal/payload"
	"anchira/internal/sharedhttp"

	"github.com/avast/retry-go"
)

const userAgent = "anchira"

// Client is the Anchira catalog source. All operations resolve their
// endpoints per call, so flipping the alternate API toggle between
// calls is safe.
type Client struct {
	cfg     *domain.Config
	client  *http.Client
	session *Session
	sources domain.SourceURLStore
}

func New(cfg *domain.Config, store domain.SourceURLStore) *Client {
	client := &http.Client{
		Timeout:   60 * time.Second,
		Transport: sharedhttp.Transport,
	}

	if store == nil {
		store = &memoryStore{urls: make(map[string]string)}
	}

	return &Client{
		cfg:     cfg,
		client:  client,
		session: NewSession(cfg, client),
		sources: store,
	}
}

func (c *Client) String() string {
	return "Anchira"
}

func (c *Client) Session() *Session {
	return c.session
}

// Latest lists recently uploaded galleries.
func (c *Client) Latest(ctx context.Context, page int) (domain.MangasPage, error) {
	return c.Search(ctx, page, "", domain.Filters{})
}

// Popular lists galleries sorted by popularity.
func (c *Client) Popular(ctx context.Context, page int) (domain.MangasPage, error) {
	return c.Search(ctx, page, "", domain.Filters{Sort: &domain.SortFilter{Index: 4}})
}

func (c *Client) Search(ctx context.Context, page int, query string, f domain.Filters) (domain.MangasPage, error) {
	ep, err := ResolveEndpoints(c.cfg)
	if err != nil {
		return domain.MangasPage{}, err
	}

	if f.FavoritesOnly && !c.session.Authenticated() {
		if !c.session.HasCredentials() {
			return domain.MangasPage{}, domain.ErrAuthRequired
		}
		if err := c.session.Login(ctx); err != nil {
			return domain.MangasPage{}, err
		}
	}

	body, err := c.fetch(ctx, ep, listingURL(ep, page, query, f))
	if err != nil {
		return domain.MangasPage{}, err
	}

	resp, err := ep.Decoder().Library(body)
	if err != nil {
		return domain.MangasPage{}, err
	}

	return mapLibrary(resp, ep, c.cfg.GroupTags), nil
}

func (c *Client) Details(ctx context.Context, mangaURL string) (domain.Manga, error) {
	ep, entry, err := c.entry(ctx, mangaURL)
	if err != nil {
		return domain.Manga{}, err
	}

	manga := mapDetail(entry, ep, c.cfg.GroupTags)

	if entry.URL != "" {
		c.sources.SetSourceURL(manga.URL, entry.URL)
	}

	return manga, nil
}

func (c *Client) Chapters(ctx context.Context, mangaURL string) ([]domain.Chapter, error) {
	_, entry, err := c.entry(ctx, mangaURL)
	if err != nil {
		return nil, err
	}

	return mapChapters(entry), nil
}

func (c *Client) Pages(ctx context.Context, chapterURL string) ([]domain.Page, error) {
	ep, entry, err := c.entry(ctx, chapterURL)
	if err != nil {
		return nil, err
	}

	return mapPages(entry, ep), nil
}

// MangaURL is what the host opens for a gallery. With the open-source
// setting enabled and a known original source, that source wins over
// the gallery page.
func (c *Client) MangaURL(manga domain.Manga) string {
	if c.cfg.OpenSource {
		if src, ok := c.sources.SourceURL(manga.URL); ok {
			return src
		}
	}

	return defaultSiteURL + manga.URL
}

func (c *Client) ChapterURL(chapter domain.Chapter) string {
	return defaultSiteURL + "/g/" + PathFromURL(chapter.URL)
}

// ImageRequest builds the request for one page image at the
// configured quality.
func (c *Client) ImageRequest(ctx context.Context, page domain.Page) (*http.Request, error) {
	quality := c.cfg.ImageQuality
	if quality == "" {
		quality = "b"
	}

	return ImageRequest(ctx, page, quality)
}

// ImageURLFromResponse exists to satisfy hosts that resolve image
// URLs from a per-page response; this source embeds final URLs in the
// page list, so the path is never taken.
func (c *Client) ImageURLFromResponse(*http.Response) (string, error) {
	return "", domain.ErrUnsupportedOperation
}

func (c *Client) entry(ctx context.Context, mangaURL string) (Endpoints, payload.Entry, error) {
	ep, err := ResolveEndpoints(c.cfg)
	if err != nil {
		return Endpoints{}, payload.Entry{}, err
	}

	body, err := c.fetch(ctx, ep, galleryURL(ep, mangaURL))
	if err != nil {
		return Endpoints{}, payload.Entry{}, err
	}

	entry, err := ep.Decoder().Entry(body)
	if err != nil {
		return Endpoints{}, payload.Entry{}, err
	}

	return ep, entry, nil
}

// fetch issues one API GET and returns the raw body. Transport
// hiccups are retried; anything the session or decoder rejects is
// terminal and surfaces unchanged.
func (c *Client) fetch(ctx context.Context, ep Endpoints, requestURL string) ([]byte, error) {
	req, err := newRequest(ctx, ep, requestURL)
	if err != nil {
		return nil, err
	}

	if err := c.session.Apply(ctx, req); err != nil {
		return nil, err
	}

	var body []byte

	retryErr := retry.Do(func() error {
		resp, err := sharedhttp.ExecRequest(ctx, c.client, req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(bufio.NewReader(resp.Body))
		return err
	},
		retry.Delay(time.Second*3),
		retry.Attempts(3),
		retry.MaxJitter(time.Second*1),
	)
	if retryErr != nil {
		return nil, retryErr
	}

	return body, nil
}

// memoryStore is the process-lifetime fallback when no settings
// backed store is wired in.
type memoryStore struct {
	mu   sync.Mutex
	urls map[string]string
}

func (s *memoryStore) SourceURL(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.urls[path]
	return u, ok
}

func (s *memoryStore) SetSourceURL(path, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.urls[path] = url
}
