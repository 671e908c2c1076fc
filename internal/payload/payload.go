package payload

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"anchira/internal/domain"
	"anchira/internal/obfuscate"

	"github.com/vmihailenco/msgpack/v5"
)

// Tag is a raw API tag. A namespace of 0 means the API omitted the
// field; classification assigns such tags the general namespace.
type Tag struct {
	Name      string `msgpack:"name" json:"name"`
	Namespace int    `msgpack:"namespace" json:"namespace"`
}

type Image struct {
	Name string `msgpack:"n" json:"n"`
}

type ListEntry struct {
	ID      int    `msgpack:"id"`
	Key     string `msgpack:"key"`
	DataKey string `msgpack:"data_key"`
	Title   string `msgpack:"title"`
	Cover   Image  `msgpack:"cover"`
	Pages   int    `msgpack:"pages"`
	Tags    []Tag  `msgpack:"tags"`
}

// LibraryResponse is one page of a listing. A nil Entries slice means
// an empty page with no further pages, regardless of Total.
type LibraryResponse struct {
	Entries []ListEntry `msgpack:"entries"`
	Total   int         `msgpack:"total"`
}

type Entry struct {
	ID          int     `msgpack:"id"`
	Key         string  `msgpack:"key"`
	DataKey     string  `msgpack:"data_key"`
	PublishedAt int64   `msgpack:"published_at"`
	Title       string  `msgpack:"title"`
	ThumbIndex  int     `msgpack:"thumb_index"`
	Hash        string  `msgpack:"hash"`
	Data        []Image `msgpack:"data"`
	Tags        []Tag   `msgpack:"tags"`
	URL         string  `msgpack:"url"`
}

// Decoder turns raw API bytes into typed payloads. Mode and Version
// come from the endpoint resolver so that the URL being queried and
// the expected encoding can never disagree.
type Decoder struct {
	Mode    domain.DecodeMode
	Version obfuscate.ProtocolVersion
}

func (d Decoder) Library(buf []byte) (LibraryResponse, error) {
	var resp LibraryResponse

	if d.Mode == domain.ModeAlternate {
		var alt altLibraryResponse
		if err := json.Unmarshal(buf, &alt); err != nil {
			return resp, &domain.DecodeError{Mode: d.Mode, Len: len(buf), Err: err}
		}

		resp, err := alt.toLibrary()
		if err != nil {
			return LibraryResponse{}, &domain.DecodeError{Mode: d.Mode, Len: len(buf), Err: err}
		}

		return resp, nil
	}

	data := obfuscate.DecodeVersioned(buf, d.Version)
	if err := msgpack.Unmarshal(data, &resp); err != nil {
		return resp, &domain.DecodeError{Mode: d.Mode, Len: len(buf), Err: err}
	}

	return resp, nil
}

func (d Decoder) Entry(buf []byte) (Entry, error) {
	var entry Entry

	if d.Mode == domain.ModeAlternate {
		var alt altEntry
		if err := json.Unmarshal(buf, &alt); err != nil {
			return entry, &domain.DecodeError{Mode: d.Mode, Len: len(buf), Err: err}
		}

		entry, err := alt.toEntry()
		if err != nil {
			return Entry{}, &domain.DecodeError{Mode: d.Mode, Len: len(buf), Err: err}
		}

		return entry, nil
	}

	data := obfuscate.DecodeVersioned(buf, d.Version)
	if err := msgpack.Unmarshal(data, &entry); err != nil {
		return entry, &domain.DecodeError{Mode: d.Mode, Len: len(buf), Err: err}
	}

	return entry, nil
}

// Alternate mirror schema. The mirror identifies entries by a single
// composite "id/key" string and spells out field names the primary
// API abbreviates.

type altListEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cover string `json:"cover"`
	Pages int    `json:"pages"`
	Tags  []Tag  `json:"tags"`
}

type altLibraryResponse struct {
	Entries []altListEntry `json:"entries"`
	Total   int            `json:"total"`
}

type altEntry struct {
	ID          string   `json:"id"`
	PublishedAt int64    `json:"published_at"`
	Title       string   `json:"title"`
	ThumbIndex  int      `json:"thumb_index"`
	Hash        string   `json:"hash"`
	Images      []string `json:"images"`
	Tags        []Tag    `json:"tags"`
	URL         string   `json:"url"`
}

func splitComposite(composite string) (int, string, error) {
	idStr, key, found := strings.Cut(composite, "/")
	if !found {
		return 0, "", fmt.Errorf("malformed composite id: %q", composite)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, "", fmt.Errorf("malformed composite id: %q", composite)
	}

	return id, key, nil
}

func (a altLibraryResponse) toLibrary() (LibraryResponse, error) {
	resp := LibraryResponse{Total: a.Total}

	if a.Entries == nil {
		return resp, nil
	}

	resp.Entries = make([]ListEntry, 0, len(a.Entries))
	for _, e := range a.Entries {
		id, key, err := splitComposite(e.ID)
		if err != nil {
			return LibraryResponse{}, err
		}

		resp.Entries = append(resp.Entries, ListEntry{
			ID:    id,
			Key:   key,
			Title: e.Title,
			Cover: Image{Name: e.Cover},
			Pages: e.Pages,
			Tags:  e.Tags,
		})
	}

	return resp, nil
}

func (a altEntry) toEntry() (Entry, error) {
	id, key, err := splitComposite(a.ID)
	if err != nil {
		return Entry{}, err
	}

	images := make([]Image, 0, len(a.Images))
	for _, name := range a.Images {
		images = append(images, Image{Name: name})
	}

	return Entry{
		ID:          id,
		Key:         key,
		PublishedAt: a.PublishedAt,
		Title:       a.Title,
		ThumbIndex:  a.ThumbIndex,
		Hash:        a.Hash,
		Data:        images,
		Tags:        a.Tags,
		URL:         a.URL,
	}, nil
}
