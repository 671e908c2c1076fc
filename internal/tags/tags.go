package tags

import (
	"sort"
	"strings"

	"anchira/internal/payload"
)

// Namespace codes used by the API.
const (
	NamespaceArtist   = 1
	NamespaceCircle   = 2
	NamespaceParody   = 3
	NamespaceMagazine = 4
	NamespaceGeneral  = 6
)

func label(namespace int) string {
	switch namespace {
	case NamespaceArtist:
		return "artist"
	case NamespaceCircle:
		return "circle"
	case NamespaceParody:
		return "parody"
	case NamespaceMagazine:
		return "magazine"
	default:
		return "tag"
	}
}

// normalize assigns the general namespace to tags the API sent
// without one.
func normalize(namespace int) int {
	if namespace == 0 {
		return NamespaceGeneral
	}

	return namespace
}

// Classify renders tags as a comma separated string, sorted by
// namespace ascending. The sort is stable, so tags sharing a
// namespace keep their API order. With grouped set, each name is
// prefixed with its role label.
func Classify(ts []payload.Tag, grouped bool) string {
	sorted := make([]payload.Tag, len(ts))
	copy(sorted, ts)

	sort.SliceStable(sorted, func(i, j int) bool {
		return normalize(sorted[i].Namespace) < normalize(sorted[j].Namespace)
	})

	parts := make([]string, 0, len(sorted))
	for _, t := range sorted {
		name := strings.ToLower(t.Name)
		if grouped {
			parts = append(parts, label(normalize(t.Namespace))+":"+name)
		} else {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, ", ")
}

// Artists joins the names of all artist tags.
func Artists(ts []payload.Tag) string {
	return joinNamespace(ts, NamespaceArtist)
}

// Authors joins the names of all circle/author tags.
func Authors(ts []payload.Tag) string {
	return joinNamespace(ts, NamespaceCircle)
}

// Genre renders every tag that is not an artist or author, sorted by
// namespace ascending, the way listing entries display their genre
// string.
func Genre(ts []payload.Tag, grouped bool) string {
	filtered := make([]payload.Tag, 0, len(ts))
	for _, t := range ts {
		if t.Namespace == NamespaceArtist || t.Namespace == NamespaceCircle {
			continue
		}
		filtered = append(filtered, t)
	}

	return Classify(filtered, grouped)
}

func joinNamespace(ts []payload.Tag, namespace int) string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		if t.Namespace == namespace {
			names = append(names, t.Name)
		}
	}

	return strings.Join(names, ", ")
}
