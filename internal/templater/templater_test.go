package templater

import (
	"testing"

	"anchira/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExecTemplate_DefaultNamingTemplate(t *testing.T) {
	tm := New(domain.Manga{
		URL:    "/g/443/mF9Qz",
		Title:  "Space Saga",
		Artist: "Jane",
	})

	got := tm.ExecTemplate("[{id:6}] {title:<.>}")

	assert.Equal(t, "[000443] Space Saga", got)
}

func TestExecTemplate_Artist(t *testing.T) {
	tm := New(domain.Manga{URL: "/g/443/mF9Qz", Title: "Space Saga", Artist: "Jane"})

	assert.Equal(t, "Jane - Space Saga", tm.ExecTemplate("{artist:<.>} - {title:<.>}"))
}

func TestExecTemplate_UnpaddedID(t *testing.T) {
	tm := New(domain.Manga{URL: "/g/443/mF9Qz"})

	assert.Equal(t, "443", tm.ExecTemplate("{id}"))
}

func TestExecTemplate_MissingFields(t *testing.T) {
	tm := New(domain.Manga{URL: "/g/443/mF9Qz"})

	assert.Equal(t, " - ", tm.ExecTemplate("{artist:<.>} - {title:<.>}"))
}
