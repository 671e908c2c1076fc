package source

import (
	"testing"

	"anchira/internal/domain"
	"anchira/internal/obfuscate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoints_Defaults(t *testing.T) {
	ep, err := ResolveEndpoints(&domain.Config{})
	require.NoError(t, err)

	assert.Equal(t, "https://anchira.to", ep.SiteURL)
	assert.Equal(t, "https://anchira.to/api/v1", ep.APIURL)
	assert.Equal(t, "https://kisakisexo.xyz", ep.CDNURL)
	assert.Equal(t, domain.ModePrimary, ep.Mode)
	assert.Equal(t, obfuscate.V1, ep.Version)

	assert.Equal(t, "https://anchira.to/api/v1/library", ep.LibraryURL())
	assert.Equal(t, "https://anchira.to/api/v1/user/favorites", ep.FavoritesURL())
}

func TestResolveEndpoints_Alternate(t *testing.T) {
	cfg := &domain.Config{
		UseAlternateAPI: true,
		AlternateAPIURL: "https://mirror.example/api/v1/",
	}

	ep, err := ResolveEndpoints(cfg)
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.example/api/v1", ep.APIURL)
	assert.Equal(t, domain.ModeAlternate, ep.Mode)
	// the public site and CDN do not move with the mirror
	assert.Equal(t, "https://anchira.to", ep.SiteURL)
	assert.Equal(t, "https://kisakisexo.xyz", ep.CDNURL)
}

func TestResolveEndpoints_InvalidAlternateURL(t *testing.T) {
	for _, bad := range []string{"", "not a url", "/relative/path"} {
		cfg := &domain.Config{UseAlternateAPI: true, AlternateAPIURL: bad}

		_, err := ResolveEndpoints(cfg)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig, bad)
	}
}

func TestEndpointsDecoder(t *testing.T) {
	ep, err := ResolveEndpoints(&domain.Config{})
	require.NoError(t, err)

	dec := ep.Decoder()
	assert.Equal(t, domain.ModePrimary, dec.Mode)
	assert.Equal(t, obfuscate.V1, dec.Version)
}
