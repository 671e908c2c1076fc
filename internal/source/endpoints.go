package source

import (
	"net/url"
	"strings"

	"anchira/internal/domain"
	"anchira/internal/obfuscate"
	"anchira/internal/payload"

	"github.com/pkg/errors"
)

const (
	defaultSiteURL = "https://anchira.to"
	defaultCDNURL  = "https://kisakisexo.xyz"
)

// Endpoints answers "which API base, which CDN, which payload
// encoding" in one place, so the request builder and the decoder can
// never disagree about the active mirror.
type Endpoints struct {
	SiteURL string
	APIURL  string
	CDNURL  string
	Mode    domain.DecodeMode
	Version obfuscate.ProtocolVersion
}

// ResolveEndpoints picks the effective endpoints for one operation
// from the current config. The alternate mirror speaks plain JSON,
// the primary API speaks obfuscated msgpack.
func ResolveEndpoints(cfg *domain.Config) (Endpoints, error) {
	ep := Endpoints{
		SiteURL: defaultSiteURL,
		APIURL:  defaultSiteURL + "/api/v1",
		CDNURL:  defaultCDNURL,
		Mode:    domain.ModePrimary,
		Version: obfuscate.V1,
	}

	if cfg.UseAlternateAPI {
		u, err := url.Parse(cfg.AlternateAPIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Endpoints{}, errors.Wrapf(domain.ErrInvalidConfig, "alternate API URL %q", cfg.AlternateAPIURL)
		}

		ep.APIURL = strings.TrimRight(cfg.AlternateAPIURL, "/")
		ep.Mode = domain.ModeAlternate
	}

	return ep, nil
}

func (e Endpoints) LibraryURL() string {
	return e.APIURL + "/library"
}

func (e Endpoints) FavoritesURL() string {
	return e.APIURL + "/user/favorites"
}

// Decoder returns the payload decoder matching these endpoints.
func (e Endpoints) Decoder() payload.Decoder {
	return payload.Decoder{Mode: e.Mode, Version: e.Version}
}
