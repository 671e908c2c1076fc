package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"anchira/internal/domain"
	"anchira/internal/sharedhttp"

	"github.com/pkg/errors"
)

const sessionCookie = "session"

// Session owns the login cookie state shared by every authenticated
// call. All cookie reads and writes go through its mutex; the host
// may fire overlapping requests from several goroutines.
type Session struct {
	mu       sync.Mutex
	cfg      *domain.Config
	client   *http.Client
	loginURL string
	cookies  map[string][]*http.Cookie // held cookies per origin host
	value    string                    // current session cookie value, "" when unauthenticated
}

func NewSession(cfg *domain.Config, client *http.Client) *Session {
	return &Session{
		cfg:      cfg,
		client:   client,
		loginURL: defaultSiteURL + "/api/v1/auth/login",
		cookies:  make(map[string][]*http.Cookie),
	}
}

// Authenticated reports whether a session cookie is held.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value != ""
}

// HasCredentials reports whether login can be attempted at all.
func (s *Session) HasCredentials() bool {
	return s.cfg.Username != "" && s.cfg.Password != ""
}

// Login posts the configured credentials against the primary origin
// and captures the session cookie. Failures are terminal: retrying
// the same bad credentials cannot succeed.
func (s *Session) Login(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.login(ctx)
}

func (s *Session) login(ctx context.Context) error {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return domain.ErrCredentialsEmpty
	}

	field := "uname"
	if s.cfg.UseEmail {
		field = "email"
	}

	body, err := json.Marshal(map[string]string{
		field:    s.cfg.Username,
		"passwd": s.cfg.Password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.loginURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	if err := sharedhttp.Limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit error: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK || len(resp.Cookies()) == 0 {
		return errors.Wrapf(domain.ErrLoginFailed, "status code %d", resp.StatusCode)
	}

	var value string
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			value = c.Value
		}
	}
	if value == "" {
		return errors.Wrap(domain.ErrLoginFailed, "no session cookie in response")
	}

	s.value = value
	s.hold(defaultSiteURL, resp.Cookies())

	if s.cfg.UseAlternateAPI {
		if err := s.mirrorToAlternate(); err != nil {
			return err
		}
	}

	return nil
}

// mirrorToAlternate re-issues the primary origin session cookie
// against the alternate origin. The mirror shares no cookie state
// with the primary host, so the cookie gets an explicit expiry of
// now+24h and locked-down attributes.
func (s *Session) mirrorToAlternate() error {
	altURL, err := url.Parse(s.cfg.AlternateAPIURL)
	if err != nil || altURL.Scheme == "" || altURL.Host == "" {
		return errors.Wrapf(domain.ErrInvalidConfig, "alternate API URL %q", s.cfg.AlternateAPIURL)
	}

	mirrored := &http.Cookie{
		Name:     sessionCookie,
		Value:    s.value,
		Expires:  time.Now().Add(24 * time.Hour).UTC(),
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	s.hold(altURL.Scheme+"://"+altURL.Host, []*http.Cookie{mirrored})

	return nil
}

// Invalidate drops the in-memory cookie and overwrites every held
// cookie on both origins with an expired copy, so a credential change
// cannot leak a stale session into later requests.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for origin, held := range s.cookies {
		expired := make([]*http.Cookie, 0, len(held))
		for _, c := range held {
			expired = append(expired, &http.Cookie{
				Name:   c.Name,
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})
		}
		s.cookies[origin] = expired
	}

	s.value = ""
}

// Apply intercepts a request for a user-scoped resource: when no
// cookie is held it logs in first, stalling the request, then
// attaches the cookie header.
func (s *Session) Apply(ctx context.Context, req *http.Request) error {
	if !strings.Contains(req.URL.Path, "/user/") {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == "" {
		if err := s.login(ctx); err != nil {
			return err
		}
	}

	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: s.value})

	return nil
}

// hold replaces the remembered cookies for an origin, keeping ones
// the new set does not overwrite.
func (s *Session) hold(origin string, incoming []*http.Cookie) {
	held := s.cookies[origin]

	for _, in := range incoming {
		replaced := false
		for i, c := range held {
			if c.Name == in.Name {
				held[i] = in
				replaced = true
				break
			}
		}
		if !replaced {
			held = append(held, in)
		}
	}

	s.cookies[origin] = held
}

// Cookies returns the cookies currently held for an origin.
func (s *Session) Cookies(origin string) []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*http.Cookie(nil), s.cookies[origin]...)
}
