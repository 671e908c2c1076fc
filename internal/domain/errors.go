package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrAuthRequired is returned when an operation needs a session
	// cookie but none is held and none can be obtained proactively.
	ErrAuthRequired = errors.New("authentication required")

	// ErrCredentialsEmpty is returned before any network call when
	// username or password is blank.
	ErrCredentialsEmpty = errors.New("credentials are empty")

	// ErrLoginFailed is returned when the login endpoint answers with
	// a non-success status or without a session cookie.
	ErrLoginFailed = errors.New("login failed")

	// ErrInvalidConfig is returned when the alternate API URL is set
	// but is not a well-formed URL.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedOperation marks code paths that are unreachable in
	// normal flow, like deriving an image URL from a page response.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// DecodeMode selects which payload encoding is expected from the API.
type DecodeMode int

const (
	// ModePrimary is the obfuscated msgpack payload of the main API.
	ModePrimary DecodeMode = iota
	// ModeAlternate is the plain JSON payload of the mirror API.
	ModeAlternate
)

func (m DecodeMode) String() string {
	if m == ModeAlternate {
		return "alternate"
	}
	return "primary"
}

// DecodeError is terminal for the request that produced it; malformed
// payloads are never retried.
type DecodeError struct {
	Mode DecodeMode
	Len  int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s payload of %d bytes: %v", e.Mode, e.Len, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
