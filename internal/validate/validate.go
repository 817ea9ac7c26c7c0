package validate

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrEmptyURL is returned for empty or whitespace-only input.
	ErrEmptyURL = errors.New("empty URL")

	// ErrInvalidURL is returned for input that is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid URL")
)

// CheckURL verifies that raw is an absolute http or https URL with a host.
// It is a pure predicate: it performs no network access.
func CheckURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}

	if u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}
