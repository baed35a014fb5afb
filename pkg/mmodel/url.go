package mmodel

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseURL validates an absolute URL.
func ParseURL(s string) (string, error) {
	s = strings.TrimSpace(s)

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", s, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("url %q is not absolute", s)
	}

	return u.String(), nil
}

// ParseLaxURL parses a URL the way user form input is treated: when the
// input carries no scheme, "https://www." is prepended before validation.
func ParseLaxURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty url")
	}

	if !strings.Contains(s, "://") {
		s = "https://www." + strings.TrimPrefix(s, "www.")
	}

	return ParseURL(s)
}
