package mmodel

import (
	"fmt"
	"net/mail"
	"strings"
)

// EmailAddress is a validated, RFC-shaped email address.
type EmailAddress string

// ParseEmailAddress validates and normalizes an email address.
func ParseEmailAddress(s string) (EmailAddress, error) {
	s = strings.TrimSpace(s)

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", fmt.Errorf("invalid email address %q: %w", s, err)
	}

	return EmailAddress(strings.ToLower(addr.Address)), nil
}

// String implements fmt.Stringer.
func (e EmailAddress) String() string {
	return string(e)
}

// IsEmpty reports whether the address is blank.
func (e EmailAddress) IsEmpty() bool {
	return strings.TrimSpace(string(e)) == ""
}
