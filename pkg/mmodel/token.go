package mmodel

import "time"

// UserToken is an email-confirmation or password-reset token.
// Its lifecycle is issued -> (consumed | expired).
type UserToken struct {
	EmailNonce EmailNonce `json:"-"`
	ExpiresAt  time.Time  `json:"expiresAt"`
}

// IsExpired reports whether the token has expired at the given instant.
func (t *UserToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// ReviewToken authorizes a one-shot review of a specific place revision via
// an email link.
type ReviewToken struct {
	PlaceID   ID        `json:"placeId"`
	Revision  Revision  `json:"revision"`
	Nonce     Nonce     `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the token has expired at the given instant.
func (t *ReviewToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
