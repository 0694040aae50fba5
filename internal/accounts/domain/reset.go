package domain

import "time"

// PasswordReset is the single pending reset request for an email address.
// A new request for the same address replaces the row; redemption deletes it.
type PasswordReset struct {
	Email     string
	TokenHash string // base64url SHA-256 fingerprint of the mailed token
	CreatedAt time.Time
}

// Expired reports whether the reset is past its lifetime at the given
// instant. Expiry is computed at redemption, never stored.
func (p PasswordReset) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(p.CreatedAt) > ttl
}
