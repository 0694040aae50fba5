package domain

import "time"

// SessionToken models one stored bearer credential. Only the SHA-256
// fingerprint of the opaque value is kept; the plaintext leaves the service
// exactly once, in the login response.
type SessionToken struct {
	ID        string
	UserID    string
	TokenHash string // base64url SHA-256 fingerprint
	Label     string // human-readable device/client label
	CreatedAt time.Time
}
