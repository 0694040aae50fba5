package store

import (
	"context"
	"errors"
	"time"

	"github.com/edukita/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ListUsersFilter carries the admin listing parameters. The service layer
// normalises values; drivers may assume SortBy/SortDir are whitelisted and
// Page/PerPage are positive.
type ListUsersFilter struct {
	Role    domain.Role // empty = all roles
	Search  string      // matches name or email, substring
	SortBy  string      // name | email | created_at
	SortDir string      // asc | desc
	Page    int         // 1-based
	PerPage int
}

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	SessionTokens() SessionTokens
	PasswordResets() PasswordResets
	MuridProfiles() MuridProfiles
	PengajarProfiles() PengajarProfiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Preferred over
	// Tx for multi-step operations that must be atomic (e.g. reset
	// redemption, user deletion).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and reset-token issuance.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser writes name, email and role, bumping updated_at.
	// Returns ErrAlreadyExists when the new email collides.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// DeleteUser removes the row; session tokens and profiles cascade per schema.
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers applies the filter and returns one page plus the total count
	// of matching rows.
	ListUsers(ctx context.Context, f ListUsersFilter) ([]domain.User, int, error)

	// EmailTaken reports whether email belongs to a user other than excludeID.
	// Pass an empty excludeID to check against all users.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
}

type SessionTokens interface {
	// CreateSessionToken stores a new session token record.
	CreateSessionToken(ctx context.Context, t domain.SessionToken) error

	// GetSessionTokenByHash returns the token by its SHA-256 fingerprint.
	GetSessionTokenByHash(ctx context.Context, hash string) (domain.SessionToken, error)

	// DeleteSessionTokenByHash removes exactly the one matching token record.
	DeleteSessionTokenByHash(ctx context.Context, hash string) error
}

type PasswordResets interface {
	// UpsertPasswordReset writes the pending reset for an email, replacing
	// any previous one (at most one live token per address).
	UpsertPasswordReset(ctx context.Context, p domain.PasswordReset) error

	// GetPasswordResetByEmail returns the pending reset for an email.
	GetPasswordResetByEmail(ctx context.Context, email string) (domain.PasswordReset, error)

	// DeletePasswordReset removes the pending reset for an email.
	// A missing row is not an error.
	DeletePasswordReset(ctx context.Context, email string) error

	// DeleteExpiredPasswordResets removes rows created before the cutoff.
	// Housekeeping only; expiry is enforced at redemption regardless.
	DeleteExpiredPasswordResets(ctx context.Context, before time.Time) error
}

type MuridProfiles interface {
	// GetMuridProfile returns the student profile for a user.
	GetMuridProfile(ctx context.Context, userID string) (domain.MuridProfile, error)

	// UpsertMuridProfile creates or updates the profile keyed by user_id.
	UpsertMuridProfile(ctx context.Context, p domain.MuridProfile) error
}

type PengajarProfiles interface {
	// GetPengajarProfile returns the instructor profile for a user.
	GetPengajarProfile(ctx context.Context, userID string) (domain.PengajarProfile, error)

	// UpsertPengajarProfile creates or updates the profile keyed by user_id.
	UpsertPengajarProfile(ctx context.Context, p domain.PengajarProfile) error
}
