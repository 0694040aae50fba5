package service

import (
	"context"
	"errors"
	"strings"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/pkg/cryptox"
	"github.com/edukita/accounts/pkg/idx"
	"github.com/edukita/accounts/pkg/slogx"
)

// ErrUnauthenticated reports a missing, malformed or unknown bearer token.
var ErrUnauthenticated = errors.New("unauthenticated")

// TokenService issues, resolves and revokes opaque session tokens. Only the
// SHA-256 fingerprint is stored; the plaintext is returned from Issue exactly
// once. Session tokens carry no expiry.
type TokenService struct {
	Store store.Store
}

// Issue mints a new opaque token bound to the user and returns its plaintext.
// Collisions on the opaque value are not checked beyond the UNIQUE index;
// 512 bits of entropy make them practically impossible.
func (s *TokenService) Issue(ctx context.Context, userID, label string) (string, error) {
	opaque, err := cryptox.GenerateToken(cryptox.TokenSize512)
	if err != nil {
		return "", err
	}

	token := domain.SessionToken{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(opaque),
		Label:     label,
	}

	if err := s.Store.SessionTokens().CreateSessionToken(ctx, token); err != nil {
		return "", err
	}

	return opaque, nil
}

// Resolve maps a presented token back to its owning user. Any failure
// (empty, unknown, orphaned) collapses into ErrUnauthenticated.
func (s *TokenService) Resolve(ctx context.Context, presented string) (domain.User, error) {
	presented = strings.TrimSpace(presented)
	if presented == "" {
		return domain.User{}, ErrUnauthenticated
	}

	token, err := s.Store.SessionTokens().GetSessionTokenByHash(
		ctx, cryptox.FingerprintToken(presented))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnauthenticated
		}
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Warn("session token references missing user",
				"token_id", token.ID)
			return domain.User{}, ErrUnauthenticated
		}
		return domain.User{}, err
	}

	return user, nil
}

// Revoke deletes exactly the one token record matching the presented value.
// Revoking an already-gone token is not an error; the outcome is the same.
func (s *TokenService) Revoke(ctx context.Context, presented string) error {
	err := s.Store.SessionTokens().DeleteSessionTokenByHash(
		ctx, cryptox.FingerprintToken(presented))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
