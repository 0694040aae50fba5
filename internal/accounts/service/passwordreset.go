package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/pkg/cryptox"
	"github.com/edukita/accounts/pkg/mailx"
	"github.com/edukita/accounts/pkg/slogx"
)

// DefaultResetTokenTTL is how long an emailed reset token stays redeemable.
const DefaultResetTokenTTL = 60 * time.Minute

var (
	// ErrInvalidOrExpiredToken covers every redemption failure: unknown
	// email, wrong token and expired token all map to the same error.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

	// ErrNotifierFailure wraps delivery errors from the mail notifier. The
	// reset row is already persisted when this is returned.
	ErrNotifierFailure = errors.New("failed to deliver reset notification")
)

// PasswordResetService implements the forgot-password flow: issuing emailed
// single-use tokens and redeeming them for a new password.
type PasswordResetService struct {
	Store    store.Store
	Notifier mailx.Notifier

	// TTL defaults to DefaultResetTokenTTL when zero.
	TTL time.Duration
}

func (s *PasswordResetService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultResetTokenTTL
}

// Request issues a reset token for the given email and hands it to the
// notifier. An unknown email returns nil so the endpoint cannot be used to
// probe which addresses have accounts.
func (s *PasswordResetService) Request(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	// Persist before sending: a crash between the two leaves a redeemable
	// row that housekeeping will eventually prune, never a mailed token
	// with no row behind it.
	reset := domain.PasswordReset{
		Email:     email,
		TokenHash: cryptox.FingerprintToken(token),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.PasswordResets().UpsertPasswordReset(ctx, reset); err != nil {
		return err
	}

	if err := s.Notifier.SendPasswordReset(ctx, email, token); err != nil {
		return fmt.Errorf("%w: %w", ErrNotifierFailure, err)
	}

	log.Info("reset token issued")
	return nil
}

// Redeem consumes a reset token and sets a new password. The stored row is
// deleted only on success; a mismatched or expired token leaves it in place
// so the mailed token stays redeemable for its full window.
func (s *PasswordResetService) Redeem(
	ctx context.Context,
	email, token, newPassword string,
) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		reset, err := tx.PasswordResets().GetPasswordResetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidOrExpiredToken
			}
			return err
		}

		presented := []byte(cryptox.FingerprintToken(token))
		if subtle.ConstantTimeCompare(presented, []byte(reset.TokenHash)) != 1 {
			return ErrInvalidOrExpiredToken
		}
		if reset.Expired(s.ttl(), time.Now().UTC()) {
			return ErrInvalidOrExpiredToken
		}

		user, err := tx.Users().GetUserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidOrExpiredToken
			}
			return err
		}

		hash, err := cryptox.HashPassword(newPassword)
		if err != nil {
			return err
		}
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}

		return tx.PasswordResets().DeletePasswordReset(ctx, email)
	})
	if err != nil {
		return err
	}

	log.Info("password reset redeemed", slog.String("email", email))
	return nil
}

// PruneExpired removes reset rows older than the TTL. Called by housekeeping.
func (s *PasswordResetService) PruneExpired(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-s.ttl())
	return s.Store.PasswordResets().DeleteExpiredPasswordResets(ctx, cutoff)
}
