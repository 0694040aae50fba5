package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/pkg/cryptox"
)

// captureNotifier records delivered tokens instead of sending mail.
type captureNotifier struct {
	to      string
	token   string
	sent    int
	sendErr error
}

func (n *captureNotifier) SendPasswordReset(_ context.Context, to, token string) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.to = to
	n.token = token
	n.sent++
	return nil
}

func newResetService(st store.Store, n *captureNotifier) *service.PasswordResetService {
	return &service.PasswordResetService{Store: st, Notifier: n}
}

func TestPasswordResetRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("mails a token and stores only its fingerprint", func(t *testing.T) {
		st := newTestStore(t)
		notifier := &captureNotifier{}
		svc := newResetService(st, notifier)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		require.NoError(t, svc.Request(ctx, "budi@example.com"))
		require.Equal(t, 1, notifier.sent)
		require.Equal(t, "budi@example.com", notifier.to)
		require.NotEmpty(t, notifier.token)

		reset, err := st.PasswordResets().GetPasswordResetByEmail(ctx, "budi@example.com")
		require.NoError(t, err)
		require.NotEqual(t, notifier.token, reset.TokenHash)
		require.Equal(t, cryptox.FingerprintToken(notifier.token), reset.TokenHash)
	})

	t.Run("silently succeeds for an unknown email", func(t *testing.T) {
		st := newTestStore(t)
		notifier := &captureNotifier{}
		svc := newResetService(st, notifier)

		require.NoError(t, svc.Request(ctx, "nobody@example.com"))
		require.Zero(t, notifier.sent)

		_, err := st.PasswordResets().GetPasswordResetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("a second request replaces the first token", func(t *testing.T) {
		st := newTestStore(t)
		notifier := &captureNotifier{}
		svc := newResetService(st, notifier)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		require.NoError(t, svc.Request(ctx, "budi@example.com"))
		first := notifier.token
		require.NoError(t, svc.Request(ctx, "budi@example.com"))
		second := notifier.token
		require.NotEqual(t, first, second)

		// Only the latest token redeems.
		err := svc.Redeem(ctx, "budi@example.com", first, "rahasia-baru")
		require.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)
		require.NoError(t, svc.Redeem(ctx, "budi@example.com", second, "rahasia-baru"))
	})

	t.Run("surfaces notifier failures after persisting the row", func(t *testing.T) {
		st := newTestStore(t)
		notifier := &captureNotifier{sendErr: errors.New("smtp down")}
		svc := newResetService(st, notifier)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		err := svc.Request(ctx, "budi@example.com")
		require.ErrorIs(t, err, service.ErrNotifierFailure)

		_, err = st.PasswordResets().GetPasswordResetByEmail(ctx, "budi@example.com")
		require.NoError(t, err)
	})
}

func TestPasswordResetRedeem(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the new password and consumes the token", func(t *testing.T) {
		st := newTestStore(t)
		notifier := &captureNotifier{}
		svc := newResetService(st, notifier)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)
		auth := newAuthService(st)

		require.NoError(t, svc.Request(ctx, "budi@example.com"))
		require.NoError(t, svc.Redeem(ctx, "budi@example.com", notifier.token, "rahasia-baru"))

		_, _, err := auth.Login(ctx, "budi@example.com", "rahasia-baru", "test")
		require.NoError(t, err)

		// Single use: the same token no longer redeems.
		err = svc.Redeem(ctx, "budi@example.com", notifier.token, "rahasia-lain")
		require.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)
	})

	t.Run("a wrong token leaves the pending row intact", func(t *testing.T) {
		st := newTestStore(t)
		notifier := &captureNotifier{}
		svc := newResetService(st, notifier)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		require.NoError(t, svc.Request(ctx, "budi@example.com"))

		err := svc.Redeem(ctx, "budi@example.com", "wrong-token", "rahasia-baru")
		require.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)

		// The mailed token still works afterwards.
		require.NoError(t, svc.Redeem(ctx, "budi@example.com", notifier.token, "rahasia-baru"))
	})

	t.Run("rejects an expired token and keeps the row for housekeeping", func(t *testing.T) {
		st := newTestStore(t)
		svc := newResetService(st, &captureNotifier{})
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.NoError(t, st.PasswordResets().UpsertPasswordReset(ctx, domain.PasswordReset{
			Email:     "budi@example.com",
			TokenHash: cryptox.FingerprintToken(token),
			CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
		}))

		err = svc.Redeem(ctx, "budi@example.com", token, "rahasia-baru")
		require.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)

		_, err = st.PasswordResets().GetPasswordResetByEmail(ctx, "budi@example.com")
		require.NoError(t, err)
	})

	t.Run("rejects an email with no pending reset", func(t *testing.T) {
		st := newTestStore(t)
		svc := newResetService(st, &captureNotifier{})
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		err := svc.Redeem(ctx, "budi@example.com", "anything", "rahasia-baru")
		require.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)
	})
}

func TestPasswordResetPruneExpired(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc := newResetService(st, &captureNotifier{})

	require.NoError(t, st.PasswordResets().UpsertPasswordReset(ctx, domain.PasswordReset{
		Email:     "old@example.com",
		TokenHash: "stale",
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}))
	require.NoError(t, st.PasswordResets().UpsertPasswordReset(ctx, domain.PasswordReset{
		Email:     "fresh@example.com",
		TokenHash: "fresh",
		CreatedAt: time.Now().UTC(),
	}))

	require.NoError(t, svc.PruneExpired(ctx))

	_, err := st.PasswordResets().GetPasswordResetByEmail(ctx, "old@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.PasswordResets().GetPasswordResetByEmail(ctx, "fresh@example.com")
	require.NoError(t, err)
}
