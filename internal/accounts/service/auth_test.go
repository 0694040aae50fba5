package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/internal/accounts/store"
)

func newAuthService(st store.Store) *service.AuthService {
	return &service.AuthService{
		Store:  st,
		Tokens: &service.TokenService{Store: st},
	}
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a murid account", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)

		user, err := svc.Register(ctx, "Budi Santoso", "budi@example.com", "rahasia-123")
		require.NoError(t, err)
		require.Equal(t, domain.RoleMurid, user.Role)
		require.Equal(t, "budi@example.com", user.Email)
		require.NotEmpty(t, user.ID)
		require.False(t, user.CreatedAt.IsZero())

		// Stored hash must not be the plaintext.
		stored, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotEqual(t, "rahasia-123", stored.PasswordHash)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)

		_, err := svc.Register(ctx, "Budi", "budi@example.com", "rahasia-123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Other Budi", "budi@example.com", "rahasia-456")
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a session token for valid credentials", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		user, token, err := svc.Login(ctx, "budi@example.com", "rahasia-123", "test")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, "budi@example.com", user.Email)

		resolved, err := svc.Tokens.Resolve(ctx, token)
		require.NoError(t, err)
		require.Equal(t, user.ID, resolved.ID)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		_, _, err := svc.Login(ctx, "budi@example.com", "wrong", "test")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("rejects an unknown email with the same error", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)

		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever", "test")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthServiceUpdateSelf(t *testing.T) {
	ctx := context.Background()

	strptr := func(s string) *string { return &s }

	t.Run("applies partial updates", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		updated, err := svc.UpdateSelf(ctx, user.ID, strptr("Budi Santoso"), nil)
		require.NoError(t, err)
		require.Equal(t, "Budi Santoso", updated.Name)
		require.Equal(t, "budi@example.com", updated.Email)
	})

	t.Run("allows keeping your own email", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		updated, err := svc.UpdateSelf(ctx, user.ID, nil, strptr("budi@example.com"))
		require.NoError(t, err)
		require.Equal(t, "budi@example.com", updated.Email)
	})

	t.Run("rejects another user's email", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		seedUser(t, st, "Siti", "siti@example.com", "rahasia-123", domain.RoleMurid)
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		_, err := svc.UpdateSelf(ctx, user.ID, nil, strptr("siti@example.com"))
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})
}

func TestAuthServiceChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the password when the old one matches", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		err := svc.ChangePassword(ctx, user.ID, "rahasia-123", "rahasia-baru")
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "budi@example.com", "rahasia-123", "test")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, _, err = svc.Login(ctx, "budi@example.com", "rahasia-baru", "test")
		require.NoError(t, err)
	})

	t.Run("rejects a wrong old password and keeps the hash", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		err := svc.ChangePassword(ctx, user.ID, "wrong", "rahasia-baru")
		require.ErrorIs(t, err, service.ErrInvalidOldPassword)

		_, _, err = svc.Login(ctx, "budi@example.com", "rahasia-123", "test")
		require.NoError(t, err)
	})
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked tokens stop resolving", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		_, token, err := svc.Login(ctx, "budi@example.com", "rahasia-123", "test")
		require.NoError(t, err)

		require.NoError(t, svc.Tokens.Revoke(ctx, token))

		_, err = svc.Tokens.Resolve(ctx, token)
		require.ErrorIs(t, err, service.ErrUnauthenticated)

		// Revoking again stays a no-op.
		require.NoError(t, svc.Tokens.Revoke(ctx, token))
	})

	t.Run("tokens from parallel logins are independent", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		_, first, err := svc.Login(ctx, "budi@example.com", "rahasia-123", "laptop")
		require.NoError(t, err)
		_, second, err := svc.Login(ctx, "budi@example.com", "rahasia-123", "phone")
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		require.NoError(t, svc.Tokens.Revoke(ctx, first))

		_, err = svc.Tokens.Resolve(ctx, second)
		require.NoError(t, err)
	})

	t.Run("garbage tokens are unauthenticated", func(t *testing.T) {
		st := newTestStore(t)
		svc := newAuthService(st)

		_, err := svc.Tokens.Resolve(ctx, "")
		require.ErrorIs(t, err, service.ErrUnauthenticated)

		_, err = svc.Tokens.Resolve(ctx, "not-a-real-token")
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}
