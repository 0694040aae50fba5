package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/edukita/accounts/pkg/idx"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func insertUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.RoleMurid,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips a user", func(t *testing.T) {
		st := newStore(t)
		u := insertUser(t, st, "budi@example.com")

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)
		require.Equal(t, domain.RoleMurid, got.Role)
		require.False(t, got.CreatedAt.IsZero())

		byEmail, err := st.Users().GetUserByEmail(ctx, "budi@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("maps duplicate emails to ErrAlreadyExists", func(t *testing.T) {
		st := newStore(t)
		insertUser(t, st, "budi@example.com")

		dup := domain.User{
			ID:           idx.New().String(),
			Name:         "Other",
			Email:        "budi@example.com",
			PasswordHash: "x",
			Role:         domain.RoleMurid,
		}
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("maps missing rows to ErrNotFound", func(t *testing.T) {
		st := newStore(t)

		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		err = st.Users().DeleteUser(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("EmailTaken honours the exclusion id", func(t *testing.T) {
		st := newStore(t)
		u := insertUser(t, st, "budi@example.com")

		taken, err := st.Users().EmailTaken(ctx, "budi@example.com", "")
		require.NoError(t, err)
		require.True(t, taken)

		taken, err = st.Users().EmailTaken(ctx, "budi@example.com", u.ID)
		require.NoError(t, err)
		require.False(t, taken)
	})
}

func TestSessionTokensCascade(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	u := insertUser(t, st, "budi@example.com")

	token := domain.SessionToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: "fingerprint-1",
		Label:     "laptop",
	}
	require.NoError(t, st.SessionTokens().CreateSessionToken(ctx, token))

	require.NoError(t, st.Users().DeleteUser(ctx, u.ID))

	_, err := st.SessionTokens().GetSessionTokenByHash(ctx, "fingerprint-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	u := insertUser(t, st, "budi@example.com")

	boom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().DeleteUser(ctx, u.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The delete was rolled back.
	_, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
}

func TestListUsersOrderingAndPaging(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		insertUser(t, st, email)
	}

	users, total, err := st.Users().ListUsers(ctx, store.ListUsersFilter{
		SortBy: "email", SortDir: "desc", Page: 1, PerPage: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, users, 2)
	require.Equal(t, "c@example.com", users[0].Email)

	users, total, err = st.Users().ListUsers(ctx, store.ListUsersFilter{
		SortBy: "email", SortDir: "desc", Page: 2, PerPage: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, users, 1)
	require.Equal(t, "a@example.com", users[0].Email)
}

func TestPasswordResetUpsert(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	first := domain.PasswordReset{
		Email:     "budi@example.com",
		TokenHash: "hash-1",
		CreatedAt: time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, st.PasswordResets().UpsertPasswordReset(ctx, first))

	second := first
	second.TokenHash = "hash-2"
	second.CreatedAt = time.Now().UTC()
	require.NoError(t, st.PasswordResets().UpsertPasswordReset(ctx, second))

	got, err := st.PasswordResets().GetPasswordResetByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	require.Equal(t, "hash-2", got.TokenHash)
}
