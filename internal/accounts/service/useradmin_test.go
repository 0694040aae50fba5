package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/internal/accounts/store"
)

func TestUserAdminCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates users with any valid role", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}

		for _, role := range []domain.Role{domain.RoleAdmin, domain.RolePengajar, domain.RoleMurid} {
			user, err := svc.Create(ctx, "User", fmt.Sprintf("%s@example.com", role), "rahasia-123", role)
			require.NoError(t, err)
			require.Equal(t, role, user.Role)
		}
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}

		_, err := svc.Create(ctx, "User", "user@example.com", "rahasia-123", domain.Role("superuser"))
		require.ErrorIs(t, err, service.ErrInvalidRole)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		_, err := svc.Create(ctx, "Budi Again", "budi@example.com", "rahasia-123", domain.RolePengajar)
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})
}

func TestUserAdminList(t *testing.T) {
	ctx := context.Background()

	seedRoster := func(t *testing.T, st store.Store) {
		seedUser(t, st, "Admin Utama", "admin@example.com", "rahasia-123", domain.RoleAdmin)
		seedUser(t, st, "Pak Dosen", "dosen@example.com", "rahasia-123", domain.RolePengajar)
		seedUser(t, st, "Budi Santoso", "budi@example.com", "rahasia-123", domain.RoleMurid)
		seedUser(t, st, "Siti Aminah", "siti@example.com", "rahasia-123", domain.RoleMurid)
	}

	t.Run("returns everyone by default", func(t *testing.T) {
		st := newTestStore(t)
		seedRoster(t, st)
		svc := &service.UserAdminService{Store: st}

		users, total, err := svc.List(ctx, store.ListUsersFilter{})
		require.NoError(t, err)
		require.Equal(t, 4, total)
		require.Len(t, users, 4)
	})

	t.Run("filters by role", func(t *testing.T) {
		st := newTestStore(t)
		seedRoster(t, st)
		svc := &service.UserAdminService{Store: st}

		users, total, err := svc.List(ctx, store.ListUsersFilter{Role: domain.RoleMurid})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		for _, u := range users {
			require.Equal(t, domain.RoleMurid, u.Role)
		}
	})

	t.Run("rejects an unknown role filter", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}

		_, _, err := svc.List(ctx, store.ListUsersFilter{Role: domain.Role("ghost")})
		require.ErrorIs(t, err, service.ErrInvalidRole)
	})

	t.Run("searches name and email", func(t *testing.T) {
		st := newTestStore(t)
		seedRoster(t, st)
		svc := &service.UserAdminService{Store: st}

		users, total, err := svc.List(ctx, store.ListUsersFilter{Search: "santoso"})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, "budi@example.com", users[0].Email)

		_, total, err = svc.List(ctx, store.ListUsersFilter{Search: "example.com"})
		require.NoError(t, err)
		require.Equal(t, 4, total)
	})

	t.Run("sorts by whitelisted columns", func(t *testing.T) {
		st := newTestStore(t)
		seedRoster(t, st)
		svc := &service.UserAdminService{Store: st}

		users, _, err := svc.List(ctx, store.ListUsersFilter{SortBy: "name", SortDir: "asc"})
		require.NoError(t, err)
		require.Equal(t, "Admin Utama", users[0].Name)

		users, _, err = svc.List(ctx, store.ListUsersFilter{SortBy: "name", SortDir: "desc"})
		require.NoError(t, err)
		require.Equal(t, "Siti Aminah", users[0].Name)

		// An unknown column falls back instead of erroring.
		_, _, err = svc.List(ctx, store.ListUsersFilter{SortBy: "password_hash"})
		require.NoError(t, err)
	})

	t.Run("paginates and normalises out-of-range values", func(t *testing.T) {
		st := newTestStore(t)
		seedRoster(t, st)
		svc := &service.UserAdminService{Store: st}

		users, total, err := svc.List(ctx, store.ListUsersFilter{
			SortBy: "name", SortDir: "asc", Page: 1, PerPage: 3,
		})
		require.NoError(t, err)
		require.Equal(t, 4, total)
		require.Len(t, users, 3)

		users, total, err = svc.List(ctx, store.ListUsersFilter{
			SortBy: "name", SortDir: "asc", Page: 2, PerPage: 3,
		})
		require.NoError(t, err)
		require.Equal(t, 4, total)
		require.Len(t, users, 1)

		// Page past the end is empty, not an error.
		users, total, err = svc.List(ctx, store.ListUsersFilter{Page: 99, PerPage: 3})
		require.NoError(t, err)
		require.Equal(t, 4, total)
		require.Empty(t, users)

		// Zero and negative paging values fall back to defaults.
		users, _, err = svc.List(ctx, store.ListUsersFilter{Page: -1, PerPage: -5})
		require.NoError(t, err)
		require.Len(t, users, 4)
	})
}

func TestUserAdminUpdate(t *testing.T) {
	ctx := context.Background()

	strptr := func(s string) *string { return &s }
	roleptr := func(r domain.Role) *domain.Role { return &r }

	t.Run("changes role and email", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		updated, err := svc.Update(ctx, user.ID, nil, strptr("budi.s@example.com"), roleptr(domain.RolePengajar))
		require.NoError(t, err)
		require.Equal(t, "budi.s@example.com", updated.Email)
		require.Equal(t, domain.RolePengajar, updated.Role)
		require.Equal(t, "Budi", updated.Name)
	})

	t.Run("rejects an invalid role", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		_, err := svc.Update(ctx, user.ID, nil, nil, roleptr(domain.Role("root")))
		require.ErrorIs(t, err, service.ErrInvalidRole)
	})

	t.Run("rejects another user's email", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}
		seedUser(t, st, "Siti", "siti@example.com", "rahasia-123", domain.RoleMurid)
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		_, err := svc.Update(ctx, user.ID, nil, strptr("siti@example.com"), nil)
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("unknown user yields not found", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}

		_, err := svc.Update(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", strptr("x"), nil, nil)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserAdminDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the user, their sessions and pending reset", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}
		auth := newAuthService(st)
		resets := newResetService(st, &captureNotifier{})
		seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		user, token, err := auth.Login(ctx, "budi@example.com", "rahasia-123", "test")
		require.NoError(t, err)
		require.NoError(t, resets.Request(ctx, "budi@example.com"))

		require.NoError(t, svc.Delete(ctx, user.ID))

		_, err = st.Users().GetUserByID(ctx, user.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = auth.Tokens.Resolve(ctx, token)
		require.ErrorIs(t, err, service.ErrUnauthenticated)

		_, err = st.PasswordResets().GetPasswordResetByEmail(ctx, "budi@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown user yields not found", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}

		err := svc.Delete(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserAdminResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the provided password", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}
		auth := newAuthService(st)
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		returned, err := svc.ResetPassword(ctx, user.ID, "rahasia-admin")
		require.NoError(t, err)
		require.Equal(t, "rahasia-admin", returned)

		_, _, err = auth.Login(ctx, "budi@example.com", "rahasia-admin", "test")
		require.NoError(t, err)
	})

	t.Run("generates a password when none is given", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.UserAdminService{Store: st}
		auth := newAuthService(st)
		user := seedUser(t, st, "Budi", "budi@example.com", "rahasia-123", domain.RoleMurid)

		generated, err := svc.ResetPassword(ctx, user.ID, "")
		require.NoError(t, err)
		require.NotEmpty(t, generated)

		_, _, err = auth.Login(ctx, "budi@example.com", generated, "test")
		require.NoError(t, err)
	})
}
