package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/pkg/cryptox"
	"github.com/edukita/accounts/pkg/idx"
	"github.com/edukita/accounts/pkg/slogx"
)

// ErrInvalidRole reports a role value outside admin/pengajar/murid.
var ErrInvalidRole = errors.New("invalid role")

const (
	defaultPerPage = 15
	maxPerPage     = 100
)

// UserAdminService holds the admin-only account management operations. Role
// enforcement happens at the HTTP layer; these methods assume an admin caller.
type UserAdminService struct {
	Store store.Store
}

// NormalizeListFilter clamps paging values and falls back to safe defaults
// for unknown sort columns and directions.
func NormalizeListFilter(f store.ListUsersFilter) store.ListUsersFilter {
	switch f.SortBy {
	case "name", "email", "created_at":
	default:
		f.SortBy = "created_at"
	}
	switch f.SortDir {
	case "asc", "desc":
	default:
		f.SortDir = "asc"
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}
	return f
}

// List returns one page of users. Out-of-range paging values are normalised
// rather than rejected, and unknown sort columns fall back to created_at.
func (s *UserAdminService) List(
	ctx context.Context,
	f store.ListUsersFilter,
) ([]domain.User, int, error) {
	if f.Role != "" && !f.Role.Valid() {
		return nil, 0, ErrInvalidRole
	}

	return s.Store.Users().ListUsers(ctx, NormalizeListFilter(f))
}

// Create provisions a user with an explicit role, unlike public registration.
func (s *UserAdminService) Create(
	ctx context.Context,
	name, email, password string,
	role domain.Role,
) (domain.User, error) {
	if !role.Valid() {
		return domain.User{}, ErrInvalidRole
	}

	taken, err := s.Store.Users().EmailTaken(ctx, email, "")
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, ErrEmailTaken
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user created by admin",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// Get returns a single user by id.
func (s *UserAdminService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// Update applies a partial update to any user, including role changes.
func (s *UserAdminService) Update(
	ctx context.Context,
	id string,
	name, email *string,
	role *domain.Role,
) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if email != nil && *email != user.Email {
		taken, err := s.Store.Users().EmailTaken(ctx, *email, user.ID)
		if err != nil {
			return domain.User{}, err
		}
		if taken {
			return domain.User{}, ErrEmailTaken
		}
		user.Email = *email
	}
	if name != nil {
		user.Name = *name
	}
	if role != nil {
		if !role.Valid() {
			return domain.User{}, ErrInvalidRole
		}
		user.Role = *role
	}

	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// Delete removes a user. Session tokens and profiles cascade via the schema;
// any pending password reset for the address is removed in the same
// transaction so the row cannot outlive its account.
func (s *UserAdminService) Delete(ctx context.Context, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Users().DeleteUser(ctx, user.ID); err != nil {
			return err
		}
		return tx.PasswordResets().DeletePasswordReset(ctx, user.Email)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user deleted by admin", slog.String("user_id", id))
	return nil
}

// ResetPassword force-sets a user's password. An empty password asks the
// service to generate one; the plaintext is returned exactly once either way.
func (s *UserAdminService) ResetPassword(
	ctx context.Context,
	id, password string,
) (string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return "", err
	}

	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return "", err
		}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Info("password reset by admin", slog.String("user_id", user.ID))
	return password, nil
}
