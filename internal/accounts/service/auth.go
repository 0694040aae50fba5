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

var (
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials is deliberately generic: it never distinguishes
	// an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidOldPassword = errors.New("old password does not match")
)

// AuthService orchestrates the self-service account operations: registration,
// login, profile self-update and password change.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register creates a new account. The role is always murid; public
// registration never accepts a role from the caller.
func (s *AuthService) Register(
	ctx context.Context,
	name, email, password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

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
		Role:         domain.RoleMurid,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// The UNIQUE index serialises concurrent registrations; the loser
		// lands here.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))

	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// Login verifies credentials and issues a fresh session token. The plaintext
// token is part of the return value and is never retrievable again.
func (s *AuthService) Login(
	ctx context.Context,
	email, password, label string,
) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		log.Info("login failed", slog.String("user_id", user.ID))
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(ctx, user.ID, label)
	if err != nil {
		return domain.User{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}

// UpdateSelf applies a partial update to the caller's own account. Nil fields
// are left untouched; a supplied email must be unique among other users.
func (s *AuthService) UpdateSelf(
	ctx context.Context,
	userID string,
	name, email *string,
) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
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

	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// ChangePassword replaces the caller's password after verifying the current
// one. On a failed verification the stored hash is untouched.
func (s *AuthService) ChangePassword(
	ctx context.Context,
	userID, oldPassword, newPassword string,
) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if cryptox.VerifyPassword(oldPassword, user.PasswordHash) != nil {
		return ErrInvalidOldPassword
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", user.ID))
	return nil
}
