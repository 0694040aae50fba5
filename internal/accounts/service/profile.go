package service

import (
	"context"
	"errors"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/store"
)

// ErrNoProfileForRole reports that the user's role carries no profile
// (admins) or that the wrong profile variant was submitted for the role.
var ErrNoProfileForRole = errors.New("role has no matching profile")

// ProfileService reads and writes the role-specific profile of a user. The
// variant is always chosen from the user's stored role, never from the caller.
type ProfileService struct {
	Store store.Store
}

// Show returns the profile for a user, dispatching on their role. A murid or
// pengajar who has not filled theirs in yet gets store.ErrNotFound; admins
// get ErrNoProfileForRole.
func (s *ProfileService) Show(ctx context.Context, user domain.User) (domain.Profile, error) {
	switch user.Role {
	case domain.RoleMurid:
		return s.Store.MuridProfiles().GetMuridProfile(ctx, user.ID)
	case domain.RolePengajar:
		return s.Store.PengajarProfiles().GetPengajarProfile(ctx, user.ID)
	default:
		return nil, ErrNoProfileForRole
	}
}

// UpsertMurid creates or replaces the student profile. The user must actually
// be a murid.
func (s *ProfileService) UpsertMurid(
	ctx context.Context,
	user domain.User,
	p domain.MuridProfile,
) (domain.MuridProfile, error) {
	if user.Role != domain.RoleMurid {
		return domain.MuridProfile{}, ErrNoProfileForRole
	}

	p.UserID = user.ID
	if err := s.Store.MuridProfiles().UpsertMuridProfile(ctx, p); err != nil {
		return domain.MuridProfile{}, err
	}
	return s.Store.MuridProfiles().GetMuridProfile(ctx, user.ID)
}

// UpsertPengajar creates or replaces the instructor profile. The user must
// actually be a pengajar.
func (s *ProfileService) UpsertPengajar(
	ctx context.Context,
	user domain.User,
	p domain.PengajarProfile,
) (domain.PengajarProfile, error) {
	if user.Role != domain.RolePengajar {
		return domain.PengajarProfile{}, ErrNoProfileForRole
	}

	p.UserID = user.ID
	if err := s.Store.PengajarProfiles().UpsertPengajarProfile(ctx, p); err != nil {
		return domain.PengajarProfile{}, err
	}
	return s.Store.PengajarProfiles().GetPengajarProfile(ctx, user.ID)
}
