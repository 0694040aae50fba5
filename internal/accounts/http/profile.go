package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

// ProfileHandler serves the caller's role-specific profile. The variant is
// always derived from the authenticated user's role.
type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet godoc
//
//	@Summary		Own Profile Endpoint
//	@Description	Return the role-specific profile of the caller. Murid get their student
//	@Description	profile, pengajar their instructor profile. Admins carry no profile.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope{data=MuridProfileView}
//	@Failure		401	{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		403	{object}	httpx.Envelope	"role carries no profile"
//	@Failure		404	{object}	httpx.Envelope	"profile not filled in yet"
//	@Security		BearerAuth
//	@Router			/v1/profile/me [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	profile, err := h.ProfileService.Show(ctx, user)
	if err != nil {
		writeProfileError(w, ctx, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "ok", newProfileView(profile))
}

// HandlePut godoc
//
//	@Summary		Own Profile Update Endpoint
//	@Description	Create or replace the caller's role-specific profile. Murid submit nim,
//	@Description	jurusan, angkatan and alamat; pengajar submit nip, bidang and alamat.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"role-specific profile fields"
//	@Success		200		{object}	httpx.Envelope{data=MuridProfileView}
//	@Failure		401		{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		403		{object}	httpx.Envelope	"role carries no profile"
//	@Failure		422		{object}	httpx.Envelope	"validation failure"
//	@Security		BearerAuth
//	@Router			/v1/profile/me [put].
func (h *ProfileHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	switch user.Role {
	case domain.RoleMurid:
		if err := req.validateMurid(); err != nil {
			writeValidationFailure(w, err)
			return
		}
		profile, err := h.ProfileService.UpsertMurid(ctx, user, domain.MuridProfile{
			NIM:      req.NIM,
			Jurusan:  req.Jurusan,
			Angkatan: req.Angkatan,
			Alamat:   req.Alamat,
		})
		if err != nil {
			log.Error("failed to update profile", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to update profile")
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, "profile updated", newProfileView(profile))

	case domain.RolePengajar:
		if err := req.validatePengajar(); err != nil {
			writeValidationFailure(w, err)
			return
		}
		profile, err := h.ProfileService.UpsertPengajar(ctx, user, domain.PengajarProfile{
			NIP:    req.NIP,
			Bidang: req.Bidang,
			Alamat: req.Alamat,
		})
		if err != nil {
			log.Error("failed to update profile", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to update profile")
			return
		}
		httpx.WriteSuccess(w, http.StatusOK, "profile updated", newProfileView(profile))

	default:
		httpx.WriteError(w, http.StatusForbidden, "role has no profile")
	}
}

// writeProfileError maps profile lookup failures onto the envelope.
func writeProfileError(w http.ResponseWriter, ctx context.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoProfileForRole):
		httpx.WriteError(w, http.StatusForbidden, "role has no profile")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "profile not filled in yet")
	default:
		slogx.FromContext(ctx).Error("failed to load profile", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load profile")
	}
}
