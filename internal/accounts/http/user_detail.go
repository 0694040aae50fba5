package http

import (
	"errors"
	"net/http"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

// UserDetailHandler serves the per-user admin endpoints.
type UserDetailHandler struct {
	UserAdminService *service.UserAdminService
	ProfileService   *service.ProfileService
}

// HandleGet godoc
//
//	@Summary		Show User Endpoint
//	@Description	Return a single account by id. Available to any authenticated caller.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"user id"
//	@Success		200	{object}	httpx.Envelope{data=UserView}
//	@Failure		401	{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		404	{object}	httpx.Envelope	"unknown user"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [get].
func (h *UserDetailHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserAdminService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to load user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "ok", newUserView(user))
}

// HandlePut godoc
//
//	@Summary		Update User Endpoint
//	@Description	Partially update any account, including its role. Omitted fields stay as-is.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"user id"
//	@Param			request	body		UpdateUserRequest	true	"optional name, email, role"
//	@Success		200		{object}	httpx.Envelope{data=UserView}
//	@Failure		401		{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		403		{object}	httpx.Envelope	"caller is not an admin"
//	@Failure		404		{object}	httpx.Envelope	"unknown user"
//	@Failure		422		{object}	httpx.Envelope	"validation failure or taken email"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [put].
func (h *UserDetailHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, err)
		return
	}

	var role *domain.Role
	if req.Role != nil {
		v := domain.Role(*req.Role)
		role = &v
	}

	updated, err := h.UserAdminService.Update(ctx, r.PathValue("id"), req.Name, req.Email, role)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrEmailTaken):
			writeEmailTaken(w)
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteValidationError(w, "validation failed", map[string]string{
				"role": "role must be admin, pengajar or murid",
			})
		default:
			log.Error("failed to update user", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to update user")
		}
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "user updated", newUserView(updated))
}

// HandleDelete godoc
//
//	@Summary		Delete User Endpoint
//	@Description	Remove an account. All of its session tokens, its profile and any pending
//	@Description	password reset are removed with it.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"user id"
//	@Success		200	{object}	httpx.Envelope
//	@Failure		401	{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		403	{object}	httpx.Envelope	"caller is not an admin"
//	@Failure		404	{object}	httpx.Envelope	"unknown user"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [delete].
func (h *UserDetailHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UserAdminService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to delete user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "user deleted", nil)
}

// HandleResetPassword godoc
//
//	@Summary		Force Password Reset Endpoint
//	@Description	Set a user's password without knowing the old one. When no password is
//	@Description	supplied a random one is generated and returned exactly once.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"user id"
//	@Param			request	body		AdminResetPasswordRequest	false	"optional replacement password"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		403		{object}	httpx.Envelope	"caller is not an admin"
//	@Failure		404		{object}	httpx.Envelope	"unknown user"
//	@Failure		422		{object}	httpx.Envelope	"validation failure"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/reset-password [put].
func (h *UserDetailHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req AdminResetPasswordRequest
	if r.ContentLength > 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := req.Validate(); err != nil {
			writeValidationFailure(w, err)
			return
		}
	}

	password, err := h.UserAdminService.ResetPassword(ctx, r.PathValue("id"), req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Error("failed to reset password", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to reset password")
		return
	}

	// Echo the generated password only when the admin did not supply one.
	var data any
	if req.Password == "" {
		data = map[string]string{"password": password}
	}

	httpx.WriteSuccess(w, http.StatusOK, "password reset", data)
}

// HandleProfile godoc
//
//	@Summary		Inspect User Profile Endpoint
//	@Description	Return the role-specific profile of any user.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"user id"
//	@Success		200	{object}	httpx.Envelope{data=MuridProfileView}
//	@Failure		401	{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		403	{object}	httpx.Envelope	"caller is not an admin, or role carries no profile"
//	@Failure		404	{object}	httpx.Envelope	"unknown user or profile not filled in"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/profile [get].
func (h *UserDetailHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserAdminService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to load user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	profile, err := h.ProfileService.Show(ctx, user)
	if err != nil {
		writeProfileError(w, ctx, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "ok", newProfileView(profile))
}
