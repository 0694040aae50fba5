package http

import (
	"errors"
	"net/http"

	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

type ChangePasswordHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Change Password Endpoint
//	@Description	Replace the caller's password. The current password must be supplied and
//	@Description	verified first; on mismatch nothing changes.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChangePasswordRequest	true	"old_password, new_password"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		401		{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		422		{object}	httpx.Envelope	"validation failure or old password mismatch"
//	@Security		BearerAuth
//	@Router			/v1/auth/change-password [put].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, err)
		return
	}

	err := h.AuthService.ChangePassword(ctx, user.ID, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOldPassword) {
			httpx.WriteValidationError(w, "validation failed", map[string]string{
				"old_password": "old password does not match",
			})
			return
		}
		log.Error("failed to change password", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to change password")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "password changed", nil)
}
