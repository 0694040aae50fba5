package http

import (
	"net/http"

	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

type LogoutHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Revoke the presented bearer token. Other sessions of the same user stay valid.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope
//	@Failure		401	{object}	httpx.Envelope	"missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.TokenService.Revoke(ctx, BearerToken(r)); err != nil {
		slogx.FromContext(ctx).Error("failed to revoke token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "logged out", nil)
}
