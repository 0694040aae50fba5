package http

import (
	"errors"
	"net/http"

	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify credentials and issue an opaque bearer token. The token is returned
//	@Description	exactly once; only its fingerprint is stored server-side.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"email, password, optional device label"
//	@Success		200		{object}	httpx.Envelope{data=LoginView}
//	@Failure		401		{object}	httpx.Envelope	"invalid credentials"
//	@Failure		422		{object}	httpx.Envelope	"validation failure"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, err)
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password, req.Device)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Error("failed to log in user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "logged in", LoginView{
		User:  newUserView(user),
		Token: token,
	})
}
