package http

import (
	"errors"
	"net/http"

	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new account. Public registration always produces a murid account;
//	@Description	roles are assigned by administrators only.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"name, email, password"
//	@Success		201		{object}	httpx.Envelope{data=UserView}
//	@Failure		400		{object}	httpx.Envelope	"malformed body"
//	@Failure		422		{object}	httpx.Envelope	"validation failure or taken email"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, err)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeEmailTaken(w)
			return
		}
		log.Error("failed to register user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to register")
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "registered", newUserView(user))
}
