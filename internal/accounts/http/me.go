package http

import (
	"errors"
	"net/http"

	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

// MeHandler serves the caller's own account: read and partial update.
type MeHandler struct {
	AuthService *service.AuthService
}

// HandleGet godoc
//
//	@Summary		Current Identity Endpoint
//	@Description	Return the account behind the presented bearer token.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.Envelope{data=UserView}
//	@Failure		401	{object}	httpx.Envelope	"missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "ok", newUserView(user))
}

// HandlePut godoc
//
//	@Summary		Self Update Endpoint
//	@Description	Partially update the caller's own name and email. Omitted fields are left as-is.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateMeRequest	true	"optional name, optional email"
//	@Success		200		{object}	httpx.Envelope{data=UserView}
//	@Failure		401		{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		422		{object}	httpx.Envelope	"validation failure or taken email"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [put].
func (h *MeHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req UpdateMeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, err)
		return
	}

	updated, err := h.AuthService.UpdateSelf(ctx, user.ID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeEmailTaken(w)
			return
		}
		log.Error("failed to update account", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to update account")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "account updated", newUserView(updated))
}
