package http

import (
	"errors"
	"net/http"

	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

// resetRequestedMessage is returned for every forgot-password call so the
// endpoint cannot reveal whether an address has an account.
const resetRequestedMessage = "if the email is registered, a reset link has been sent"

type ForgotPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Issue a single-use reset token and email it to the account holder. The response
//	@Description	is identical for known and unknown addresses.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ForgotPasswordRequest	true	"email"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		422		{object}	httpx.Envelope	"validation failure"
//	@Failure		500		{object}	httpx.Envelope	"mail delivery failure"
//	@Router			/v1/auth/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, err)
		return
	}

	if err := h.ResetService.Request(ctx, req.Email); err != nil {
		if errors.Is(err, service.ErrNotifierFailure) {
			log.Error("failed to deliver reset mail", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to send reset email")
			return
		}
		log.Error("failed to issue reset token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to process request")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, resetRequestedMessage, nil)
}

type ResetPasswordHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Redeem an emailed reset token for a new password. Tokens are single-use and
//	@Description	expire 60 minutes after issuance.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ResetPasswordRequest	true	"email, token, password"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope	"invalid or expired token"
//	@Failure		422		{object}	httpx.Envelope	"validation failure"
//	@Router			/v1/auth/reset-password [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, err)
		return
	}

	err := h.ResetService.Redeem(ctx, req.Email, req.Token, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrExpiredToken) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid or expired reset token")
			return
		}
		log.Error("failed to redeem reset token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to reset password")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "password reset", nil)
}
