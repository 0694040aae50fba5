package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"
)

// UsersHandler serves the admin collection endpoints: list and create.
type UsersHandler struct {
	UserAdminService *service.UserAdminService
}

// HandleList godoc
//
//	@Summary		List Users Endpoint
//	@Description	List accounts with optional role filter, substring search over name and
//	@Description	email, whitelisted sorting and pagination.
//	@Tags			Users
//	@Produce		json
//	@Param			role		query		string	false	"admin | pengajar | murid"
//	@Param			q			query		string	false	"substring matched against name and email"
//	@Param			sort_by		query		string	false	"name | email | created_at"
//	@Param			sort_dir	query		string	false	"asc | desc"
//	@Param			page		query		int		false	"1-based page number"
//	@Param			per_page	query		int		false	"page size, capped at 100"
//	@Success		200			{object}	httpx.Envelope{data=PageView}
//	@Failure		401			{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		403			{object}	httpx.Envelope	"caller is not an admin"
//	@Failure		422			{object}	httpx.Envelope	"unknown role filter"
//	@Security		BearerAuth
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))

	filter := store.ListUsersFilter{
		Role:    domain.Role(query.Get("role")),
		Search:  query.Get("q"),
		SortBy:  query.Get("sort_by"),
		SortDir: query.Get("sort_dir"),
		Page:    page,
		PerPage: perPage,
	}

	filter = service.NormalizeListFilter(filter)

	users, total, err := h.UserAdminService.List(ctx, filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			httpx.WriteValidationError(w, "validation failed", map[string]string{
				"role": "role must be admin, pengajar or murid",
			})
			return
		}
		log.Error("failed to list users", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "ok", PageView{
		Users:   newUserViews(users),
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	})
}

// HandleCreate godoc
//
//	@Summary		Create User Endpoint
//	@Description	Create an account with an explicit role. This is the only way to mint
//	@Description	admin and pengajar accounts.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"name, email, password, role"
//	@Success		201		{object}	httpx.Envelope{data=UserView}
//	@Failure		401		{object}	httpx.Envelope	"missing or invalid token"
//	@Failure		403		{object}	httpx.Envelope	"caller is not an admin"
//	@Failure		422		{object}	httpx.Envelope	"validation failure or taken email"
//	@Security		BearerAuth
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationFailure(w, err)
		return
	}

	user, err := h.UserAdminService.Create(ctx, req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeEmailTaken(w)
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteValidationError(w, "validation failed", map[string]string{
				"role": "role must be admin, pengajar or murid",
			})
		default:
			log.Error("failed to create user", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "user created", newUserView(user))
}
