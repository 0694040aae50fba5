package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/pkg/httpx"
)

// AuthnMiddleware resolves the bearer token to a user and stores it in the
// request context. Requests without a resolvable token get a 401 before any
// handler or role check runs.
func AuthnMiddleware(tokens *service.TokenService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := tokens.Resolve(r.Context(), BearerToken(r))
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			ctx := context.WithValue(r.Context(), httpx.CtxKeyUser, user)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated callers whose role is not in the allow
// list. Must sit inside AuthnMiddleware in the chain.
func RequireRole(roles ...domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			httpx.WriteError(w, http.StatusForbidden, "forbidden")
		})
	}
}

// UserFromContext returns the identity stored by AuthnMiddleware.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(httpx.CtxKeyUser).(domain.User)
	return user, ok
}

// BearerToken extracts the token from the Authorization header. Returns an
// empty string when the header is absent or not a bearer scheme.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
