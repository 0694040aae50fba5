package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/edukita/accounts/internal/accounts/domain"
	"github.com/edukita/accounts/internal/accounts/service"
	"github.com/edukita/accounts/internal/accounts/store"
	"github.com/edukita/accounts/pkg/httpx"
	"github.com/edukita/accounts/pkg/slogx"

	_ "github.com/edukita/accounts/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                store.Store
	TokenService         *service.TokenService
	AuthService          *service.AuthService
	PasswordResetService *service.PasswordResetService
	UserAdminService     *service.UserAdminService
	ProfileService       *service.ProfileService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Edukita Accounts API
//	@version		0.1.0
//	@description	Role-based account and authentication service for the Edukita learning
//	@description	platform. Sessions use opaque bearer tokens; only token fingerprints are
//	@description	stored server-side.
//
//	@contact.name				Edukita Engineering
//	@contact.url				https://github.com/edukita/accounts
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Opaque session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	authn := AuthnMiddleware(r.TokenService)

	// POST /register - strict rate limit by IP (public account creation)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (credential guessing target)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET/PUT /me - lenient and moderate limits by user
	meHandler := &MeHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(http.HandlerFunc(meHandler.HandleGet),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/auth/me",
		httpx.Chain(http.HandlerFunc(meHandler.HandlePut),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// PUT /change-password - strict limit by user (old password guessing)
	changePasswordHandler := &ChangePasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("PUT /v1/auth/change-password",
		httpx.Chain(changePasswordHandler,
			authn,
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	// POST /logout - authenticated, moderate limit
	logoutHandler := &LogoutHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /forgot-password - strict limit by IP (mail-sending endpoint)
	forgotHandler := &ForgotPasswordHandler{ResetService: r.PasswordResetService}
	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(forgotHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /reset-password - strict limit by IP (token guessing target)
	resetHandler := &ResetPasswordHandler{ResetService: r.PasswordResetService}
	r.Mux.Handle("POST /v1/auth/reset-password",
		httpx.Chain(resetHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfile() {
	authn := AuthnMiddleware(r.TokenService)
	h := &ProfileHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /v1/profile/me",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/profile/me",
		httpx.Chain(http.HandlerFunc(h.HandlePut),
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	authn := AuthnMiddleware(r.TokenService)
	adminOnly := RequireRole(domain.RoleAdmin)

	usersHandler := &UsersHandler{UserAdminService: r.UserAdminService}
	detailHandler := &UserDetailHandler{
		UserAdminService: r.UserAdminService,
		ProfileService:   r.ProfileService,
	}

	// Collection endpoints - admin only
	r.Mux.Handle("GET /v1/users",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleList),
			authn,
			adminOnly,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleCreate),
			authn,
			adminOnly,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /users/{id} is open to any authenticated caller
	r.Mux.Handle("GET /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(detailHandler.HandleGet),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Mutations and profile inspection - admin only
	r.Mux.Handle("PUT /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(detailHandler.HandlePut),
			authn,
			adminOnly,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/users/{id}",
		httpx.Chain(http.HandlerFunc(detailHandler.HandleDelete),
			authn,
			adminOnly,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /v1/users/{id}/reset-password",
		httpx.Chain(http.HandlerFunc(detailHandler.HandleResetPassword),
			authn,
			adminOnly,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/users/{id}/profile",
		httpx.Chain(http.HandlerFunc(detailHandler.HandleProfile),
			authn,
			adminOnly,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
