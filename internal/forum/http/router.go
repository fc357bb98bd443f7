package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/forumroles/internal/forum/service"
	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"github.com/aussiebroadwan/forumroles/pkg/httpx"
	"github.com/aussiebroadwan/forumroles/pkg/jwtx"
	"github.com/aussiebroadwan/forumroles/pkg/slogx"

	_ "github.com/aussiebroadwan/forumroles/api/forum" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	SeederService *service.RoleSeeder
	RolesService  *service.RolesService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRoles()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Forum Roles API
//	@version		0.1.0
//	@description	Seeds, removes and inspects the discussion forum roles of a course.
//	@description
//	@description				Every /v1 endpoint takes an HS256 signed JWT carrying the forum:read or forum:admin scope.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/forumroles
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRoles() {
	h := &RolesHandler{
		Seeder: r.SeederService,
		Roles:  r.RolesService,
	}

	// Seeding writes up to four roles per call - moderate rate limit by user
	admin := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(jwtx.ScopeForumAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}
	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(jwtx.ScopeForumRead, jwtx.ScopeForumAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("PUT /v1/courses/{course_id}/forum/roles", admin(h.HandleSeed))
	r.Mux.Handle("DELETE /v1/courses/{course_id}/forum/roles", admin(h.HandleUnseed))
	r.Mux.Handle("GET /v1/courses/{course_id}/forum/roles", read(h.HandleList))
	r.Mux.Handle("GET /v1/courses/{course_id}/forum/roles/seeded", read(h.HandleSeeded))
	r.Mux.Handle("GET /v1/courses/{course_id}/forum/roles/{role}/permissions/{permission}", read(h.HandlePermission))
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
