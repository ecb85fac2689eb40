package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/arsipkita/arsip/internal/arsip/files"
	"github.com/arsipkita/arsip/internal/arsip/service"
	"github.com/arsipkita/arsip/internal/arsip/store"
	"github.com/arsipkita/arsip/pkg/httpx"
	"github.com/arsipkita/arsip/pkg/jwtx"
	"github.com/arsipkita/arsip/pkg/slogx"

	_ "github.com/arsipkita/arsip/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.SessionSigner
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookieSecure bool

	store store.Store
	files files.Store

	// UploadsDir enables static serving of /uploads/ when the disk
	// attachment driver is active. Empty means no static mount.
	UploadsDir string

	AuthService        *service.AuthService
	LetterService      *service.LetterService
	DispositionService *service.DispositionService
	StatsService       *service.StatsService
	UserService        *service.UserService
	ReportService      *service.ReportService
}

func NewRouter(
	signer *jwtx.SessionSigner,
	buildVersion string,
	cookieSecure bool,
	st store.Store,
	fs files.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		cookieSecure: cookieSecure,
		startTime:    time.Now(),
		store:        st,
		files:        fs,
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
	r.registerLetters()
	r.registerDispositions()
	r.registerStats()
	r.registerUsers()
	r.registerReports()
	r.registerUploads()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Arsip Surat API
//	@version		0.1.0
//	@description	Letter archiving service: incoming/outgoing letters, disposition routing, sequential numbering and archive statistics.
//	@description
//	@description				Authentication uses an HttpOnly session cookie set by the login endpoint.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						arsip_session
//	@description				Signed session token issued by POST /api/auth/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers a route with per-route metrics plus the given middlewares.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	chain := append([]httpx.Middleware{Metrics(pattern)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, chain...))
}

// authn verifies the session cookie before the request reaches the handler.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.signer)
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit by IP (authentication attempts)
	r.handle("POST /api/auth/login",
		&LoginHandler{AuthService: r.AuthService, CookieSecure: r.cookieSecure},
		httpx.RateLimitByIP(httpx.StrictLimit),
	)

	r.handle("POST /api/auth/logout",
		&LogoutHandler{CookieSecure: r.cookieSecure},
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)

	r.handle("GET /api/auth/me",
		&MeHandler{},
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) registerLetters() {
	h := &LettersHandler{LetterService: r.LetterService}

	r.handle("GET /api/letters",
		http.HandlerFunc(h.HandleList),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.handle("POST /api/letters",
		http.HandlerFunc(h.HandleCreate),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// Registered alongside /api/letters/{id}; the mux prefers the literal segment.
	r.handle("GET /api/letters/next-number",
		http.HandlerFunc(h.HandleNextNumber),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.handle("GET /api/letters/{id}",
		http.HandlerFunc(h.HandleGet),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.handle("PATCH /api/letters/{id}/status",
		http.HandlerFunc(h.HandleUpdateStatus),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.handle("DELETE /api/letters/{id}",
		http.HandlerFunc(h.HandleDelete),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.handle("GET /api/letters/{id}/file",
		&LetterFileHandler{LetterService: r.LetterService, Files: r.files},
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) registerDispositions() {
	h := &DispositionsHandler{DispositionService: r.DispositionService}

	r.handle("POST /api/letters/{id}/dispositions",
		http.HandlerFunc(h.HandleCreate),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.handle("POST /api/dispositions",
		http.HandlerFunc(h.HandleRoute),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.handle("GET /api/letters/{id}/dispositions",
		http.HandlerFunc(h.HandleList),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) registerStats() {
	r.handle("GET /api/stats",
		&StatsHandler{StatsService: r.StatsService},
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// The directory is readable by any authenticated user; it feeds the
	// disposition recipient picker. Mutations are admin only.
	r.handle("GET /api/users",
		http.HandlerFunc(h.HandleList),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.handle("POST /api/users",
		http.HandlerFunc(h.HandleCreate),
		r.authn(),
		httpx.RequireRole("ADMIN"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.handle("DELETE /api/users/{id}",
		http.HandlerFunc(h.HandleDelete),
		r.authn(),
		httpx.RequireRole("ADMIN"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerReports() {
	r.handle("GET /api/reports/letters.csv",
		&ReportsHandler{ReportService: r.ReportService},
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerUploads() {
	if r.UploadsDir == "" {
		return
	}

	// Direct attachment links recorded on letters, e.g. /uploads/file-x.pdf.
	fileServer := http.StripPrefix(files.RefPrefix, http.FileServer(http.Dir(r.UploadsDir)))
	r.handle("GET /uploads/",
		fileServer,
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.handle("GET /livez",
		LivezHandler(r.startTime, r.buildVersion),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	r.handle("GET /readyz",
		ReadyzHandler(r.startTime, r.buildVersion, r.store),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /metrics", MetricsHandler())
}
