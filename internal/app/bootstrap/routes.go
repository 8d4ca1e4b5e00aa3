// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	aboutfeature "github.com/meridian-compliance/meridian/internal/app/features/about"
	authapifeature "github.com/meridian-compliance/meridian/internal/app/features/authapi"
	authgooglefeature "github.com/meridian-compliance/meridian/internal/app/features/authgoogle"
	blogfeature "github.com/meridian-compliance/meridian/internal/app/features/blog"
	blogapifeature "github.com/meridian-compliance/meridian/internal/app/features/blogapi"
	contactfeature "github.com/meridian-compliance/meridian/internal/app/features/contact"
	contentapifeature "github.com/meridian-compliance/meridian/internal/app/features/contentapi"
	dashboardfeature "github.com/meridian-compliance/meridian/internal/app/features/dashboard"
	errorsfeature "github.com/meridian-compliance/meridian/internal/app/features/errors"
	healthfeature "github.com/meridian-compliance/meridian/internal/app/features/health"
	homefeature "github.com/meridian-compliance/meridian/internal/app/features/home"
	loginfeature "github.com/meridian-compliance/meridian/internal/app/features/login"
	logoutfeature "github.com/meridian-compliance/meridian/internal/app/features/logout"
	servicesfeature "github.com/meridian-compliance/meridian/internal/app/features/services"
	servicesapifeature "github.com/meridian-compliance/meridian/internal/app/features/servicesapi"
	settingsapifeature "github.com/meridian-compliance/meridian/internal/app/features/settingsapi"
	teamfeature "github.com/meridian-compliance/meridian/internal/app/features/team"
	appresources "github.com/meridian-compliance/meridian/internal/app/resources"
	userstore "github.com/meridian-compliance/meridian/internal/app/store/users"
	"github.com/meridian-compliance/meridian/internal/app/system/auth"
	"github.com/meridian-compliance/meridian/internal/app/system/viewdata"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Route groups:
//   - Web UI routes: session auth + CSRF + restrictive CORS
//   - /api routes: session auth for mutations, no CSRF, permissive CORS on
//     public read endpoints (apicors inside each API feature)
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on each request.
	// This ensures role changes and disabled accounts take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase, logger))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Initialize viewdata with storage and database so BaseVM can resolve
	// company settings, theme colors, and logo URLs.
	viewdata.Init(deps.FileStorage, deps.MongoDatabase)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Session middleware: loads SessionUser into context if logged in.
	// API routes without a session simply see an anonymous request.
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection middleware with path-based exemption for API routes.
	// Cookie name is "meridian_csrf" to avoid collisions with other services
	// on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("meridian_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	// Wrap CSRF middleware to skip /api routes: JSON clients authenticate
	// with the session cookie (SameSite=Lax) and never render the token.
	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if strings.HasPrefix(req.URL.Path, "/api/") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// ─────────────────────────────────────────────────────────────────────────────
	// JSON API Routes
	// ─────────────────────────────────────────────────────────────────────────────
	r.Route("/api", func(api chi.Router) {
		// Page SEO and page settings documents: /api/page-seo/{key}, /api/page-settings/{key}
		api.Mount("/", contentapifeature.Routes(contentapifeature.NewHandler(deps.MongoDatabase, logger)))

		api.Mount("/services", servicesapifeature.Routes(servicesapifeature.NewHandler(deps.MongoDatabase, logger)))
		api.Mount("/blog", blogapifeature.Routes(blogapifeature.NewHandler(deps.MongoDatabase, logger)))
		api.Mount("/auth", authapifeature.Routes(authapifeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)))

		settingsapiHandler := settingsapifeature.NewHandler(deps.MongoDatabase, deps.FileStorage, logger)
		api.Mount("/settings", settingsapifeature.Routes(settingsapiHandler))
		api.Mount("/theme-settings", settingsapifeature.ThemeRoutes(settingsapiHandler))
	})

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Static assets with pre-compressed file support (gzip/brotli)
	// /static/* serves files from disk (static directory)
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// Uploaded files (local storage only)
	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	// ─────────────────────────────────────────────────────────────────────────────
	// Public Site (server-rendered)
	// ─────────────────────────────────────────────────────────────────────────────
	r.Mount("/", homefeature.Routes(homefeature.NewHandler(deps.MongoDatabase, logger)))
	r.Mount("/about", aboutfeature.Routes(aboutfeature.NewHandler(deps.MongoDatabase, logger)))
	r.Mount("/our-team", teamfeature.Routes(teamfeature.NewHandler(deps.MongoDatabase, logger)))
	r.Mount("/services", servicesfeature.Routes(servicesfeature.NewHandler(deps.MongoDatabase, logger)))
	r.Mount("/blog", blogfeature.Routes(blogfeature.NewHandler(deps.MongoDatabase, logger)))
	r.Mount("/contact", contactfeature.Routes(contactfeature.NewHandler(deps.MongoDatabase, logger)))

	// ─────────────────────────────────────────────────────────────────────────────
	// Authentication
	// ─────────────────────────────────────────────────────────────────────────────
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""

	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	r.Mount("/logout", logoutfeature.Routes(logoutfeature.NewHandler(sessionMgr, logger)))

	// Google OAuth (only mount if configured)
	if googleEnabled {
		googleHandler := authgooglefeature.NewHandler(
			deps.MongoDatabase,
			sessionMgr,
			errLog,
			appCfg.GoogleClientID,
			appCfg.GoogleClientSecret,
			appCfg.BaseURL,
			logger,
		)
		r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
		logger.Info("Google OAuth enabled", zap.String("redirect_url", appCfg.BaseURL+"/auth/google/callback"))
	}

	// ─────────────────────────────────────────────────────────────────────────────
	// Dashboard (admin only)
	// ─────────────────────────────────────────────────────────────────────────────
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, deps.FileStorage, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// 404 catch-all for unmatched routes
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
