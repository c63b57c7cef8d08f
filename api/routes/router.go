package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/modos-studio/quotepilot-backend/api/controllers"
	assistantcontrollers "github.com/modos-studio/quotepilot-backend/api/controllers/assistant"
	quotecontrollers "github.com/modos-studio/quotepilot-backend/api/controllers/quotes"
	settingscontrollers "github.com/modos-studio/quotepilot-backend/api/controllers/settings"
	sharecontrollers "github.com/modos-studio/quotepilot-backend/api/controllers/share"
	"github.com/modos-studio/quotepilot-backend/api/middleware"
	assistantsvc "github.com/modos-studio/quotepilot-backend/internal/assistant"
	"github.com/modos-studio/quotepilot-backend/internal/auth"
	exportsvc "github.com/modos-studio/quotepilot-backend/internal/export"
	"github.com/modos-studio/quotepilot-backend/internal/history"
	"github.com/modos-studio/quotepilot-backend/internal/keys"
	"github.com/modos-studio/quotepilot-backend/pkg/auth/session"
	"github.com/modos-studio/quotepilot-backend/pkg/config"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// redisStore is the slice of the redis client the router hands to health
// checks and rate limiting.
type redisStore interface {
	pinger
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP pinger,
	redisClient redisStore,
	sessionChecker session.AccessSessionChecker,
	authService auth.Service,
	registerService auth.RegisterService,
	historyService *history.Service,
	keysService *keys.Service,
	assistantService *assistantsvc.Service,
	exportService *exportsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.Share),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/quote/{token}", sharecontrollers.Resolve(historyService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(registerService, logg))
		r.Post("/logout", controllers.AuthLogout(authService, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/template", quotecontrollers.Template(historyService, logg))
			r.Post("/recalculate", quotecontrollers.Recalculate(logg))
			r.Post("/mutate", quotecontrollers.Mutate(logg))
			r.Post("/assistant", assistantcontrollers.Chat(assistantService, historyService, logg))
			r.Post("/export", quotecontrollers.Export(exportService, historyService, logg))
			r.Post("/share", sharecontrollers.Create(historyService, logg))
			r.Route("/history", func(r chi.Router) {
				r.Get("/", quotecontrollers.HistoryList(historyService, logg))
				r.Get("/{revisionId}", quotecontrollers.HistoryDetail(historyService, logg))
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Put("/api-key", settingscontrollers.APIKeySet(keysService, logg))
			r.Get("/api-key", settingscontrollers.APIKeyStatus(keysService, logg))
			r.Delete("/api-key", settingscontrollers.APIKeyDelete(keysService, logg))
		})
	})

	return r
}
