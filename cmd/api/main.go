package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/modos-studio/quotepilot-backend/api/routes"
	"github.com/modos-studio/quotepilot-backend/internal/assistant"
	"github.com/modos-studio/quotepilot-backend/internal/auth"
	"github.com/modos-studio/quotepilot-backend/internal/export"
	"github.com/modos-studio/quotepilot-backend/internal/history"
	"github.com/modos-studio/quotepilot-backend/internal/keys"
	"github.com/modos-studio/quotepilot-backend/internal/users"
	"github.com/modos-studio/quotepilot-backend/pkg/auth/session"
	"github.com/modos-studio/quotepilot-backend/pkg/config"
	"github.com/modos-studio/quotepilot-backend/pkg/db"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
	"github.com/modos-studio/quotepilot-backend/pkg/metrics"
	"github.com/modos-studio/quotepilot-backend/pkg/migrate"
	"github.com/modos-studio/quotepilot-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		TxRunner:       dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	historyService, err := history.NewService(history.ServiceParams{
		Repo:        history.NewRepository(dbClient.DB()),
		Logger:      logg,
		ViewCounter: redisClient,
		ShareConfig: cfg.Share,
		QuoteConfig: cfg.Quote,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create history service", err)
		os.Exit(1)
	}

	keysService, err := keys.NewService(keys.ServiceParams{
		Repo: keys.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create keys service", err)
		os.Exit(1)
	}

	assistantService, err := assistant.NewService(assistant.ServiceParams{
		Client:     assistant.NewClient(cfg.Gemini),
		Keys:       keysService,
		Limiter:    redisClient,
		Logger:     logg,
		Metrics:    metrics.NewAssistantMetrics(prometheus.DefaultRegisterer),
		GeminiCfg:  cfg.Gemini,
		RateConfig: cfg.AssistantRate,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create assistant service", err)
		os.Exit(1)
	}

	exportService, err := export.NewService(export.ServiceParams{
		Logger:  logg,
		Metrics: metrics.NewExportMetrics(prometheus.DefaultRegisterer),
		Config:  cfg.Export,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create export service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			sessionManager,
			authService,
			registerService,
			historyService,
			keysService,
			assistantService,
			exportService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
