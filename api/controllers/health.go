package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/modos-studio/quotepilot-backend/api/responses"
	"github.com/modos-studio/quotepilot-backend/pkg/config"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
)

const readyProbeTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-QuotePilot-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness by pinging the hard dependencies.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, redis pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-QuotePilot-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyProbeTimeout)
		defer cancel()

		checks := map[string]string{}
		ok := true
		for name, dep := range map[string]pinger{"database": db, "redis": redis} {
			if dep == nil {
				checks[name] = "skipped"
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "down"
				ok = false
				if logg != nil {
					logg.Error(ctx, "readiness probe failed: "+name, err)
				}
				continue
			}
			checks[name] = "up"
		}

		if !ok {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependencies unavailable").WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
