package controllers

import (
	"net/http"

	"github.com/dvillegas/postres-backend/api/responses"
	"github.com/dvillegas/postres-backend/pkg/config"
	"github.com/dvillegas/postres-backend/pkg/db"
	pkgerrors "github.com/dvillegas/postres-backend/pkg/errors"
	"github.com/dvillegas/postres-backend/pkg/logger"
	"github.com/dvillegas/postres-backend/pkg/redis"
)

// HealthLive reports that the process is up.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Postres-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady pings Postgres and Redis before reporting ready.
func HealthReady(cfg *config.Config, dbc db.Pinger, rds redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Postres-Env", cfg.App.Env)

		if dbc != nil {
			if err := dbc.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if rds != nil {
			if err := rds.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
