package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/sales-reporting-api/pkg/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco de dados indisponível")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Banco de dados indisponível", err.Error())
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"status":   "ok",
			"database": "ok",
			"time":     time.Now().Format(time.RFC3339),
		})
	})
}
