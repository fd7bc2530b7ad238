package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/probe"
	"github.com/MKhiriev/vote-monitor/internal/utils"
)

const readinessTimeout = 5 * time.Second

// liveness godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200
//	@Router		/health/live [get]
func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.startTime).Seconds(),
	}, http.StatusOK)
}

// readinessProbe godoc
//
//	@Summary	Readiness probe: database and cache
//	@Tags		health
//	@Produce	json
//	@Success	200
//	@Failure	503
//	@Router		/health/ready [get]
func (h *Handler) readinessProbe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := probe.Run(ctx, h.readiness); err != nil {
		var checkErr *probe.CheckError
		errors.As(err, &checkErr)

		logger.FromRequest(r).Warn().Err(err).Msg("readiness check failed")
		utils.WriteJSON(w, map[string]any{
			"status":       "unhealthy",
			"failed_check": checkErr.Name,
			"error":        checkErr.Err.Error(),
		}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ready"}, http.StatusOK)
}
