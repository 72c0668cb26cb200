package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
	"github.com/aussiebroadwan/recipebook/pkg/httpx"
	"github.com/aussiebroadwan/recipebook/pkg/recipesdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the recipe store
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	recipesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	recipesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &recipesdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := recipesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
