package http

import (
	"net/http"

	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/utils"
)

// health answers the liveness probe. It never consults a downstream
// dependency.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Liveness(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
