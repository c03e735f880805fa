package http

import (
	"net/http"

	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/utils"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	greeting := h.services.AppInfoService.GetGreeting(r.Context())

	if _, err := utils.WriteJSON(w, greeting, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing root response")
	}
}
