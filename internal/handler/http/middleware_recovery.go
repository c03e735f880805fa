package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/ssl-monitor/internal/app"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/utils"
	"github.com/MKhiriev/ssl-monitor/models"
)

// withRecovery turns a handler panic into a JSON 500 and logs it with the
// stack. It must sit inside withTraceID so the log entry carries the trace
// ID. [http.ErrAbortHandler] is re-raised so net/http can abort the
// connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Str("stack", string(debug.Stack())).
				Msg("handler panicked")

			body := models.ErrorResponse{Error: app.MsgInternalServerError}
			if _, err := utils.WriteJSON(w, body, http.StatusInternalServerError); err != nil {
				logger.FromRequest(r).Err(err).Msg("error writing internal server error response")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
