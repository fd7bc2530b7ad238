package http

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/utils"
)

// withRecovery turns panics of downstream handlers into responses. In
// development chi's Recoverer prints the stack trace; otherwise the client
// gets 500 with an empty JSON body, unless the response was already started.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	if h.development {
		return middleware.Recoverer(next)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Bool("headers_sent", rw.wroteHeader).
				Msg("unhandled panic")
			if rw.wroteHeader {
				return
			}
			utils.WriteEmptyJSON(rw, http.StatusInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
