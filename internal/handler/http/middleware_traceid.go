package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// headerTraceID carries the request correlation id, both inbound (a client
// may supply its own) and echoed back on the response.
const headerTraceID = "X-Trace-ID"

// withTraceID tags every request with a correlation id and binds a
// request-scoped logger carrying it to the context, so every log line of
// one request can be grepped together.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerTraceID)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		child := h.logger.GetChildLogger()
		child.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(headerTraceID, traceID)
		next.ServeHTTP(w, r.WithContext(child.WithContext(r.Context())))
	})
}
