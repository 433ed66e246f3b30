package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type calcIDKey struct{}

// accessLog writes one line per request. Handlers that run a calculation
// attach its id through the request's log context.
func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		var calcID string
		r = r.WithContext(withCalcIDSlot(r.Context(), &calcID))

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		ev := h.logger.Info()
		if status >= http.StatusInternalServerError {
			ev = h.logger.Error()
		}
		ev = ev.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context()))
		if calcID != "" {
			ev = ev.Str("calculation_id", calcID)
		}
		ev.Msg("http request")
	})
}

func withCalcIDSlot(ctx context.Context, slot *string) context.Context {
	return context.WithValue(ctx, calcIDKey{}, slot)
}

func setCalcID(ctx context.Context, id string) {
	if slot, ok := ctx.Value(calcIDKey{}).(*string); ok {
		*slot = id
	}
}
