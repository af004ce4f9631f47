package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
)

// RequestLogger logs one line per completed request through the shared
// tagged logger instead of chi's stdlib logger.
func RequestLogger(next http.Handler) http.Handler {
	log := logging.New("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Infof("%s %s %d %dB %s (%s)",
			r.Method, r.URL.RequestURI(), ww.Status(), ww.BytesWritten(),
			time.Since(start), r.RemoteAddr)
	})
}
