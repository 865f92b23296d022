package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/vinbees/hive-sdk/pkg/configuration"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestID returns the request id assigned by the logging middleware, or ""
// when the request never passed through it.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// WithLogger tags each request with an id, logs it on completion, and recovers
// panics into a 500 rather than tearing down the server.
func WithLogger(logger *logrus.Logger) mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(conf.RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			ctx := context.WithValue(r.Context(), requestIDKey, requestID)

			sw := &statusWriter{ResponseWriter: w}
			start := time.Now()

			defer func() {
				if rec := recover(); rec != nil {
					logger.WithFields(logrus.Fields{
						"request_id": requestID,
						"path":       r.URL.Path,
						"panic":      rec,
					}).Error("request panicked")
					if !sw.written {
						http.Error(sw, "internal server error", http.StatusInternalServerError)
					}
					return
				}
				logger.WithFields(logrus.Fields{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     sw.Status(),
					"duration":   time.Since(start).String(),
				}).Info("request completed")
			}()

			next.ServeHTTP(sw, r.WithContext(ctx))
		})
	}
}
