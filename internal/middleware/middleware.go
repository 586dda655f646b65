package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/jrschumacher/jwtinspect/components"
	"github.com/jrschumacher/jwtinspect/internal/httputil"
	"github.com/jrschumacher/jwtinspect/internal/logger"
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Flush lets streamed responses (SSE) pass through the recorder.
func (sr *statusRecorder) Flush() {
	if f, ok := sr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// RequestLogger logs one line per request. Token values are never logged.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("HTTP request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// Recover turns a panic into a 500 response.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("Recovered from panic", "panic", v, "path", r.URL.Path, "stack", string(debug.Stack()))
				httputil.WriteError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// LayoutMiddleware returns a middleware that wraps the handler's HTML output in components.Page
func LayoutMiddleware(appEnv string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := httptest.NewRecorder()
			next.ServeHTTP(rw, r)

			content := templ.ComponentFunc(func(_ context.Context, wtr io.Writer) error {
				_, err := wtr.Write(rw.Body.Bytes())
				return err
			})

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(rw.Code)
			if err := components.Page(appEnv, content).Render(r.Context(), w); err != nil {
				logger.Error("Failed to render page", "error", err)
			}
		})
	}
}
