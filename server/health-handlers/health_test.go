package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrschumacher/jwtinspect/internal/config"
)

func TestHealthz(t *testing.T) {
	mux := http.NewServeMux()
	RegisterRoutes(mux, "", &config.Config{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "ok\n" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
