// Package app provides the inspector's HTTP handlers
package app

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jrschumacher/jwtinspect/components"
	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/httputil"
	"github.com/jrschumacher/jwtinspect/internal/inspector"
	"github.com/jrschumacher/jwtinspect/internal/logger"
	"github.com/jrschumacher/jwtinspect/internal/middleware"
	"github.com/jrschumacher/jwtinspect/internal/render"
	"github.com/jrschumacher/jwtinspect/internal/svrlib"
	"github.com/jrschumacher/jwtinspect/internal/validation"
)

// maxBodyBytes bounds request bodies; tokens are far smaller.
const maxBodyBytes = 1 << 20

// Router handles application-specific HTTP routes
type Router struct {
	*svrlib.Router
}

// RegisterRoutes registers all application routes and returns a Router
func RegisterRoutes(mux *http.ServeMux, cfg *config.Config, insp *inspector.Inspector) *Router {
	router := &Router{
		Router: svrlib.NewRouter(mux, "/", cfg, insp),
	}

	pages := middleware.PageGroup(mux, cfg.AppEnv)
	pages.HandleFunc("GET /{$}", router.InspectPageHandler)
	pages.HandleFunc("POST /{$}", router.InspectPageHandler)

	api := middleware.APIGroup(mux)
	api.HandleFunc("POST /api/inspect", router.InspectStreamHandler)
	api.HandleFunc("GET /api/decode", router.DecodeAPIHandler)
	api.HandleFunc("POST /api/decode", router.DecodeAPIHandler)

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(components.StaticAssets())))

	return router
}

// tokenRequest is the body accepted by the API and the datastar signals sent
// by the page.
type tokenRequest struct {
	Token string `json:"token"`
}

// readToken reads the token from a JSON body, a form or the query string.
func readToken(w http.ResponseWriter, req *http.Request) (string, error) {
	if req.Method == http.MethodGet {
		return req.URL.Query().Get("token"), nil
	}

	if strings.Contains(req.Header.Get("Content-Type"), "application/json") {
		var body tokenRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes)).Decode(&body); err != nil {
			return "", err
		}
		return body.Token, nil
	}

	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := req.ParseForm(); err != nil {
		return "", err
	}
	return req.FormValue("token"), nil
}

// inspect runs the inspector and returns a message suitable for display when
// the token cannot be decoded.
func (r *Router) inspect(raw string) (*render.Model, string) {
	m, err := r.Inspector.Inspect(raw)
	if err != nil {
		logger.Debug("Token inspection failed", "error", err)
		return nil, err.Error()
	}
	return m, ""
}

// InspectPageHandler renders the inspector page. GET reads ?token= and POST
// reads the form so the page works without JavaScript.
func (r *Router) InspectPageHandler(w http.ResponseWriter, req *http.Request) {
	raw, err := readToken(w, req)
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	m, errMsg := r.inspect(raw)
	content := components.Inspector(raw, components.Inspection(m, errMsg))
	if err := content.Render(req.Context(), w); err != nil {
		logger.Error("Failed to render inspector", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// DecodeAPIHandler returns the inspection as JSON.
func (r *Router) DecodeAPIHandler(w http.ResponseWriter, req *http.Request) {
	raw, err := readToken(w, req)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	v := validation.TokenValidation{Token: raw, MaxLength: r.Config.MaxTokenLength}
	if err := v.Validate(); err != nil {
		if validationErrors, ok := err.(validation.Errors); ok {
			httputil.WriteValidationError(w, validationErrors)
		} else {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	m, err := r.Inspector.Inspect(raw)
	if err != nil {
		httputil.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	httputil.WriteSuccess(w, m)
}
