// Package svrlib provides common server routing utilities
package svrlib

import (
	"net/http"

	"github.com/jrschumacher/jwtinspect/internal/config"
	"github.com/jrschumacher/jwtinspect/internal/inspector"
)

// Router wraps HTTP routing functionality with configuration and the shared
// inspector.
type Router struct {
	Config    *config.Config
	Inspector *inspector.Inspector
	Mux       *http.ServeMux
	BaseRoute string
}

// NewRouter creates a new Router with the given mux, base route, configuration and inspector
func NewRouter(mux *http.ServeMux, baseRoute string, cfg *config.Config, insp *inspector.Inspector) *Router {
	return &Router{Config: cfg, Inspector: insp, Mux: mux, BaseRoute: baseRoute}
}
