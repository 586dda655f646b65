// Package middleware provides HTTP middleware and route grouping
package middleware

import (
	"net/http"
)

// Chain represents a middleware chain that can be applied to handlers
type Chain struct {
	middlewares []func(http.Handler) http.Handler
}

// NewChain creates a new middleware chain
func NewChain(middlewares ...func(http.Handler) http.Handler) *Chain {
	return &Chain{
		middlewares: append([]func(http.Handler) http.Handler(nil), middlewares...),
	}
}

// Then applies the chain to handler; the first middleware runs outermost.
func (c *Chain) Then(handler http.Handler) http.Handler {
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		handler = c.middlewares[i](handler)
	}
	return handler
}

// Append returns a new chain with middlewares added at the end
func (c *Chain) Append(middlewares ...func(http.Handler) http.Handler) *Chain {
	out := make([]func(http.Handler) http.Handler, 0, len(c.middlewares)+len(middlewares))
	out = append(out, c.middlewares...)
	return &Chain{middlewares: append(out, middlewares...)}
}
