// Package home serves the landing page, health probe and not-found page.
package home

import (
	"net/http"
	"strings"

	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
)

// Module provides the root routes.
type Module struct {
	id     string
	prefix string
}

// New returns the home module mounted at the site root.
func New() Module {
	return Module{id: "home", prefix: routepath.Root}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	id := strings.TrimSpace(m.id)
	if id == "" {
		return "home"
	}
	return id
}

// Mount wires the root routes.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.Root
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc("GET "+routepath.Health, h.handleHealth)
	mux.HandleFunc("GET /{$}", h.handleLanding)
	mux.HandleFunc("/{$}", h.handleRootMethodNotAllowed)
	mux.HandleFunc("/", h.handleNotFound)
}
