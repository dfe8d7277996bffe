// Package carousel streams per-viewer carousel state and accepts navigation.
package carousel

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rotaract-dypcoe/landing/internal/platform/timeouts"
	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/httpx"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/requestmeta"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
)

// Module provides the carousel stream and navigation routes.
type Module struct {
	id        string
	keepAlive time.Duration
}

// New returns the carousel module.
func New() Module {
	return Module{id: "carousel", keepAlive: timeouts.StreamKeepAlive}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	id := strings.TrimSpace(m.id)
	if id == "" {
		return "carousel"
	}
	return id
}

// Mount wires the carousel routes under /carousel/.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Registry == nil {
		return module.Mount{}, errors.New("carousel registry is required")
	}
	keepAlive := m.keepAlive
	if keepAlive <= 0 {
		keepAlive = timeouts.StreamKeepAlive
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps, keepAlive))
	return module.Mount{
		Prefix:  routepath.CarouselPrefix,
		Handler: requestmeta.RejectCrossOrigin(mux),
	}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc("GET "+routepath.CarouselStream, h.handleStream)
	mux.HandleFunc(routepath.CarouselStream, httpx.MethodNotAllowed("GET, HEAD"))
	mux.HandleFunc("POST "+routepath.CarouselNextPattern, h.handleNext)
	mux.HandleFunc("POST "+routepath.CarouselPrevPattern, h.handlePrev)
	mux.HandleFunc("POST "+routepath.CarouselJumpPattern, h.handleJump)
	mux.HandleFunc(routepath.CarouselNextPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.CarouselPrevPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.CarouselJumpPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.CarouselPrefix, h.handleNotFound)
}
