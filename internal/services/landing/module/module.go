// Package module defines the feature contract used by landing composition.
package module

import (
	"net/http"
	"time"

	"github.com/rotaract-dypcoe/landing/internal/carousel"
	"github.com/rotaract-dypcoe/landing/internal/content"
	"github.com/rotaract-dypcoe/landing/internal/platform/assets/imagecdn"
	"go.uber.org/zap"
)

// Dependencies carries the shared runtime collaborators handed to modules.
type Dependencies struct {
	Site     content.Site
	Deck     carousel.Deck
	Registry *carousel.Registry
	Images   imagecdn.CDN
	Interval time.Duration
	Logger   *zap.Logger
	// Images are served from this directory when non-empty.
	PublicDir string
}

// Log returns the configured logger or a no-op logger.
func (d Dependencies) Log() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by landing composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
