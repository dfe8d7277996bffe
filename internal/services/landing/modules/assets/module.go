// Package assets serves embedded static files and site images.
package assets

import (
	"io/fs"
	"net/http"
	"os"
	"strings"

	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/httpx"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/weberror"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/static"
)

const (
	staticCacheControl = "public, max-age=3600"
	imageCacheControl  = "public, max-age=86400"
)

// Module serves a file tree under a fixed prefix.
type Module struct {
	id     string
	prefix string
	files  func(module.Dependencies) fs.FS
	cache  string
}

// NewStatic returns the module serving embedded css and js.
func NewStatic() Module {
	return Module{
		id:     "static",
		prefix: routepath.StaticPrefix,
		files:  func(module.Dependencies) fs.FS { return static.FS },
		cache:  staticCacheControl,
	}
}

// NewImages returns the module serving images from the public directory.
func NewImages() Module {
	return Module{
		id:     "images",
		prefix: routepath.ImagesPrefix,
		files: func(deps module.Dependencies) fs.FS {
			dir := strings.TrimSpace(deps.PublicDir)
			if dir == "" {
				return nil
			}
			return os.DirFS(dir)
		},
		cache: imageCacheControl,
	}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return m.id
}

// Mount serves the module's files. A module without files answers 404.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	var files fs.FS
	if m.files != nil {
		files = m.files(deps)
	}
	notFound := func(w http.ResponseWriter, r *http.Request) {
		weberror.WritePage(w, r, http.StatusNotFound, deps.Log())
	}
	if files == nil {
		return module.Mount{Prefix: m.prefix, Handler: http.HandlerFunc(notFound)}, nil
	}
	server := http.StripPrefix(strings.TrimSuffix(m.prefix, "/"), http.FileServerFS(files))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No directory listings.
		if strings.HasSuffix(r.URL.Path, "/") {
			notFound(w, r)
			return
		}
		name := strings.TrimPrefix(r.URL.Path, m.prefix)
		if info, err := fs.Stat(files, name); err != nil || info.IsDir() {
			notFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", m.cache)
		server.ServeHTTP(w, r)
	})
	return module.Mount{
		Prefix:  m.prefix,
		Handler: httpx.RequireMethod(http.MethodGet, http.MethodHead)(handler),
	}, nil
}
