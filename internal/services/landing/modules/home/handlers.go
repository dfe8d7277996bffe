package home

import (
	"io"
	"net/http"

	apperrors "github.com/rotaract-dypcoe/landing/internal/services/landing/platform/errors"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/httpx"
	landingi18n "github.com/rotaract-dypcoe/landing/internal/services/landing/platform/i18n"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/pagerender"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/weberror"
	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/templates"
	"go.uber.org/zap"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc := landingi18n.ResolveLocalizer(w, r)
	view, err := BuildView(h.deps, ViewOptions{
		Initial: ParseSlide(r.URL.Query().Get(routepath.SlideParam), h.deps.Deck.Len()),
		Path:    r.URL.Path,
		Query:   r.URL.RawQuery,
		Stream:  h.deps.Registry != nil,
	})
	if err != nil {
		weberror.WriteError(w, r, apperrors.E(apperrors.KindUnknown, err.Error()), h.deps.Log())
		return
	}
	err = pagerender.WritePage(w, r, loc, pagerender.Page{
		Title:       loc.Sprintf("landing.page_title"),
		Description: loc.Sprintf("landing.meta_description"),
		Body:        templates.LandingPage(view, loc),
	})
	if err != nil {
		h.deps.Log().Error("render landing page", zap.Error(err))
		weberror.WritePage(w, r, http.StatusInternalServerError, h.deps.Log())
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h handlers) handleRootMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httpx.MethodNotAllowed("GET, HEAD")(w, r)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePage(w, r, http.StatusNotFound, h.deps.Log())
}
