// Package pagerender centralizes full-page rendering through the layout.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/platform/httpx"
	landingi18n "github.com/rotaract-dypcoe/landing/internal/services/landing/platform/i18n"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/templates"
)

// Page describes one full-document response.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	Body        templ.Component
	// StaticBase overrides the asset prefix; exported pages use a relative one.
	StaticBase string
	// HideLanguages drops the language menu, used where ?lang= links cannot work.
	HideLanguages bool
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Render writes the full document for page to w.
func Render(ctx context.Context, w io.Writer, loc landingi18n.Localizer, path string, rawQuery string, page Page) error {
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}
	opts := templates.LayoutOptions{
		Title:       page.Title,
		Description: page.Description,
		Lang:        loc.Tag().String(),
		Loc:         loc,
		StaticBase:  page.StaticBase,
	}
	if !page.HideLanguages {
		for _, option := range landingi18n.LanguageOptions(loc, path, rawQuery) {
			opts.Languages = append(opts.Languages, templates.LanguageOption(option))
		}
	}
	return templates.Layout(opts).Render(templ.WithChildren(ctx, body), w)
}

// WritePage renders page for r. Rendering completes before any byte is
// written so a failure still produces a clean 500.
func WritePage(w http.ResponseWriter, r *http.Request, loc landingi18n.Localizer, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	path, query := "", ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
		query = r.URL.RawQuery
	}
	var buf bytes.Buffer
	if err := Render(httpx.RequestContext(r), &buf, loc, path, query, page); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", loc.Tag().String())
	w.Header().Set("Vary", "Accept-Language, Cookie")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
