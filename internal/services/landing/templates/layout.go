package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rotaract-dypcoe/landing/internal/platform/branding"
	"github.com/rotaract-dypcoe/landing/internal/platform/icons"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LanguageOption is one entry in the language menu.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title       string
	Description string
	Lang        string
	Loc         Localizer
	Languages   []LanguageOption
	// StaticBase prefixes stylesheet and script URLs; empty uses /static/.
	StaticBase string
}

// ComposePageTitle appends the app name to title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

// Layout renders the HTML document around the children in ctx.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layoutNode(ctx, opts).Render(w)
	})
}

func layoutNode(ctx context.Context, opts LayoutOptions) g.Node {
	lang := strings.TrimSpace(opts.Lang)
	if lang == "" {
		lang = "en-US"
	}
	staticBase := strings.TrimSpace(opts.StaticBase)
	if staticBase == "" {
		staticBase = routepath.StaticPrefix
	}
	return h.Doctype(
		h.HTML(
			h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(ComposePageTitle(opts.Title))),
				g.If(strings.TrimSpace(opts.Description) != "",
					h.Meta(h.Name("description"), h.Content(opts.Description)),
				),
				h.Link(h.Rel("stylesheet"), h.Href(staticBase+"landing.css")),
				h.Script(h.Src(staticBase+"carousel.js"), h.Defer()),
			),
			h.Body(
				h.Class("landing"),
				g.Raw(icons.LucideSprite()),
				navigation(opts),
				h.Main(
					h.ID("main"),
					embed(ctx, templ.GetChildren(ctx)),
				),
			),
		),
	)
}

// navigation is a minimal anchor bar standing in for the site header.
func navigation(opts LayoutOptions) g.Node {
	return h.Nav(
		h.Class("site-nav"),
		h.Aria("label", T(opts.Loc, "nav.label")),
		h.A(h.Class("site-nav__brand"), h.Href(routepath.HomeAnchor), g.Text(branding.AppName)),
		h.Ul(
			h.Class("site-nav__links"),
			h.Li(h.A(h.Href(routepath.HomeAnchor), g.Text(T(opts.Loc, "nav.home")))),
			h.Li(h.A(h.Href(routepath.AboutAnchor), g.Text(T(opts.Loc, "nav.about")))),
		),
		g.If(len(opts.Languages) > 1, languageMenu(opts)),
	)
}

func languageMenu(opts LayoutOptions) g.Node {
	return h.Ul(
		h.Class("site-nav__languages"),
		h.Aria("label", T(opts.Loc, "nav.language")),
		g.Map(opts.Languages, func(option LanguageOption) g.Node {
			return h.Li(
				h.A(
					h.Href(option.URL),
					h.Lang(option.Tag),
					g.If(option.Active, h.Aria("current", "true")),
					g.Text(option.Label),
				),
			)
		}),
	)
}

// iconNode references a symbol from the inline sprite.
func iconNode(id icons.ID, class string) g.Node {
	return g.El("svg",
		h.Class(strings.TrimSpace("icon "+class)),
		g.Attr("aria-hidden", "true"),
		g.Attr("focusable", "false"),
		g.El("use", g.Attr("href", "#"+icons.LucideSymbolID(id))),
	)
}
