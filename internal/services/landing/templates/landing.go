package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/rotaract-dypcoe/landing/internal/carousel"
	"github.com/rotaract-dypcoe/landing/internal/platform/icons"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SlideView is one rendered carousel slide.
type SlideView struct {
	ImageURL    string
	Title       string
	Description string
	Position    carousel.Position
}

// IndicatorView is one position indicator.
type IndicatorView struct {
	Index  int
	URL    string
	Active bool
}

// CarouselView is the server-rendered carousel state.
type CarouselView struct {
	Slides     []SlideView
	Current    int
	PrevURL    string
	NextURL    string
	Indicators []IndicatorView
	// StreamURL is empty when the page is exported without a server.
	StreamURL  string
	IntervalMS int64
}

// AboutView is the rendered about section.
type AboutView struct {
	ImageURL   string
	ImageAlt   string
	Heading    string
	Paragraphs []string
	LinkLabel  string
	LinkURL    string
}

// FooterView is the page footer.
type FooterView struct {
	Year  int
	Owner string
}

// LandingView is the full landing page body.
type LandingView struct {
	Carousel CarouselView
	About    AboutView
	Footer   FooterView
}

var slideClasses = map[carousel.Position]string{
	carousel.PositionCurrent: "opacity-100 translate-x-0",
	carousel.PositionBefore:  "opacity-0 -translate-x-full",
	carousel.PositionAfter:   "opacity-0 translate-x-full",
}

// SlideClass returns the transition classes for a slide position.
func SlideClass(pos carousel.Position) string {
	if class, ok := slideClasses[pos]; ok {
		return class
	}
	return slideClasses[carousel.PositionAfter]
}

// LandingPage renders the hero carousel, about section and footer.
func LandingPage(view LandingView, loc Localizer) templ.Component {
	return Component(g.Group{
		carouselSection(view.Carousel, loc),
		aboutSection(view.About, loc),
		footer(view.Footer, loc),
	})
}

func carouselSection(view CarouselView, loc Localizer) g.Node {
	return h.Section(
		h.ID("home"),
		h.Class("carousel"),
		h.Aria("roledescription", "carousel"),
		h.Aria("label", T(loc, "carousel.label")),
		h.Data("carousel", ""),
		h.Data("index", strconv.Itoa(view.Current)),
		h.Data("count", strconv.Itoa(len(view.Slides))),
		h.Data("interval-ms", strconv.FormatInt(view.IntervalMS, 10)),
		g.If(view.StreamURL != "", h.Data("stream", view.StreamURL)),
		h.Div(
			h.Class("carousel__track"),
			h.Aria("live", "off"),
			g.Map(indexed(view.Slides), func(item indexedSlide) g.Node {
				return slide(item.index, item.slide, len(view.Slides), loc)
			}),
		),
		h.A(
			h.Class("carousel__control carousel__control--prev"),
			h.Href(view.PrevURL),
			h.Data("action", "prev"),
			h.Aria("label", T(loc, "carousel.previous")),
			iconNode(icons.IDPrevious, ""),
		),
		h.A(
			h.Class("carousel__control carousel__control--next"),
			h.Href(view.NextURL),
			h.Data("action", "next"),
			h.Aria("label", T(loc, "carousel.next")),
			iconNode(icons.IDNext, ""),
		),
		h.Div(
			h.Class("carousel__indicators"),
			g.Map(view.Indicators, func(indicator IndicatorView) g.Node {
				return indicatorNode(indicator, loc)
			}),
		),
	)
}

type indexedSlide struct {
	index int
	slide SlideView
}

func indexed(slides []SlideView) []indexedSlide {
	out := make([]indexedSlide, 0, len(slides))
	for i, s := range slides {
		out = append(out, indexedSlide{index: i, slide: s})
	}
	return out
}

func slide(index int, view SlideView, total int, loc Localizer) g.Node {
	current := view.Position == carousel.PositionCurrent
	image := []g.Node{
		h.Class("carousel__image"),
		h.Src(view.ImageURL),
		h.Alt(C(loc, view.Title)),
	}
	if index == 0 {
		image = append(image, g.Attr("fetchpriority", "high"))
	} else {
		image = append(image, g.Attr("loading", "lazy"))
	}
	return h.Div(
		h.Class("carousel__slide "+SlideClass(view.Position)),
		g.Attr("role", "group"),
		h.Aria("roledescription", "slide"),
		h.Aria("label", strconv.Itoa(index+1)+" / "+strconv.Itoa(total)),
		g.If(!current, h.Aria("hidden", "true")),
		h.Data("slide-index", strconv.Itoa(index)),
		h.Img(image...),
		h.Div(h.Class("carousel__overlay")),
		h.Div(
			h.Class("carousel__caption"),
			slideTitle(current, C(loc, view.Title)),
			g.If(view.Description != "",
				h.P(h.Class("carousel__description"), g.Text(C(loc, view.Description))),
			),
		),
	)
}

// slideTitle renders the visible slide's title as the page heading.
func slideTitle(current bool, title string) g.Node {
	if current {
		return h.H1(h.Class("carousel__title"), g.Text(title))
	}
	return h.H2(h.Class("carousel__title"), g.Text(title))
}

func indicatorNode(indicator IndicatorView, loc Localizer) g.Node {
	class := "carousel__indicator"
	if indicator.Active {
		class += " carousel__indicator--active"
	}
	return h.A(
		h.Class(class),
		h.Href(indicator.URL),
		h.Data("jump", strconv.Itoa(indicator.Index)),
		h.Aria("label", T(loc, "carousel.go_to", indicator.Index+1)),
		g.If(indicator.Active, h.Aria("current", "true")),
	)
}

func aboutSection(view AboutView, loc Localizer) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("about"),
		h.Div(
			h.Class("about__media"),
			h.Img(
				h.Class("about__image"),
				h.Src(view.ImageURL),
				h.Alt(C(loc, view.ImageAlt)),
				g.Attr("loading", "lazy"),
			),
		),
		h.Div(
			h.Class("about__body"),
			h.H2(h.Class("about__heading"), g.Text(C(loc, view.Heading))),
			g.Map(view.Paragraphs, func(paragraph string) g.Node {
				return h.P(h.Class("about__paragraph"), g.Text(C(loc, paragraph)))
			}),
			g.If(view.LinkURL != "",
				h.A(
					h.Class("about__cta"),
					h.Href(view.LinkURL),
					h.Target("_blank"),
					h.Rel("noopener noreferrer"),
					iconNode(icons.IDCommunity, ""),
					g.Text(C(loc, view.LinkLabel)),
					iconNode(icons.IDExternalLink, "icon--small"),
					h.Span(h.Class("sr-only"), g.Text(" "+T(loc, "about.new_tab"))),
				),
			),
		),
	)
}

func footer(view FooterView, loc Localizer) g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.P(
			g.Text(T(loc, "footer.copyright", strconv.Itoa(view.Year), view.Owner)),
			g.Text(" "),
			iconNode(icons.IDHeart, "icon--heart"),
		),
	)
}
