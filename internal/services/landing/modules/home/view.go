package home

import (
	"strconv"
	"strings"

	"github.com/rotaract-dypcoe/landing/internal/carousel"
	"github.com/rotaract-dypcoe/landing/internal/platform/assets/imagecdn"
	"github.com/rotaract-dypcoe/landing/internal/platform/branding"
	module "github.com/rotaract-dypcoe/landing/internal/services/landing/module"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/routepath"
	"github.com/rotaract-dypcoe/landing/internal/services/landing/templates"
	"go.uber.org/zap"
)

const (
	slideImageWidthPX = 1920
	aboutImageWidthPX = 960
	imageQuality      = 90
)

// ViewOptions controls how the landing view links back to the page.
type ViewOptions struct {
	Initial int
	// Path and Query are the current page location; slide links keep the
	// other query parameters.
	Path  string
	Query string
	// Stream enables the live carousel stream.
	Stream bool
}

// ParseSlide returns the slide index selected by raw, or 0 when raw is
// absent, malformed or outside [0, n).
func ParseSlide(raw string, n int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 || index >= n {
		return 0
	}
	return index
}

// BuildView assembles the landing page view for the given initial slide.
func BuildView(deps module.Dependencies, opts ViewOptions) (templates.LandingView, error) {
	state, err := carousel.NewState(deps.Deck.Len())
	if err != nil {
		return templates.LandingView{}, err
	}
	if state, err = state.JumpTo(opts.Initial); err != nil {
		return templates.LandingView{}, err
	}

	slides := make([]templates.SlideView, 0, deps.Deck.Len())
	indicators := make([]templates.IndicatorView, 0, deps.Deck.Len())
	for i, s := range deps.Deck.Slides() {
		slides = append(slides, templates.SlideView{
			ImageURL:    imageURL(deps, s.Image, slideImageWidthPX),
			Title:       s.Title,
			Description: s.Description,
			Position:    state.Position(i),
		})
		indicators = append(indicators, templates.IndicatorView{
			Index:  i,
			URL:    routepath.SlideURL(opts.Path, opts.Query, i),
			Active: i == state.Index(),
		})
	}

	interval := deps.Interval
	if interval <= 0 {
		interval = carousel.DefaultInterval
	}
	view := templates.LandingView{
		Carousel: templates.CarouselView{
			Slides:     slides,
			Current:    state.Index(),
			PrevURL:    routepath.SlideURL(opts.Path, opts.Query, state.Prev()),
			NextURL:    routepath.SlideURL(opts.Path, opts.Query, state.Next()),
			Indicators: indicators,
			IntervalMS: interval.Milliseconds(),
		},
		About: templates.AboutView{
			ImageURL:   imageURL(deps, deps.Site.About.Image, aboutImageWidthPX),
			ImageAlt:   deps.Site.About.ImageAlt,
			Heading:    deps.Site.About.Heading,
			Paragraphs: deps.Site.About.Paragraphs,
			LinkLabel:  deps.Site.About.Link.Label,
			LinkURL:    deps.Site.About.Link.URL,
		},
		Footer: templates.FooterView{
			Year:  deps.Site.CopyrightYear,
			Owner: footerOwner(deps.Site.Organization),
		},
	}
	if opts.Stream {
		view.Carousel.StreamURL = routepath.CarouselStreamAt(state.Index())
	}
	return view, nil
}

func footerOwner(organization string) string {
	if owner := strings.TrimSpace(organization); owner != "" {
		return owner
	}
	return branding.Organization
}

// imageURL resolves name through the image CDN. An unresolvable name renders
// as an empty src so the browser shows the alt text.
func imageURL(deps module.Dependencies, name string, widthPX int) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	req := imagecdn.FileRequest(name)
	req.Delivery = &imagecdn.Delivery{WidthPX: widthPX, Quality: imageQuality}
	resolved, err := deps.Images.URL(req)
	if err != nil {
		deps.Log().Warn("resolve image url", zap.String("image", name), zap.Error(err))
		return ""
	}
	return resolved
}
