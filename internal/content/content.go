// Package content loads the landing page copy compiled into the binary.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rotaract-dypcoe/landing/internal/carousel"
)

//go:embed site.yaml
var siteYAML []byte

// Site is the full page copy.
type Site struct {
	Name          string  `yaml:"name"`
	Organization  string  `yaml:"organization"`
	CopyrightYear int     `yaml:"copyright_year"`
	Slides        []Slide `yaml:"slides"`
	About         About   `yaml:"about"`
}

// Slide is one hero carousel entry.
type Slide struct {
	Image       string `yaml:"image"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// About is the section introducing the club.
type About struct {
	Image      string   `yaml:"image"`
	ImageAlt   string   `yaml:"image_alt"`
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
	Link       Link     `yaml:"link"`
}

// Link is an outbound call to action.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the embedded site copy. The embedded file is validated by
// tests, so a failure here is a build defect.
func Default() (Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site copy.
func Parse(data []byte) (Site, error) {
	var site Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return Site{}, fmt.Errorf("decode site content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Validate reports the first structural problem in the copy.
func (s Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("site content: name is required")
	}
	if len(s.Slides) == 0 {
		return fmt.Errorf("site content: %w", carousel.ErrEmptyDeck)
	}
	for i, slide := range s.Slides {
		if strings.TrimSpace(slide.Image) == "" {
			return fmt.Errorf("site content: slide %d image is required", i)
		}
		if strings.TrimSpace(slide.Title) == "" {
			return fmt.Errorf("site content: slide %d title is required", i)
		}
	}
	if link := strings.TrimSpace(s.About.Link.URL); link != "" {
		parsed, err := url.Parse(link)
		if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
			return fmt.Errorf("site content: about link %q must be an absolute https url", link)
		}
	}
	return nil
}

// Deck converts the slides into a carousel deck.
func (s Site) Deck() (carousel.Deck, error) {
	slides := make([]carousel.Slide, 0, len(s.Slides))
	for _, slide := range s.Slides {
		slides = append(slides, carousel.Slide{
			Image:       slide.Image,
			Title:       slide.Title,
			Description: slide.Description,
		})
	}
	return carousel.NewDeck(slides)
}
