// Package carousel models the landing page hero carousel: a fixed deck of
// slides, a wrapping index over it, and a player that advances the index on
// a timer while mounted.
package carousel

import "errors"

// ErrEmptyDeck reports a deck without slides.
var ErrEmptyDeck = errors.New("carousel: deck has no slides")

// Slide is one hero entry.
type Slide struct {
	Image       string
	Title       string
	Description string
}

// Deck is the fixed, ordered slide list the carousel cycles through.
type Deck struct {
	slides []Slide
}

// NewDeck copies slides into a deck. The list must not be empty.
func NewDeck(slides []Slide) (Deck, error) {
	if len(slides) == 0 {
		return Deck{}, ErrEmptyDeck
	}
	owned := make([]Slide, len(slides))
	copy(owned, slides)
	return Deck{slides: owned}, nil
}

// Len returns the number of slides.
func (d Deck) Len() int {
	return len(d.slides)
}

// At returns the slide at i. Callers index with values from State.
func (d Deck) At(i int) Slide {
	return d.slides[i]
}

// Slides returns a copy of the slide list.
func (d Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	copy(out, d.slides)
	return out
}
