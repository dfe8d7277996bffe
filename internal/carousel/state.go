package carousel

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports a jump outside [0, N).
var ErrIndexOutOfRange = errors.New("carousel: index out of range")

// Position classifies a slide relative to the current one.
type Position string

const (
	PositionCurrent Position = "current"
	PositionBefore  Position = "before"
	PositionAfter   Position = "after"
)

// State is the wrapping index over a deck of n slides.
// The zero value is not usable; build one with NewState.
type State struct {
	index int
	n     int
}

// NewState returns the initial state (index 0) for n slides.
func NewState(n int) (State, error) {
	if n <= 0 {
		return State{}, ErrEmptyDeck
	}
	return State{n: n}, nil
}

// Index returns the current slide index.
func (s State) Index() int {
	return s.index
}

// Len returns the deck size the state wraps over.
func (s State) Len() int {
	return s.n
}

// Advance moves to the next slide, wrapping from the last to the first.
func (s State) Advance() State {
	s.index = (s.index + 1) % s.n
	return s
}

// Retreat moves to the previous slide, wrapping from the first to the last.
func (s State) Retreat() State {
	s.index = (s.index - 1 + s.n) % s.n
	return s
}

// JumpTo selects slide i directly.
func (s State) JumpTo(i int) (State, error) {
	if i < 0 || i >= s.n {
		return s, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, s.n)
	}
	s.index = i
	return s, nil
}

// Next returns the index Advance would move to.
func (s State) Next() int {
	return s.Advance().index
}

// Prev returns the index Retreat would move to.
func (s State) Prev() int {
	return s.Retreat().index
}

// Position reports where slide i sits relative to the current slide.
func (s State) Position(i int) Position {
	switch {
	case i == s.index:
		return PositionCurrent
	case i < s.index:
		return PositionBefore
	default:
		return PositionAfter
	}
}
