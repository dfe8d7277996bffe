package carousel

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Session is a mounted player addressed by an opaque id.
type Session struct {
	ID     string
	Player *Player
}

type entry struct {
	player *Player
	// stop detaches the context hook registered by Open.
	stop func() bool
}

// Registry tracks the players mounted for open viewer streams.
type Registry struct {
	deck  Deck
	opts  []Option
	newID func() string

	mu      sync.Mutex
	players map[string]entry
}

// NewRegistry returns an empty registry creating players over deck.
func NewRegistry(deck Deck, opts ...Option) *Registry {
	return &Registry{
		deck:    deck,
		opts:    opts,
		newID:   uuid.NewString,
		players: make(map[string]entry),
	}
}

// Deck returns the slides players in this registry cycle through.
func (r *Registry) Deck() Deck {
	return r.deck
}

// Open mounts a new player starting at initial and registers it.
// The player is unmounted and forgotten when ctx ends or Close is called.
func (r *Registry) Open(ctx context.Context, initial int) (Session, error) {
	player, err := NewPlayer(r.deck.Len(), r.opts...)
	if err != nil {
		return Session{}, err
	}
	if initial != 0 {
		if err := player.JumpTo(initial); err != nil {
			return Session{}, err
		}
		// The stream reports the starting index itself.
		select {
		case <-player.Changes():
		default:
		}
	}
	if err := player.Mount(ctx); err != nil {
		return Session{}, fmt.Errorf("mount player: %w", err)
	}

	id := r.newID()
	r.mu.Lock()
	r.players[id] = entry{player: player}
	r.mu.Unlock()

	// Registered after insertion so an already-cancelled ctx still removes
	// the entry.
	stop := context.AfterFunc(ctx, func() { r.Close(id) })
	r.mu.Lock()
	if current, ok := r.players[id]; ok {
		current.stop = stop
		r.players[id] = current
	}
	r.mu.Unlock()
	return Session{ID: id, Player: player}, nil
}

// Get returns the mounted player for id.
func (r *Registry) Get(id string) (*Player, bool) {
	r.mu.Lock()
	current, ok := r.players[id]
	r.mu.Unlock()
	if !ok || !current.player.Mounted() {
		return nil, false
	}
	return current.player, true
}

// Close unmounts the player for id and removes it.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	current, ok := r.players[id]
	delete(r.players, id)
	r.mu.Unlock()
	if ok {
		current.release()
	}
}

// CloseAll unmounts every registered player.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	players := r.players
	r.players = make(map[string]entry)
	r.mu.Unlock()
	for _, current := range players {
		current.release()
	}
}

func (e entry) release() {
	if e.stop != nil {
		e.stop()
	}
	e.player.Unmount()
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}
