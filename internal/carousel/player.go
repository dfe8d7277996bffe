package carousel

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is the auto-advance period of a mounted player.
const DefaultInterval = 5 * time.Second

// ErrAlreadyMounted reports a second Mount without an Unmount in between.
var ErrAlreadyMounted = errors.New("carousel: player already mounted")

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{Ticker: time.NewTicker(d)}
}

// Option configures a Player.
type Option func(*Player)

// WithInterval overrides the auto-advance period. Non-positive values keep
// the default.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithTicker overrides how the player's timer is created.
func WithTicker(fn TickerFunc) Option {
	return func(p *Player) {
		if fn != nil {
			p.newTicker = fn
		}
	}
}

// Player owns a carousel State and advances it on a timer while mounted.
// Manual navigation is allowed whether or not the player is mounted and does
// not reset the timer.
type Player struct {
	interval  time.Duration
	newTicker TickerFunc

	mu      sync.Mutex
	state   State
	cancel  context.CancelFunc
	done    chan struct{}
	changes chan int
}

// NewPlayer returns an unmounted player over n slides, starting at index 0.
func NewPlayer(n int, opts ...Option) (*Player, error) {
	state, err := NewState(n)
	if err != nil {
		return nil, err
	}
	p := &Player{
		interval:  DefaultInterval,
		newTicker: newTimeTicker,
		state:     state,
		changes:   make(chan int, 1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p, nil
}

// Interval returns the auto-advance period.
func (p *Player) Interval() time.Duration {
	return p.interval
}

// State returns a snapshot of the current state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Index returns the current slide index.
func (p *Player) Index() int {
	return p.State().Index()
}

// Changes delivers the index after every change. Only the latest unread
// value is kept.
func (p *Player) Changes() <-chan int {
	return p.changes
}

// Mounted reports whether the timer is running.
func (p *Player) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done != nil
}

// Mount starts the auto-advance timer. The timer stops on Unmount or when
// ctx is cancelled, whichever comes first.
func (p *Player) Mount(ctx context.Context) error {
	if ctx == nil {
		return errors.New("carousel: context is required")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done != nil {
		return ErrAlreadyMounted
	}
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	go p.run(runCtx, p.newTicker(p.interval), done)
	return nil
}

// Unmount stops the timer and waits for it to exit. After Unmount returns no
// tick changes the index. Calling it on an unmounted player is a no-op.
func (p *Player) Unmount() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Player) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	defer p.release(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			p.tick(ctx)
		}
	}
}

// release clears mount bookkeeping when the timer exits on its own, which
// happens when the mount context is cancelled.
func (p *Player) release(done chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done != done {
		return
	}
	p.cancel()
	p.cancel, p.done = nil, nil
}

func (p *Player) tick(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	p.state = p.state.Advance()
	p.publish()
}

// Next advances one slide.
func (p *Player) Next() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = p.state.Advance()
	p.publish()
	return p.state.Index()
}

// Prev retreats one slide.
func (p *Player) Prev() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = p.state.Retreat()
	p.publish()
	return p.state.Index()
}

// JumpTo selects slide i.
func (p *Player) JumpTo(i int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	next, err := p.state.JumpTo(i)
	if err != nil {
		return err
	}
	p.state = next
	p.publish()
	return nil
}

// publish must be called with p.mu held.
func (p *Player) publish() {
	index := p.state.Index()
	select {
	case p.changes <- index:
		return
	default:
	}
	select {
	case <-p.changes:
	default:
	}
	select {
	case p.changes <- index:
	default:
	}
}
