package carousel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()              { f.stopped.Store(true) }

type fakeClock struct {
	mu       sync.Mutex
	tickers  []*fakeTicker
	requests []time.Duration
}

func (c *fakeClock) newTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	ticker := &fakeTicker{ch: make(chan time.Time, 1)}
	c.tickers = append(c.tickers, ticker)
	c.requests = append(c.requests, d)
	return ticker
}

func (c *fakeClock) last() *fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickers[len(c.tickers)-1]
}

func waitChange(t *testing.T, p *Player) int {
	t.Helper()
	select {
	case index := <-p.Changes():
		return index
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for index change")
		return -1
	}
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPlayerUsesDefaultInterval(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	p, err := NewPlayer(3, WithTicker(clock.newTicker))
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	if err := p.Mount(context.Background()); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	defer p.Unmount()

	if got := clock.requests[0]; got != 5*time.Second {
		t.Fatalf("ticker interval = %v, want %v", got, 5*time.Second)
	}
}

func TestPlayerAdvancesOncePerTick(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	p, _ := NewPlayer(3, WithTicker(clock.newTicker))
	if err := p.Mount(context.Background()); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	defer p.Unmount()

	ticker := clock.last()
	for _, want := range []int{1, 2, 0, 1} {
		ticker.ch <- time.Now()
		if got := waitChange(t, p); got != want {
			t.Fatalf("after tick index = %d, want %d", got, want)
		}
	}
	if got := p.Index(); got != 1 {
		t.Fatalf("Index() = %d, want 1", got)
	}
}

func TestPlayerUnmountStopsTimer(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	p, _ := NewPlayer(3, WithTicker(clock.newTicker))
	_ = p.Mount(context.Background())
	ticker := clock.last()
	ticker.ch <- time.Now()
	waitChange(t, p)

	p.Unmount()
	if !ticker.stopped.Load() {
		t.Fatal("ticker not stopped after Unmount")
	}
	if p.Mounted() {
		t.Fatal("Mounted() = true after Unmount")
	}
	ticker.ch <- time.Now()
	time.Sleep(10 * time.Millisecond)
	if got := p.Index(); got != 1 {
		t.Fatalf("Index() = %d after unmount, want 1", got)
	}
	select {
	case index := <-p.Changes():
		t.Fatalf("unexpected change %d after unmount", index)
	default:
	}

	p.Unmount()
}

func TestPlayerContextCancelUnmounts(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	p, _ := NewPlayer(2, WithTicker(clock.newTicker))
	ctx, cancel := context.WithCancel(context.Background())
	_ = p.Mount(ctx)
	cancel()

	waitUntil(t, func() bool { return !p.Mounted() })
	if !clock.last().stopped.Load() {
		t.Fatal("ticker not stopped after context cancel")
	}
	if err := p.Mount(context.Background()); err != nil {
		t.Fatalf("remount error = %v", err)
	}
	p.Unmount()
}

func TestPlayerRejectsDoubleMount(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{}
	p, _ := NewPlayer(2, WithTicker(clock.newTicker))
	_ = p.Mount(context.Background())
	defer p.Unmount()

	if err := p.Mount(context.Background()); !errors.Is(err, ErrAlreadyMounted) {
		t.Fatalf("second Mount() error = %v, want %v", err, ErrAlreadyMounted)
	}
}

func TestPlayerManualNavigation(t *testing.T) {
	t.Parallel()

	p, _ := NewPlayer(3)
	if got := p.Prev(); got != 2 {
		t.Fatalf("Prev() from 0 = %d, want 2", got)
	}
	if got := p.Next(); got != 0 {
		t.Fatalf("Next() from 2 = %d, want 0", got)
	}
	if err := p.JumpTo(1); err != nil {
		t.Fatalf("JumpTo(1) error = %v", err)
	}
	if got := waitChange(t, p); got != 1 {
		t.Fatalf("latest change = %d, want 1", got)
	}
	if err := p.JumpTo(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("JumpTo(3) error = %v, want %v", err, ErrIndexOutOfRange)
	}
}

func TestPlayerChangesKeepsLatest(t *testing.T) {
	t.Parallel()

	p, _ := NewPlayer(5)
	p.Next()
	p.Next()
	p.Next()
	if got := waitChange(t, p); got != 3 {
		t.Fatalf("Changes() = %d, want latest 3", got)
	}
	select {
	case index := <-p.Changes():
		t.Fatalf("stale change %d still buffered", index)
	default:
	}
}

func TestPlayerRealTickerAdvances(t *testing.T) {
	t.Parallel()

	p, _ := NewPlayer(2, WithInterval(5*time.Millisecond))
	if p.Interval() != 5*time.Millisecond {
		t.Fatalf("Interval() = %v, want 5ms", p.Interval())
	}
	_ = p.Mount(context.Background())
	if got := waitChange(t, p); got != 1 {
		t.Fatalf("first tick index = %d, want 1", got)
	}
	p.Unmount()
}
