package carousel

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Ticker is the scheduling primitive behind auto-advance. *time.Ticker is
// adapted through NewTimeTicker; tests inject a channel they control.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }

func (t timeTicker) Stop() { t.t.Stop() }

// LoopOption configures a Loop.
type LoopOption[T any] func(*Loop[T])

// WithTicker overrides the ticker factory used for auto-advance.
func WithTicker[T any](factory TickerFactory) LoopOption[T] {
	return func(l *Loop[T]) {
		if factory != nil {
			l.newTicker = factory
		}
	}
}

// WithOnChange registers a callback invoked on the loop goroutine every time
// the state changes, whether from a tick or a manual command.
func WithOnChange[T any](fn func(Snapshot[T])) LoopOption[T] {
	return func(l *Loop[T]) {
		l.onChange = fn
	}
}

type request[T any] struct {
	cmd   Command
	reply chan Snapshot[T]
}

// Loop owns a Carousel and serialises ticks and manual navigation on a single
// goroutine. Each event runs to completion before the next one is handled.
type Loop[T any] struct {
	carousel  *Carousel[T]
	interval  time.Duration
	newTicker TickerFactory
	onChange  func(Snapshot[T])

	requests chan request[T]

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewLoop builds an auto-advancing loop around c.
func NewLoop[T any](c *Carousel[T], interval time.Duration, opts ...LoopOption[T]) (*Loop[T], error) {
	if c == nil {
		return nil, fmt.Errorf("%w: carousel is nil", ErrInvalidArgument)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: auto-advance interval must be positive, got %s", ErrInvalidArgument, interval)
	}
	l := &Loop[T]{
		carousel:  c,
		interval:  interval,
		newTicker: NewTimeTicker,
		requests:  make(chan request[T]),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l, nil
}

// Start launches the event loop. It returns immediately; calling it again is
// a no-op. The loop exits when ctx is cancelled or Stop is called.
func (l *Loop[T]) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return ErrLoopStopped
	}
	if l.started {
		return nil
	}
	l.started = true
	go l.run(ctx)
	return nil
}

// Stop terminates the loop and waits for it to exit.
func (l *Loop[T]) Stop() {
	l.mu.Lock()
	if !l.started || l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	close(l.stopCh)
	l.mu.Unlock()

	<-l.doneCh
}

// Done is closed once the loop goroutine has exited.
func (l *Loop[T]) Done() <-chan struct{} {
	return l.doneCh
}

// Advance requests a manual page forward.
func (l *Loop[T]) Advance(ctx context.Context) (Snapshot[T], error) {
	return l.send(ctx, CommandAdvance)
}

// Retreat requests a manual page back.
func (l *Loop[T]) Retreat(ctx context.Context) (Snapshot[T], error) {
	return l.send(ctx, CommandRetreat)
}

// Snapshot returns the current view without changing it.
func (l *Loop[T]) Snapshot(ctx context.Context) (Snapshot[T], error) {
	return l.send(ctx, 0)
}

func (l *Loop[T]) send(ctx context.Context, cmd Command) (Snapshot[T], error) {
	l.mu.Lock()
	started := l.started
	l.mu.Unlock()
	if !started {
		return Snapshot[T]{}, ErrLoopNotStarted
	}

	req := request[T]{cmd: cmd, reply: make(chan Snapshot[T], 1)}
	select {
	case l.requests <- req:
	case <-l.doneCh:
		return Snapshot[T]{}, ErrLoopStopped
	case <-ctx.Done():
		return Snapshot[T]{}, ctx.Err()
	}

	// A received request is always answered before the loop looks at its
	// exit conditions again.
	select {
	case snap := <-req.reply:
		return snap, nil
	case <-ctx.Done():
		return Snapshot[T]{}, ctx.Err()
	}
}

func (l *Loop[T]) run(ctx context.Context) {
	defer close(l.doneCh)

	ticker := l.newTicker(l.interval)
	ticks := ticker.C()
	stopTicker := func() {
		if ticker == nil {
			return
		}
		ticker.Stop()
		ticker = nil
		ticks = nil
	}
	defer stopTicker()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopCh:
			return
		case <-ticks:
			l.apply(CommandTick)
		case req := <-l.requests:
			if req.cmd != 0 {
				l.apply(req.cmd)
				if l.carousel.State().Mode == ModeManual {
					stopTicker()
				}
			}
			req.reply <- l.carousel.Snapshot()
		}
	}
}

func (l *Loop[T]) apply(cmd Command) {
	before := l.carousel.State()
	after := l.carousel.Dispatch(cmd)
	if after == before || l.onChange == nil {
		return
	}
	l.onChange(l.carousel.Snapshot())
}
