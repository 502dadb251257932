// Package console previews a carousel in the terminal: pages auto-advance on
// a timer until the operator navigates manually.
package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-tarotsite/pkg/carousel"
)

// Menu entries, in prompt order.
const (
	ActionNext     = "Next"
	ActionPrevious = "Previous"
	ActionQuit     = "Quit"
)

var menu = []string{ActionNext, ActionPrevious, ActionQuit}

// DefaultInterval matches the auto-advance period of the site carousel.
const DefaultInterval = 8 * time.Second

type Option func(*config)

type config struct {
	interval  time.Duration
	window    int
	newTicker carousel.TickerFactory
	title     string
}

// WithInterval sets the auto-advance period.
func WithInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.interval = d
	}
}

// WithWindow sets the number of items shown per page.
func WithWindow(size int) Option {
	return func(cfg *config) {
		cfg.window = size
	}
}

// WithTicker overrides the ticker used for auto-advance.
func WithTicker(factory carousel.TickerFactory) Option {
	return func(cfg *config) {
		if factory != nil {
			cfg.newTicker = factory
		}
	}
}

// WithTitle sets the heading printed above each page.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = strings.TrimSpace(title)
	}
}

// Preview runs an interactive carousel over items until the operator quits,
// aborts, or ctx is cancelled. Each page is printed through driver.Info with
// items formatted by format. Info is only called from the Preview goroutine,
// but it may run while a Select is pending on another goroutine.
func Preview[T any](ctx context.Context, driver PromptDriver, items []T, format func(T) string, options ...Option) error {
	if driver == nil {
		return fmt.Errorf("console: %w: prompt driver is nil", carousel.ErrInvalidArgument)
	}
	if format == nil {
		format = func(item T) string { return fmt.Sprint(item) }
	}
	cfg := config{
		interval:  DefaultInterval,
		window:    3,
		newTicker: carousel.NewTimeTicker,
		title:     "Carousel",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	c, err := carousel.New(items, cfg.window)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	show := func(s carousel.Snapshot[T]) {
		_ = driver.Info(ctx, formatSnapshot(cfg.title, c.Window(), s, format))
	}

	// Auto-advanced pages are handed to this goroutine, which is the only one
	// writing through the driver. Only the newest pending page is kept.
	autoPages := make(chan carousel.Snapshot[T], 1)
	loop, err := carousel.NewLoop(c, cfg.interval,
		carousel.WithTicker[T](cfg.newTicker),
		carousel.WithOnChange(func(s carousel.Snapshot[T]) {
			// Manual moves are printed by the prompt loop.
			if s.Mode == carousel.ModeAutoAdvancing {
				offerLatest(autoPages, s)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	show(c.Snapshot())
	if err := loop.Start(ctx); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	defer loop.Stop()

	answers := make(chan promptResult, 1)
	prompt := func() {
		go func() {
			choice, err := driver.Select(ctx, SelectConfig{
				Message: cfg.title,
				Options: menu,
			})
			answers <- promptResult{choice: choice, err: err}
		}()
	}
	prompt()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-autoPages:
			show(snap)
		case res := <-answers:
			if res.err != nil {
				if errors.Is(res.err, ErrAborted) || errors.Is(res.err, context.Canceled) {
					return nil
				}
				return fmt.Errorf("console: prompt: %w", res.err)
			}

			var snap carousel.Snapshot[T]
			switch menuAction(res.choice) {
			case ActionNext:
				snap, err = loop.Advance(ctx)
			case ActionPrevious:
				snap, err = loop.Retreat(ctx)
			default:
				return nil
			}
			if err != nil {
				return fmt.Errorf("console: %w", err)
			}
			// A page auto-advanced before the move is superseded by it.
			drain(autoPages)
			show(snap)
			prompt()
		}
	}
}

type promptResult struct {
	choice int
	err    error
}

func offerLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func drain[T any](ch chan T) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func menuAction(choice int) string {
	if choice < 0 || choice >= len(menu) {
		return ActionQuit
	}
	return menu[choice]
}

func formatSnapshot[T any](title string, w carousel.Window, s carousel.Snapshot[T], format func(T) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [from #%d of %d, %s]", title, s.Start+1, w.Len(), s.Mode)
	for i, item := range s.Visible {
		fmt.Fprintf(&b, "\n  %d. %s", (s.Start+i)%w.Len()+1, format(item))
	}
	return b.String()
}
