// Package watch reloads site content when the content directory changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/goliatone/go-tarotsite/pkg/content"
)

// DefaultDebounce batches the burst of events an editor produces on save.
const DefaultDebounce = 300 * time.Millisecond

// ReloadFunc is called once per settled batch of changes.
type ReloadFunc func(ctx context.Context) error

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the directory must stay quiet before a reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Stats reports watcher activity.
type Stats struct {
	Events        int
	Reloads       int
	Errors        int
	LastEventPath string
	LastEventTime time.Time
}

// Watcher watches a content directory for changes to the site document.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	reload   ReloadFunc
	logger   *zap.Logger
	debounce time.Duration
	pending  time.Time
	running  bool
	stopped  bool
	stats    Stats
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates a Watcher for dir. Call Start to begin watching.
func New(dir string, reload ReloadFunc, opts ...Option) (*Watcher, error) {
	if dir == "" {
		return nil, errors.New("watch: directory is required")
	}
	if reload == nil {
		return nil, errors.New("watch: reload func is required")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		dir:      filepath.Clean(dir),
		reload:   reload,
		logger:   zap.NewNop(),
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Start adds the directory to the watch list and runs the event loop in a
// goroutine. Calling Start on a running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return errors.New("watch: watcher stopped")
	}
	if w.running {
		return nil
	}
	// The directory is watched rather than the file so editors that save by
	// rename keep being observed.
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", w.dir, err)
	}
	w.running = true
	w.logger.Info("watching content directory", zap.String("dir", w.dir))

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	running := w.running
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("close watcher", zap.Error(err))
	}
}

// Done is closed when the event loop exits.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

// Stats returns a copy of the activity counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	debounceTicker := time.NewTicker(tick)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("content watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case now := <-debounceTicker.C:
			w.flush(ctx, now)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !content.IsSiteFile(event.Name) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	now := time.Now()
	w.mu.Lock()
	w.pending = now
	w.stats.Events++
	w.stats.LastEventPath = event.Name
	w.stats.LastEventTime = now
	w.mu.Unlock()

	w.logger.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
}

func (w *Watcher) flush(ctx context.Context, now time.Time) {
	w.mu.Lock()
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	if err := w.reload(ctx); err != nil {
		w.logger.Error("reload content", zap.String("dir", w.dir), zap.Error(err))
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	w.stats.Reloads++
	w.mu.Unlock()
	w.logger.Info("content reloaded", zap.String("dir", w.dir))
}
