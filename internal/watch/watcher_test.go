package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatcher_ReloadsOnSiteFileChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	siteFile := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(siteFile, []byte("brand: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reloads := make(chan struct{}, 4)
	w, err := New(dir, func(context.Context) error {
		reloads <- struct{}{}
		return nil
	}, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.Stop()

	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(siteFile, []byte("brand: {name: Luv}\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-reloads:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected reload after change")
	}

	// A burst of writes collapses into one reload.
	select {
	case <-reloads:
		t.Fatalf("expected a single reload for one burst")
	case <-time.After(150 * time.Millisecond):
	}

	stats := w.Stats()
	if stats.Reloads != 1 || stats.Events == 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if filepath.Base(stats.LastEventPath) != "site.yaml" {
		t.Fatalf("expected last event on site.yaml, got %q", stats.LastEventPath)
	}
}

func TestWatcher_ReloadErrorCounted(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	attempted := make(chan struct{}, 1)
	w, err := New(dir, func(context.Context) error {
		select {
		case attempted <- struct{}{}:
		default:
		}
		return errors.New("broken yaml")
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "site.json"), []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-attempted:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected reload attempt")
	}
	w.Stop()

	if stats := w.Stats(); stats.Errors == 0 || stats.Reloads != 0 {
		t.Fatalf("expected error to be counted, got %+v", stats)
	}
}

func TestWatcher_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := New(t.TempDir(), func(context.Context) error { return nil })
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	cancel()

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("expected loop to exit on cancel")
	}
	w.Stop()
	w.Stop()
}

func TestNew_Validation(t *testing.T) {
	if _, err := New("", func(context.Context) error { return nil }); err == nil {
		t.Fatalf("expected error for empty directory")
	}
	if _, err := New(t.TempDir(), nil); err == nil {
		t.Fatalf("expected error for nil reload")
	}
}
