package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.CarouselWindow != 3 || cfg.AutoAdvance != 8*time.Second {
		t.Fatalf("unexpected carousel defaults: window=%d auto=%s", cfg.CarouselWindow, cfg.AutoAdvance)
	}
	if cfg.ShutdownTimeout != 10*time.Second || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"TAROTSITE_ADDR":           "127.0.0.1:9000",
		"TAROTSITE_CONTENT_DIR":    "/srv/content",
		"TAROTSITE_WATCH":          "true",
		"TAROTSITE_THEME_VARIANT":  "dawn",
		"TAROTSITE_AUTO_ADVANCE":   "0s",
		"TAROTSITE_WHATSAPP_PHONE": "919876543210",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" || !cfg.Watch || cfg.ContentDir != "/srv/content" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ThemeVariant != "dawn" || cfg.AutoAdvance != 0 || cfg.Phone != "919876543210" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"TAROTSITE_CAROUSEL_WINDOW": "many"}); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	_, err := LoadFrom(map[string]string{
		"TAROTSITE_CAROUSEL_WINDOW": "0",
		"TAROTSITE_WATCH":           "true",
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"carousel window must be positive", "watching requires a content directory"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("TAROTSITE_SHUTDOWN_TIMEOUT", "soon")

	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
