package carousel

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/api"); got != "/api/carousel/{name}" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("api"); got != "/api/carousel/{name}" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/api/", WithRoutePath("windows/{name}")); got != "/api/windows/{name}" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/api", WithSource(letterSource(3)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/api/carousel/{name}" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/carousel/letters?start=1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_RequiresMuxAndSource(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/api", WithSource(letterSource(1))); err == nil {
		t.Fatalf("expected error for nil mux")
	}
	if _, err := RegisterRoutes(http.NewServeMux(), "/api"); err == nil {
		t.Fatalf("expected error for missing source")
	}
}

func TestComponent_WrapsOptions(t *testing.T) {
	c := New(WithSource(letterSource(2)), WithDefaultWindow(1))
	if c.Options().DefaultWindow != 1 {
		t.Fatalf("expected default window 1, got %d", c.Options().DefaultWindow)
	}

	mux := http.NewServeMux()
	if _, err := c.RegisterRoutes(mux, ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/carousel/letters", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
