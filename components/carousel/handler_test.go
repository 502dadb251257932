package carousel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tarotsite/pkg/content"
)

type handlerResponse struct {
	Data struct {
		Name  string   `json:"name"`
		Start int      `json:"start"`
		Prev  int      `json:"prev"`
		Next  int      `json:"next"`
		Size  int      `json:"size"`
		Total int      `json:"total"`
		Items []string `json:"items"`
	} `json:"data"`
}

func letterSource(n int) Source {
	letters := make([]any, n)
	for i := range letters {
		letters[i] = string(rune('A' + i))
	}
	return SourceFunc(func(_ context.Context, name string) ([]any, bool) {
		if name != "letters" {
			return nil, false
		}
		return letters, true
	})
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle("/api/carousel/{name}", h)
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handlerResponse {
	t.Helper()

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestHandler_DefaultWindow(t *testing.T) {
	h := NewHandler(WithSource(letterSource(6)))

	payload := decode(t, serve(t, h, http.MethodGet, "/api/carousel/letters"))
	if diff := cmp.Diff([]string{"A", "B", "C"}, payload.Data.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if payload.Data.Start != 0 || payload.Data.Next != 3 || payload.Data.Prev != 3 {
		t.Fatalf("unexpected navigation: %+v", payload.Data)
	}
	if payload.Data.Name != "letters" || payload.Data.Total != 6 || payload.Data.Size != 3 {
		t.Fatalf("unexpected metadata: %+v", payload.Data)
	}
}

func TestHandler_NextWrapsAroundShortList(t *testing.T) {
	h := NewHandler(WithSource(letterSource(5)))

	payload := decode(t, serve(t, h, http.MethodGet, "/api/carousel/letters?start=0&action=next"))
	if diff := cmp.Diff([]string{"D", "E", "A"}, payload.Data.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if payload.Data.Start != 3 {
		t.Fatalf("expected start 3, got %d", payload.Data.Start)
	}

	back := decode(t, serve(t, h, http.MethodGet, "/api/carousel/letters?start=3&action=prev"))
	if back.Data.Start != 0 {
		t.Fatalf("expected prev to return to 0, got %d", back.Data.Start)
	}
}

func TestHandler_SizeClampedAndNormalisedStart(t *testing.T) {
	h := NewHandler(WithSource(letterSource(4)), WithMaxWindow(2))

	payload := decode(t, serve(t, h, http.MethodGet, "/api/carousel/letters?start=-1&size=10"))
	if payload.Data.Size != 2 {
		t.Fatalf("expected size clamped to 2, got %d", payload.Data.Size)
	}
	if diff := cmp.Diff([]string{"D", "A"}, payload.Data.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_Errors(t *testing.T) {
	h := NewHandler(WithSource(letterSource(3)))

	cases := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{name: "unknown carousel", method: http.MethodGet, target: "/api/carousel/planets", want: http.StatusNotFound},
		{name: "bad action", method: http.MethodGet, target: "/api/carousel/letters?action=sideways", want: http.StatusBadRequest},
		{name: "bad start", method: http.MethodGet, target: "/api/carousel/letters?start=abc", want: http.StatusBadRequest},
		{name: "method", method: http.MethodPost, target: "/api/carousel/letters", want: http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, h, tc.method, tc.target)
			if rec.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestHandler_GuardRejects(t *testing.T) {
	h := NewHandler(
		WithSource(letterSource(3)),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	rec := serve(t, h, http.MethodGet, "/api/carousel/letters")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	h := NewHandler(WithSource(letterSource(3)))

	rec := serve(t, h, http.MethodHead, "/api/carousel/letters")
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200, got %d with %d bytes", rec.Code, rec.Body.Len())
	}
}

func TestSiteSource(t *testing.T) {
	site, err := content.Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	source := SiteSource(func() *content.Site { return site })

	items, ok := source.Items(context.Background(), NameServices)
	if !ok || len(items) != len(site.Services) {
		t.Fatalf("expected %d services, got %d (ok=%v)", len(site.Services), len(items), ok)
	}
	if _, ok := source.Items(context.Background(), "unknown"); ok {
		t.Fatalf("expected unknown carousel to be missing")
	}
	if _, ok := SiteSource(func() *content.Site { return nil }).Items(context.Background(), NameTestimonials); ok {
		t.Fatalf("expected nil site to yield no carousel")
	}
}
