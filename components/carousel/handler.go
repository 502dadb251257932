package carousel

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/goliatone/go-tarotsite/pkg/carousel"
)

// Actions accepted by the action query parameter.
const (
	ActionNone = ""
	ActionNext = "next"
	ActionPrev = "prev"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Window is the JSON view of one carousel page.
type Window struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	Prev  int    `json:"prev"`
	Next  int    `json:"next"`
	Size  int    `json:"size"`
	Total int    `json:"total"`
	Items []any  `json:"items"`
}

type windowResponse struct {
	Data Window `json:"data"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeError(w, err, http.StatusForbidden)
				return
			}
		}

		window, err := resolveWindow(r, opts)
		if err != nil {
			writeError(w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(windowResponse{Data: window})
	})
}

// resolveWindow reads the request, applies the requested action and returns
// the resulting window.
func resolveWindow(r *http.Request, opts Options) (Window, error) {
	name := carouselName(r)
	if opts.Source == nil {
		return Window{}, StatusError{Code: http.StatusNotFound, Err: fmt.Errorf("carousel: no source configured")}
	}
	items, ok := opts.Source.Items(r.Context(), name)
	if !ok {
		return Window{}, StatusError{Code: http.StatusNotFound, Err: fmt.Errorf("carousel: unknown carousel %q", name)}
	}

	query := r.URL.Query()
	start, err := parseInt(query.Get(opts.StartParam))
	if err != nil {
		return Window{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("carousel: invalid %s: %w", opts.StartParam, err)}
	}
	size, err := parseInt(query.Get(opts.SizeParam))
	if err != nil {
		return Window{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("carousel: invalid %s: %w", opts.SizeParam, err)}
	}

	c, err := carousel.New(items, clampWindow(size, opts))
	if err != nil {
		return Window{}, StatusError{Code: http.StatusNotFound, Err: err}
	}
	w := c.Window()
	state := w.At(start)

	switch action := strings.ToLower(strings.TrimSpace(query.Get(opts.ActionParam))); action {
	case ActionNone:
	case ActionNext:
		state = w.Reduce(state, carousel.CommandAdvance)
	case ActionPrev:
		state = w.Reduce(state, carousel.CommandRetreat)
	default:
		return Window{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("carousel: unknown action %q", action)}
	}

	return Window{
		Name:  name,
		Start: state.Start,
		Prev:  w.Retreat(state).Start,
		Next:  w.Advance(state).Start,
		Size:  w.Size(),
		Total: w.Len(),
		Items: carousel.Visible(c.Items(), w, state),
	}, nil
}

func carouselName(r *http.Request) string {
	if name := r.PathValue("name"); name != "" {
		return name
	}
	return path.Base(r.URL.Path)
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	if w == nil {
		return
	}
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = fallback
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func parseInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
