package html

import (
	"fmt"
	"strconv"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tarotsite/pkg/carousel"
	"github.com/goliatone/go-tarotsite/pkg/chatlink"
	"github.com/goliatone/go-tarotsite/pkg/content"
	"github.com/goliatone/go-tarotsite/pkg/pages"
	"github.com/goliatone/go-tarotsite/pkg/render"
)

// TestimonialsAnchor is the fragment the carousel navigation links target.
const TestimonialsAnchor = "testimonials"

type themeView struct {
	Name       string `json:"name"`
	Variant    string `json:"variant"`
	Style      string `json:"style"`
	Stylesheet string `json:"stylesheet"`
}

type pageView struct {
	Slug     string `json:"slug"`
	Label    string `json:"label"`
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Intro    string `json:"intro"`
}

type navLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type carouselView struct {
	Name          string                `json:"name"`
	Items         []content.Testimonial `json:"items"`
	Start         int                   `json:"start"`
	Prev          int                   `json:"prev"`
	Next          int                   `json:"next"`
	Size          int                   `json:"size"`
	Total         int                   `json:"total"`
	Mode          string                `json:"mode"`
	PrevHref      string                `json:"prevHref"`
	NextHref      string                `json:"nextHref"`
	AutoAdvanceMs int64                 `json:"autoAdvanceMs"`
}

type formView struct {
	Action     string              `json:"action"`
	Values     map[string]string   `json:"values"`
	Errors     map[string][]string `json:"errors"`
	FormErrors []string            `json:"formErrors"`
	Notice     string              `json:"notice"`
}

func buildThemeView(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	view := themeView{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Style:   cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		view.Stylesheet = cfg.AssetURL(StylesheetAsset)
	}
	return view
}

func buildView(req render.Request, th themeView) (map[string]any, error) {
	site := req.Site
	page := req.Page
	pageCopy := site.Page(page.ContentKey())

	view := map[string]any{
		"site": site,
		"page": pageView{
			Slug:     page.Slug(),
			Label:    page.Label(),
			Filename: page.Filename(),
			Title:    pageCopy.Title,
			Intro:    pageCopy.Intro,
		},
		"nav":     navLinks(page),
		"chatURL": chatlink.Link(site.Contact.Phone, pageCopy.ChatMessage),
		"theme":   th,
	}

	switch page {
	case pages.Home:
		cv, err := testimonialsCarousel(site.Testimonials, req.Options)
		if err != nil {
			return nil, err
		}
		view["carousel"] = cv
		view["sections"] = map[string]content.PageCopy{
			"services":     site.Page("home-services"),
			"testimonials": site.Page("home-testimonials"),
			"cta":          site.Page("home-cta"),
		}
	case pages.Book:
		view["confirmURL"] = chatlink.Link(site.Contact.Phone, site.Booking.ConfirmMessage)
	case pages.Contact:
		view["form"] = buildFormView(req.Options)
	}
	return view, nil
}

func navLinks(active pages.Page) []navLink {
	all := pages.All()
	links := make([]navLink, 0, len(all))
	for _, p := range all {
		links = append(links, navLink{
			Label:  p.Label(),
			Href:   p.Filename(),
			Active: p == active,
		})
	}
	return links
}

func testimonialsCarousel(items []content.Testimonial, opts render.RenderOptions) (carouselView, error) {
	c, err := carousel.New(items, opts.Window())
	if err != nil {
		return carouselView{}, fmt.Errorf("testimonials carousel: %w", err)
	}
	w := c.Window()

	state := w.Initial()
	switch {
	case opts.CarouselManual:
		state = w.At(opts.CarouselStart)
	case opts.CarouselStart != 0:
		state.Start = w.At(opts.CarouselStart).Start
	}
	prev := w.Retreat(state)
	next := w.Advance(state)

	cv := carouselView{
		Name:     TestimonialsAnchor,
		Items:    carousel.Visible(c.Items(), w, state),
		Start:    state.Start,
		Prev:     prev.Start,
		Next:     next.Start,
		Size:     w.Size(),
		Total:    w.Len(),
		Mode:     state.Mode.String(),
		PrevHref: carouselHref(prev.Start),
		NextHref: carouselHref(next.Start),
	}
	if state.Mode == carousel.ModeAutoAdvancing && opts.AutoAdvance > 0 {
		cv.AutoAdvanceMs = opts.AutoAdvance.Milliseconds()
	}
	return cv, nil
}

func carouselHref(start int) string {
	return pages.Home.Filename() + "?start=" + strconv.Itoa(start) + "#" + TestimonialsAnchor
}

func buildFormView(opts render.RenderOptions) formView {
	form := formView{
		Action:     pages.Contact.Filename(),
		Values:     make(map[string]string, len(opts.Values)),
		Errors:     make(map[string][]string, len(opts.Errors)),
		FormErrors: opts.FormErrors,
		Notice:     opts.Notice,
	}
	for key, value := range opts.Values {
		form.Values[key] = value
	}
	for key, messages := range opts.Errors {
		form.Errors[key] = append([]string(nil), messages...)
	}
	return form
}
