package html

import (
	"testing"
	"time"

	"github.com/goliatone/go-tarotsite/pkg/carousel"
	"github.com/goliatone/go-tarotsite/pkg/content"
	"github.com/goliatone/go-tarotsite/pkg/render"
)

func sampleTestimonials() []content.Testimonial {
	return []content.Testimonial{
		{Initials: "AS", Name: "Anjali S."},
		{Initials: "KT", Name: "Karan T."},
		{Initials: "PR", Name: "Priya R."},
	}
}

func TestTestimonialsCarousel_NavigationDisablesAutoAdvance(t *testing.T) {
	cv, err := testimonialsCarousel(sampleTestimonials(), render.RenderOptions{
		CarouselStart:  2,
		CarouselManual: true,
		AutoAdvance:    8 * time.Second,
	})
	if err != nil {
		t.Fatalf("carousel: %v", err)
	}
	if cv.Mode != carousel.ModeManual.String() {
		t.Fatalf("expected manual mode, got %q", cv.Mode)
	}
	if cv.AutoAdvanceMs != 0 {
		t.Fatalf("expected auto-advance off, got %d", cv.AutoAdvanceMs)
	}
	if cv.Start != 2 || cv.Prev != 2 || cv.Next != 2 {
		t.Fatalf("expected full-window paging around start 2, got start=%d prev=%d next=%d", cv.Start, cv.Prev, cv.Next)
	}
}

func TestTestimonialsCarousel_FirstLoadAutoAdvances(t *testing.T) {
	cv, err := testimonialsCarousel(sampleTestimonials(), render.RenderOptions{
		CarouselWindow: 2,
		AutoAdvance:    8 * time.Second,
	})
	if err != nil {
		t.Fatalf("carousel: %v", err)
	}
	if cv.Mode != carousel.ModeAutoAdvancing.String() || cv.AutoAdvanceMs != 8000 {
		t.Fatalf("expected auto-advancing with 8000ms, got mode=%q ms=%d", cv.Mode, cv.AutoAdvanceMs)
	}
	if cv.PrevHref != "index.html?start=1#testimonials" || cv.NextHref != "index.html?start=2#testimonials" {
		t.Fatalf("unexpected hrefs prev=%q next=%q", cv.PrevHref, cv.NextHref)
	}
}
