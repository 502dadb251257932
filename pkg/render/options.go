package render

import "time"

// DefaultCarouselWindow is the number of testimonials shown at once.
const DefaultCarouselWindow = 3

// RenderOptions carry per-request state that changes the output without
// touching the site content.
type RenderOptions struct {
	// CarouselStart is the index of the first visible testimonial. Any
	// integer is accepted; it is normalised against the list length.
	CarouselStart int
	// CarouselWindow is the number of testimonials visible at once. Zero
	// selects DefaultCarouselWindow.
	CarouselWindow int
	// CarouselManual marks that the visitor has navigated the carousel, which
	// permanently switches off auto-advance for the rendered view.
	CarouselManual bool
	// AutoAdvance is published on the carousel markup for client-side
	// enhancement. Zero disables it.
	AutoAdvance time.Duration
	// Values pre-populates the contact form.
	Values map[string]string
	// Errors holds contact form errors keyed by field name.
	Errors map[string][]string
	// FormErrors holds errors that do not belong to a single field.
	FormErrors []string
	// Notice is a confirmation message shown above the contact form.
	Notice string
}

// Window returns the carousel window size to use.
func (o RenderOptions) Window() int {
	if o.CarouselWindow <= 0 {
		return DefaultCarouselWindow
	}
	return o.CarouselWindow
}
