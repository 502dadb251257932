package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	tarotsite "github.com/goliatone/go-tarotsite"
	"github.com/goliatone/go-tarotsite/pkg/console"
	"github.com/goliatone/go-tarotsite/pkg/content"
)

var (
	previewInterval time.Duration
	previewWindow   int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the testimonials carousel in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyIntFlag(cmd, "window", previewWindow, &cfg.CarouselWindow)
		applyDurationFlag(cmd, "interval", previewInterval, &cfg.AutoAdvance)

		site, err := tarotsite.LoadContent(cfg.ContentDir)
		if err != nil {
			return err
		}
		title := site.Page("home-testimonials").Title
		opts := []console.Option{
			console.WithWindow(cfg.CarouselWindow),
			console.WithTitle(title),
		}
		// A zero interval turns auto-advance off on the site; the preview
		// keeps its default cadence instead.
		if cfg.AutoAdvance > 0 {
			opts = append(opts, console.WithInterval(cfg.AutoAdvance))
		}
		return console.Preview(cmd.Context(), console.NewSurveyDriver(os.Stdout), site.Testimonials, formatTestimonial, opts...)
	},
}

func init() {
	flags := previewCmd.Flags()
	flags.DurationVar(&previewInterval, "interval", 0, "auto-advance interval (default 8s)")
	flags.IntVar(&previewWindow, "window", 0, "testimonials visible at once (default 3)")
}

func formatTestimonial(t content.Testimonial) string {
	return fmt.Sprintf("%s (%s): %s", t.Name, t.Location, t.Text)
}
