package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tarotsite "github.com/goliatone/go-tarotsite"
	"github.com/goliatone/go-tarotsite/internal/server"
	"github.com/goliatone/go-tarotsite/internal/watch"
)

var (
	serveAddr      string
	servePublicDir string
	serveWatch     bool
	serveWindow    int
	serveInterval  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyStringFlag(cmd, "addr", serveAddr, &cfg.Addr)
		applyStringFlag(cmd, "public", servePublicDir, &cfg.PublicDir)
		applyIntFlag(cmd, "window", serveWindow, &cfg.CarouselWindow)
		applyDurationFlag(cmd, "auto-advance", serveInterval, &cfg.AutoAdvance)
		if cmd.Flags().Changed("watch") {
			cfg.Watch = serveWatch
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runServe(cmd.Context())
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
	flags.StringVar(&servePublicDir, "public", "", "directory with extra static files such as the logo")
	flags.BoolVar(&serveWatch, "watch", false, "reload content when the content directory changes")
	flags.IntVar(&serveWindow, "window", 0, "testimonials visible at once")
	flags.DurationVar(&serveInterval, "auto-advance", 0, "testimonials auto-advance interval, 0 disables")
}

func runServe(ctx context.Context) error {
	site, err := tarotsite.LoadContent(cfg.ContentDir)
	if err != nil {
		return err
	}
	registry, err := newRegistry()
	if err != nil {
		return err
	}

	srv, err := server.New(registry, site,
		server.WithLogger(logger),
		server.WithPhone(cfg.Phone),
		server.WithPublicDir(cfg.PublicDir),
		server.WithCarouselWindow(cfg.CarouselWindow),
		server.WithAutoAdvance(cfg.AutoAdvance),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
	)
	if err != nil {
		return err
	}

	if cfg.Watch {
		w, err := watch.New(cfg.ContentDir, func(context.Context) error {
			reloaded, err := tarotsite.LoadContent(cfg.ContentDir)
			if err != nil {
				return err
			}
			return srv.SetSite(reloaded)
		}, watch.WithLogger(logger))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	logger.Info("serving site",
		zap.String("addr", cfg.Addr),
		zap.String("content", contentSource()),
		zap.Bool("watch", cfg.Watch),
	)
	return srv.ListenAndServe(ctx, cfg.Addr)
}

func contentSource() string {
	if cfg.ContentDir == "" {
		return "embedded"
	}
	return cfg.ContentDir
}
