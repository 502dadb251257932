package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tarotsite "github.com/goliatone/go-tarotsite"
	"github.com/goliatone/go-tarotsite/pkg/content"
	"github.com/goliatone/go-tarotsite/pkg/pages"
	"github.com/goliatone/go-tarotsite/pkg/render"
)

var (
	buildOut       string
	buildMarkdown  bool
	buildPublicDir string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the site as static files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyStringFlag(cmd, "public", buildPublicDir, &cfg.PublicDir)

		site, err := tarotsite.LoadContent(cfg.ContentDir)
		if err != nil {
			return err
		}
		registry, err := newRegistry()
		if err != nil {
			return err
		}
		written, err := buildSite(cmd.Context(), registry, site, buildOptions{
			outDir:    buildOut,
			markdown:  buildMarkdown,
			publicDir: cfg.PublicDir,
			phone:     cfg.Phone,
			window:    cfg.CarouselWindow,
			interval:  cfg.AutoAdvance,
		})
		if err != nil {
			return err
		}
		logger.Info("site built", zap.String("out", buildOut), zap.Int("files", len(written)))
		return nil
	},
}

func init() {
	flags := buildCmd.Flags()
	flags.StringVarP(&buildOut, "out", "o", "dist", "output directory")
	flags.BoolVar(&buildMarkdown, "markdown", false, "also write a Markdown rendition of every page")
	flags.StringVar(&buildPublicDir, "public", "", "directory with extra static files copied to the output root")
}

type buildOptions struct {
	outDir    string
	markdown  bool
	publicDir string
	phone     string
	window    int
	interval  time.Duration
}

// buildSite renders every page into outDir and copies the stylesheet and
// public files next to them. It returns the written paths relative to outDir.
func buildSite(ctx context.Context, registry *render.Registry, site *content.Site, opts buildOptions) ([]string, error) {
	if opts.outDir == "" {
		return nil, errors.New("build: output directory is required")
	}
	if opts.phone != "" {
		copied := *site
		copied.Contact.Phone = opts.phone
		site = &copied
	}
	renderOpts := tarotsite.RenderOptions{CarouselWindow: opts.window, AutoAdvance: opts.interval}

	var written []string
	writeFile := func(rel string, data []byte) error {
		target := filepath.Join(opts.outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("build: %w", err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("build: %w", err)
		}
		written = append(written, rel)
		return nil
	}

	for _, page := range pages.All() {
		locations := []string{page.Filename()}
		if opts.markdown {
			locations = append(locations, page.MarkdownFilename())
		}
		for _, location := range locations {
			out, err := tarotsite.RenderLocation(ctx, registry, site, location, renderOpts)
			if err != nil {
				return written, err
			}
			if err := writeFile(location, out.Body); err != nil {
				return written, err
			}
		}
	}

	if err := copyTree(tarotsite.AssetsFS(), "assets", writeFile); err != nil {
		return written, err
	}
	if opts.publicDir != "" {
		if err := copyTree(os.DirFS(opts.publicDir), "", writeFile); err != nil {
			return written, err
		}
	}
	return written, nil
}

func copyTree(fsys fs.FS, prefix string, write func(rel string, data []byte) error) error {
	return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("build: %w", err)
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("build: %w", err)
		}
		rel := name
		if prefix != "" {
			rel = prefix + "/" + name
		}
		return write(rel, data)
	})
}
