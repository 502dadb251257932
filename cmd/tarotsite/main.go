// Command tarotsite serves, builds and previews the Tarot by Luv site.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tarotsite "github.com/goliatone/go-tarotsite"
	"github.com/goliatone/go-tarotsite/internal/config"
	"github.com/goliatone/go-tarotsite/internal/logging"
	"github.com/goliatone/go-tarotsite/pkg/render"
)

var (
	// Flags shared by every command. Unset flags keep the TAROTSITE_* value.
	contentDir   string
	themeName    string
	themeVariant string
	logLevel     string
	verbose      bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tarotsite",
	Short: "Tarot by Luv marketing site",
	Long: `tarotsite renders the Tarot by Luv pages from a content document.

Serve them over HTTP, build a static copy, or preview the testimonials
carousel in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		applyStringFlag(cmd, "content", contentDir, &cfg.ContentDir)
		applyStringFlag(cmd, "theme", themeName, &cfg.Theme)
		applyStringFlag(cmd, "variant", themeVariant, &cfg.ThemeVariant)
		applyStringFlag(cmd, "log-level", logLevel, &cfg.LogLevel)
		if verbose {
			cfg.LogLevel = "debug"
		}

		logger, err = logging.New(cfg.LogLevel, cfg.Dev)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&contentDir, "content", "", "directory holding site.yaml (embedded content when empty)")
	flags.StringVar(&themeName, "theme", "", "theme name")
	flags.StringVar(&themeVariant, "variant", "", "theme variant")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, buildCmd, previewCmd)
}

func applyStringFlag(cmd *cobra.Command, name, value string, target *string) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyDurationFlag(cmd *cobra.Command, name string, value time.Duration, target *time.Duration) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyIntFlag(cmd *cobra.Command, name string, value int, target *int) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func newRegistry() (*render.Registry, error) {
	return tarotsite.NewRegistry(
		tarotsite.WithTheme(cfg.Theme, cfg.ThemeVariant),
		tarotsite.WithDomain(cfg.Domain),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
