package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/serviqo/internal/content"
	"github.com/ziadkadry99/serviqo/internal/server"
)

var servePort int

// maintenanceInterval is how often expired activity is pruned.
const maintenanceInterval = time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long: `Starts the HTTP server for the marketing site, the theme API and websocket,
the activity log and newsletter signup. Site content is reloaded when the
content file changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		source, err := content.NewSource(cfg.ContentFile, logger)
		if err != nil {
			return fmt.Errorf("loading site content: %w", err)
		}

		srv, err := server.New(server.Config{
			Port:              cfg.Port,
			AllowAll:          cfg.AllowAllOrigins,
			StorageKey:        cfg.Theme.StorageKey,
			VisitorCookie:     cfg.Theme.VisitorCookie,
			ActivityRetention: cfg.Activity.Retention,
		}, database, source, logger)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.WatchContent && source.Path() != "" {
			source.OnReload(func(site *content.Site) {
				logger.Info("site content updated",
					zap.String("name", site.Name),
					zap.Int("case_studies", len(site.CaseStudies.Items)),
					zap.Int("faq_categories", len(site.FAQ.Categories)),
				)
			})
			go func() {
				if err := source.Watch(ctx); err != nil {
					logger.Error("watching site content", zap.Error(err))
				}
			}()
		}
		go srv.RunMaintenance(ctx, maintenanceInterval)

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutting down server", zap.Error(err))
			}
		}()

		logger.Info("serviqo server starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Port),
			zap.String("database", database.Path()),
			zap.String("content", contentLabel(source)),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func contentLabel(source *content.Source) string {
	if source.Path() == "" {
		return "built-in"
	}
	return source.Path()
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
