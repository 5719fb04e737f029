package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deckshelf/internal/config"
	"github.com/ziadkadry99/deckshelf/internal/content"
	"github.com/ziadkadry99/deckshelf/internal/db"
	"github.com/ziadkadry99/deckshelf/internal/server"
	"github.com/ziadkadry99/deckshelf/internal/site"
	"github.com/ziadkadry99/deckshelf/internal/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the presentations website",
	Long:  `Starts the HTTP server for the folder grid, the presentation listings and the embedded viewer.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the site in a browser once listening")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	logger := stderrLogger(cfg)

	themes, closeStore, err := openThemeStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	loader := content.NewLoader(cfg.Content.Source, logger)
	if !loader.IsLocal() {
		logger.Info().Str("source", cfg.Content.Source).Msg("content is fetched from a remote URL")
	} else if _, statErr := os.Stat(cfg.Content.Source); statErr != nil {
		logger.Warn().Err(statErr).Msg("content document not found; pages will render empty")
	}

	pages, err := site.New(loader, themes, logger, cfg.Site.Title)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	srv := server.New(server.Config{
		Addr:     cfg.Addr(),
		AllowAll: cfg.Server.AllowAllOrigins,
	}, logger)
	pages.RegisterRoutes(srv.Router())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(siteURL(cfg))
	}

	logger.Info().
		Str("version", Version).
		Str("url", siteURL(cfg)).
		Str("content", cfg.Content.Source).
		Str("theme_store", string(cfg.Theme.Store)).
		Msg("deckshelf starting")

	return srv.Start()
}

// openThemeStore picks where theme preferences live. The returned func
// releases whatever the store holds open.
func openThemeStore(cfg *config.Config, logger zerolog.Logger) (theme.Store, func(), error) {
	if cfg.Theme.Store != config.ThemeStoreSQLite {
		return theme.NewCookieStore(), func() {}, nil
	}

	dbPath := filepath.Join(cfg.DataDir, db.FileName)
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	logger.Info().Str("path", dbPath).Msg("theme preferences stored in sqlite")
	return theme.NewPreferenceStore(database), func() { database.Close() }, nil
}

// siteURL is the address a local browser should use.
func siteURL(cfg *config.Config) string {
	host := cfg.Server.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d/", host, cfg.Server.Port)
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	// Give the listener a moment to come up.
	time.Sleep(300 * time.Millisecond)

	var c *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		c = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		c = exec.Command("open", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	_ = c.Start()
}
