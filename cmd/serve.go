package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Vijay8143/lyrics-explorer/internal/analyzer"
	"github.com/Vijay8143/lyrics-explorer/internal/config"
	"github.com/Vijay8143/lyrics-explorer/internal/history"
	"github.com/Vijay8143/lyrics-explorer/internal/server"
	"github.com/Vijay8143/lyrics-explorer/pkg/genius"
)

var (
	serveAddr      string
	serveLogLevel  string
	serveHistoryDB string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lyrics explorer web server",
	Long: `Run the web server that powers the lyrics explorer.

The server will:
- Serve the single-page UI on the configured address
- Resolve songs through the Genius API using the GENIUS_TOKEN credential
- Compute word statistics and render word-cloud images per request
- Keep a small search history in SQLite (disable with --history-db="")
- Handle graceful shutdown on SIGINT/SIGTERM

Requests that fail (song not found, provider outage) are reported in the
UI; they never take the server down.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&serveHistoryDB, "history-db", "", "Search history database path (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	if cmd.Flags().Changed("history-db") {
		cfg.HistoryDB = serveHistoryDB
	}

	// Fail fast on a missing credential before binding the listener.
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := setupLogger(serveLogLevel)
	logger.Info().Str("version", version).Msg("Starting lyrics explorer")

	client, err := genius.NewClient(genius.Config{
		AccessToken:    cfg.Genius.Token,
		HTTPClient:     &http.Client{Timeout: time.Duration(cfg.Genius.TimeoutSeconds) * time.Second},
		ExcludedTerms:  cfg.Genius.ExcludedTerms,
		RequestsPerSec: cfg.Genius.RequestsPerSec,
		Logger:         debugLogger{logger},
	})
	if err != nil {
		return fmt.Errorf("failed to create Genius client: %w", err)
	}

	stopWords := analyzer.DefaultStopWords()
	stopWords = append(stopWords, cfg.ExtraStopWords...)
	textAnalyzer := analyzer.NewWithStopWords(stopWords)

	var store *history.Store
	if cfg.HistoryDB != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryDB), 0755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
		store, err = history.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
		logger.Info().Str("history_db", cfg.HistoryDB).Msg("Search history enabled")
	}

	srv := server.New(client, textAnalyzer, store, server.Options{
		DefaultArtist: cfg.DefaultArtist,
		TopWordsCount: cfg.TopWordsCount,
	}, logger)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Handler(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Msg("Listening")
		serverErrors <- httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Graceful shutdown did not complete, closing")
			if err := httpServer.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
		}
	}

	logger.Info().Msg("Server stopped")
	return nil
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logLevel string) zerolog.Logger {
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// debugLogger adapts zerolog to the genius.Logger interface.
type debugLogger struct {
	logger zerolog.Logger
}

func (d debugLogger) Debugf(format string, args ...interface{}) {
	d.logger.Debug().Msgf(format, args...)
}
