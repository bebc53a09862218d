// Package server wires the lyrics client, analyzer and word-cloud renderer
// behind a single-page HTTP UI.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Vijay8143/lyrics-explorer/internal/analyzer"
	"github.com/Vijay8143/lyrics-explorer/internal/history"
	"github.com/Vijay8143/lyrics-explorer/pkg/genius"
)

// LyricsClient is the part of the Genius client the server depends on.
type LyricsClient interface {
	Lyrics(ctx context.Context, artist, title string) (*genius.Result, error)
}

// Options configures a Server.
type Options struct {
	DefaultArtist string
	TopWordsCount int
	HistorySize   int // entries shown on the page, defaults to 10
}

// Server handles the web UI and the JSON/image endpoints.
type Server struct {
	client   LyricsClient
	analyzer *analyzer.Analyzer
	history  *history.Store // may be nil
	opts     Options
	logger   zerolog.Logger
	metrics  *metrics
}

// New creates a Server. The history store may be nil to disable history.
func New(client LyricsClient, a *analyzer.Analyzer, store *history.Store, opts Options, logger zerolog.Logger) *Server {
	if opts.TopWordsCount <= 0 {
		opts.TopWordsCount = 15
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = 10
	}
	return &Server{
		client:   client,
		analyzer: a,
		history:  store,
		opts:     opts,
		logger:   logger,
		metrics:  newMetrics(),
	}
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/api/song", s.handleSong)
	r.Get("/wordcloud.png", s.handleWordCloud)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// requestLogger logs one line per request with timing, zerolog style.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		s.metrics.observeRequest(r.URL.Path, elapsed)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", elapsed).
			Msg("request")
	})
}
