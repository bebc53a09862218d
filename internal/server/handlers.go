package server

import (
	"encoding/json"
	"errors"
	"image/color"
	"image/png"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vijay8143/lyrics-explorer/internal/analyzer"
	"github.com/Vijay8143/lyrics-explorer/internal/history"
	"github.com/Vijay8143/lyrics-explorer/internal/wordcloud"
	"github.com/Vijay8143/lyrics-explorer/pkg/genius"
)

// songResponse is the JSON shape of GET /api/song.
type songResponse struct {
	Found       bool                 `json:"found"`
	Title       string               `json:"title,omitempty"`
	Artist      string               `json:"artist,omitempty"`
	URL         string               `json:"url,omitempty"`
	ArtworkURL  string               `json:"artworkUrl,omitempty"`
	Lyrics      string               `json:"lyrics,omitempty"`
	TotalWords  int                  `json:"totalWords"`
	UniqueWords int                  `json:"uniqueWords"`
	UniqueRatio float64              `json:"uniqueRatio"`
	TopWords    []analyzer.WordCount `json:"topWords"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSong(w http.ResponseWriter, r *http.Request) {
	artist, title, ok := s.searchParams(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "title is required"})
		return
	}

	maxWords := intParam(r, "max_words", s.opts.TopWordsCount)

	result, err := s.client.Lyrics(r.Context(), artist, title)
	if errors.Is(err, genius.ErrNotFound) {
		s.metrics.observeSearch(outcomeNotFound)
		s.recordSearch(r, artist, title, false, analyzer.Result{})
		writeJSON(w, http.StatusOK, songResponse{Found: false, TopWords: []analyzer.WordCount{}})
		return
	}
	if err != nil {
		s.metrics.observeSearch(outcomeError)
		s.logger.Error().Err(err).Str("title", title).Str("artist", artist).Msg("lyrics lookup failed")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "lyrics provider unavailable, please try again"})
		return
	}

	stats := s.analyzer.Analyze(result.Lyrics, maxWords)
	s.metrics.observeSearch(outcomeFound)
	s.recordSearch(r, result.Song.Artist, result.Song.Title, true, stats)

	writeJSON(w, http.StatusOK, songResponse{
		Found:       true,
		Title:       result.Song.Title,
		Artist:      result.Song.Artist,
		URL:         result.Song.URL,
		ArtworkURL:  result.Song.ArtworkURL,
		Lyrics:      result.Lyrics,
		TotalWords:  stats.TotalWords,
		UniqueWords: stats.UniqueWords,
		UniqueRatio: stats.UniqueRatio(),
		TopWords:    stats.TopWords,
	})
}

func (s *Server) handleWordCloud(w http.ResponseWriter, r *http.Request) {
	artist, title, ok := s.searchParams(r)
	if !ok {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	// The image endpoint fetches the lyrics again rather than reusing the
	// /api/song lookup: each request stays self-contained and nothing is
	// cached server-side. The client rate limiter keeps the extra round
	// trip within the provider budget.
	result, err := s.client.Lyrics(r.Context(), artist, title)
	if errors.Is(err, genius.ErrNotFound) {
		http.Error(w, "song not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Str("title", title).Msg("lyrics lookup failed")
		http.Error(w, "lyrics provider unavailable", http.StatusBadGateway)
		return
	}

	maxWords := intParam(r, "max_words", wordcloud.DefaultMaxWords)
	stats := s.analyzer.Analyze(result.Lyrics, maxWords)

	freqs := make(map[string]int, len(stats.TopWords))
	for _, wc := range stats.TopWords {
		freqs[wc.Word] = wc.Count
	}

	img, err := wordcloud.Render(freqs, wordcloud.Config{
		Width:      intParam(r, "width", 0),
		Height:     intParam(r, "height", 0),
		Background: parseHexColor(r.URL.Query().Get("background")),
		Colormap:   r.URL.Query().Get("colormap"),
		MaxWords:   maxWords,
		Seed:       int64(intParam(r, "seed", 0)),
	})
	if errors.Is(err, wordcloud.ErrNoWords) {
		http.Error(w, "nothing to draw for this song", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("word cloud render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.logger.Error().Err(err).Msg("word cloud encode failed")
	}
}

// searchParams extracts the artist/title pair, applying the default artist.
// ok is false when the title is missing.
func (s *Server) searchParams(r *http.Request) (artist, title string, ok bool) {
	title = strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		return "", "", false
	}
	artist = strings.TrimSpace(r.URL.Query().Get("artist"))
	if artist == "" {
		artist = s.opts.DefaultArtist
	}
	return artist, title, true
}

func (s *Server) recordSearch(r *http.Request, artist, title string, found bool, stats analyzer.Result) {
	if s.history == nil {
		return
	}
	_, err := s.history.Record(r.Context(), history.Entry{
		Artist:      artist,
		Title:       title,
		Found:       found,
		TotalWords:  stats.TotalWords,
		UniqueWords: stats.UniqueWords,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to record search history")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// parseHexColor parses "#rrggbb" (with or without the hash). Invalid or empty
// values return nil, which the renderer treats as white.
func parseHexColor(raw string) color.Color {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(raw) != 6 {
		return nil
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return nil
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
