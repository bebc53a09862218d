package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Vijay8143/lyrics-explorer/internal/analyzer"
	"github.com/Vijay8143/lyrics-explorer/internal/history"
	"github.com/Vijay8143/lyrics-explorer/pkg/genius"
)

type fakeClient struct {
	result     *genius.Result
	err        error
	lastArtist string
	lastTitle  string
}

func (f *fakeClient) Lyrics(ctx context.Context, artist, title string) (*genius.Result, error) {
	f.lastArtist = artist
	f.lastTitle = title
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestServer(t *testing.T, client LyricsClient, store *history.Store) *Server {
	t.Helper()
	return New(client, analyzer.New(), store, Options{
		DefaultArtist: "Taylor Swift",
		TopWordsCount: 15,
	}, zerolog.Nop())
}

func foundResult() *genius.Result {
	return &genius.Result{
		Found: true,
		Song: genius.Song{
			ID:     42,
			Title:  "Love Story",
			Artist: "Taylor Swift",
			URL:    "https://genius.com/love-story",
		},
		Lyrics: "Romeo Romeo Romeo waiting waiting forever",
	}
}

func TestHandleSongFound(t *testing.T) {
	client := &fakeClient{result: foundResult()}
	srv := newTestServer(t, client, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/song?title=Love+Story", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp songResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Found {
		t.Error("expected found = true")
	}
	if resp.TotalWords != 6 {
		t.Errorf("totalWords = %d, want 6", resp.TotalWords)
	}
	if resp.UniqueWords != 3 {
		t.Errorf("uniqueWords = %d, want 3", resp.UniqueWords)
	}
	if len(resp.TopWords) == 0 || resp.TopWords[0].Word != "romeo" {
		t.Errorf("topWords = %v, want romeo first", resp.TopWords)
	}
	if client.lastArtist != "Taylor Swift" {
		t.Errorf("default artist not applied, got %q", client.lastArtist)
	}
}

func TestHandleSongNotFound(t *testing.T) {
	client := &fakeClient{err: genius.ErrNotFound}
	srv := newTestServer(t, client, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/song?title=Nope", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (not found is a valid outcome)", rec.Code)
	}

	var resp songResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Found {
		t.Error("expected found = false")
	}
}

func TestHandleSongMissingTitle(t *testing.T) {
	srv := newTestServer(t, &fakeClient{}, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/song", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleSongProviderError(t *testing.T) {
	client := &fakeClient{err: &genius.Error{StatusCode: 500, Message: "boom"}}
	srv := newTestServer(t, client, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/song?title=Love+Story", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a user-visible error message")
	}
}

func TestHandleSongExplicitArtist(t *testing.T) {
	client := &fakeClient{result: foundResult()}
	srv := newTestServer(t, client, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/song?title=x&artist=Paramore", nil))

	if client.lastArtist != "Paramore" {
		t.Errorf("artist = %q, want Paramore", client.lastArtist)
	}
}

func TestHandleWordCloud(t *testing.T) {
	client := &fakeClient{result: foundResult()}
	srv := newTestServer(t, client, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/wordcloud.png?title=Love+Story&width=200&height=120", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	// PNG magic bytes.
	if body := rec.Body.Bytes(); len(body) < 8 || string(body[1:4]) != "PNG" {
		t.Error("response is not a PNG image")
	}
}

func TestHandleWordCloudNotFound(t *testing.T) {
	client := &fakeClient{err: genius.ErrNotFound}
	srv := newTestServer(t, client, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/wordcloud.png?title=Nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandleWordCloudNothingToDraw(t *testing.T) {
	// All tokens are stop words or too short, so the table is empty.
	client := &fakeClient{result: &genius.Result{
		Found:  true,
		Song:   genius.Song{Title: "Hmm"},
		Lyrics: "oh oh oh me me",
	}}
	srv := newTestServer(t, client, nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/wordcloud.png?title=Hmm", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestHandleIndex(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.Open() error = %v", err)
	}
	defer store.Close()

	if _, err := store.Record(context.Background(), history.Entry{
		Artist: "Taylor Swift", Title: "Cardigan", Found: true, TotalWords: 200, UniqueWords: 90,
	}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	srv := newTestServer(t, &fakeClient{}, store)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Lyrics Explorer") {
		t.Error("page is missing the title")
	}
	if !strings.Contains(body, "Cardigan") {
		t.Error("page is missing the recent search")
	}
	if !strings.Contains(body, "viridis") {
		t.Error("page is missing colormap options")
	}
}

func TestHandleHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, &fakeClient{result: foundResult()}, nil)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d, want 200", rec.Code)
	}

	// Drive one search so the counter has a sample.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/song?title=Love+Story", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "lyrics_explorer_searches_total") {
		t.Error("metrics output is missing the searches counter")
	}
}

func TestHistoryRecordedOnSearch(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.Open() error = %v", err)
	}
	defer store.Close()

	srv := newTestServer(t, &fakeClient{result: foundResult()}, store)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/song?title=Love+Story", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	recent, err := store.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("history has %d entries, want 1", len(recent))
	}
	if recent[0].Title != "Love Story" || !recent[0].Found {
		t.Errorf("unexpected history entry: %+v", recent[0])
	}
}
