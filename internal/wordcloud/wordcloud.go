// Package wordcloud renders word-frequency tables as images.
//
// The heavy lifting (spiral layout, collision boxes, rasterization) is done by
// github.com/psykhi/wordclouds; this package translates our render settings
// into its options. The library draws word colors from the process-global
// math/rand source and orders tied counts arbitrarily, so Render re-seeds
// that source from the config seed and hands the library strictly distinct
// weights. A given frequency table, config and seed therefore always produce
// the same image.
package wordcloud

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/psykhi/wordclouds"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoWords is returned when there is nothing to draw.
var ErrNoWords = errors.New("wordcloud: empty frequency table")

const (
	DefaultWidth    = 800
	DefaultHeight   = 400
	DefaultMaxWords = 150

	maxDimension = 4096
	minDimension = 100

	// weightScale spreads counts out so every word can get a distinct
	// weight without noticeably changing relative font sizes.
	weightScale = 1000
)

// Config controls the rendered image. Zero values fall back to defaults;
// out-of-range dimensions are clamped rather than rejected.
type Config struct {
	Width      int
	Height     int
	Background color.Color // nil means white
	Colormap   string      // palette name, see Colormaps
	MaxWords   int
	Seed       int64 // seeds color selection; same seed, same image
}

var (
	fontOnce sync.Once
	fontPath string
	fontErr  error

	// The layout library keeps its random state in the global source, so
	// renders are serialized to keep seeding effective under concurrency.
	renderMu sync.Mutex
)

// Render draws a word cloud for the given frequency table.
func Render(freqs map[string]int, cfg Config) (image.Image, error) {
	if len(freqs) == 0 {
		return nil, ErrNoWords
	}

	width := clamp(cfg.Width, minDimension, maxDimension, DefaultWidth)
	height := clamp(cfg.Height, minDimension, maxDimension, DefaultHeight)
	maxWords := cfg.MaxWords
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	background := cfg.Background
	if background == nil {
		background = color.White
	}

	font, err := fontFile()
	if err != nil {
		return nil, fmt.Errorf("wordcloud: %w", err)
	}

	renderMu.Lock()
	defer renderMu.Unlock()

	cloud := wordclouds.NewWordcloud(
		layoutWeights(freqs, maxWords),
		wordclouds.FontFile(font),
		wordclouds.Width(width),
		wordclouds.Height(height),
		wordclouds.FontMaxSize(height/4),
		wordclouds.FontMinSize(10),
		wordclouds.Colors(Palette(cfg.Colormap, cfg.Seed)),
		wordclouds.BackgroundColor(background),
		wordclouds.RandomPlacement(false),
	)

	// NewWordcloud re-seeds the global source from the clock; override it so
	// the color picks during Draw depend only on the config seed.
	rand.Seed(cfg.Seed)

	return cloud.Draw(), nil
}

// layoutWeights keeps the highest-count entries and maps their counts onto
// strictly distinct weights. The layout library sorts its word list by count
// alone, so tied counts would otherwise reorder between runs; the rank-based
// adjustment makes the ordering total while preserving it for distinct
// counts. Ties are ranked alphabetically.
func layoutWeights(freqs map[string]int, n int) map[string]int {
	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(freqs))
	for w, c := range freqs {
		entries = append(entries, entry{w, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	out := make(map[string]int, len(entries))
	for rank, e := range entries {
		out[e.word] = e.count*weightScale - rank
	}
	return out
}

// fontFile materializes the embedded Go Regular font to disk once, since the
// layout library loads fonts by path.
func fontFile() (string, error) {
	fontOnce.Do(func() {
		path := filepath.Join(os.TempDir(), "lyrics-explorer-goregular.ttf")
		if info, err := os.Stat(path); err == nil && info.Size() == int64(len(goregular.TTF)) {
			fontPath = path
			return
		}
		if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
			fontErr = fmt.Errorf("writing font file: %w", err)
			return
		}
		fontPath = path
	})
	return fontPath, fontErr
}

func clamp(v, min, max, fallback int) int {
	if v == 0 {
		return fallback
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
