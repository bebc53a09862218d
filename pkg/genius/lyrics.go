package genius

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// sectionHeader matches annotations like "[Chorus]" or "[Verse 2: Artist]"
// that Genius embeds in lyrics text.
var sectionHeader = regexp.MustCompile(`\[[^\]\n]*\]`)

// FetchLyrics downloads the song's public page and extracts the lyrics text.
//
// Genius renders lyrics inside div elements marked with the
// data-lyrics-container attribute. Line breaks are encoded as <br> tags and
// are converted back to newlines. Section headers are stripped, matching the
// behavior of the original client configuration.
//
// Returns ErrNotFound when the page contains no lyrics.
func (c *Client) FetchLyrics(ctx context.Context, song *Song) (string, error) {
	pageURL := song.URL
	if c.lyricsBaseURL != "" {
		// Test hook: serve song pages from a local server.
		if i := strings.Index(pageURL, "://"); i >= 0 {
			if j := strings.Index(pageURL[i+3:], "/"); j >= 0 {
				pageURL = c.lyricsBaseURL + pageURL[i+3+j:]
			}
		}
	}

	c.logDebugf("genius: fetching lyrics page %s", pageURL)
	body, err := c.get(ctx, pageURL, false)
	if err != nil {
		return "", err
	}

	lyrics, err := extractLyrics(body)
	if err != nil {
		return "", err
	}
	if lyrics == "" {
		return "", ErrNotFound
	}
	return lyrics, nil
}

func extractLyrics(page []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", &Error{Message: "parsing song page: " + err.Error()}
	}

	var sb strings.Builder
	doc.Find("div[data-lyrics-container='true']").Each(func(_ int, s *goquery.Selection) {
		// goquery's Text() drops <br> tags entirely, so rewrite them first.
		html, err := s.Html()
		if err != nil {
			return
		}
		html = strings.ReplaceAll(html, "<br>", "\n")
		html = strings.ReplaceAll(html, "<br/>", "\n")
		html = strings.ReplaceAll(html, "<br />", "\n")

		fragment, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return
		}
		sb.WriteString(fragment.Text())
		sb.WriteString("\n")
	})

	return cleanLyrics(sb.String()), nil
}

func cleanLyrics(text string) string {
	text = sectionHeader.ReplaceAllString(text, "")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
