package genius

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// SearchSong resolves a song through the Genius search endpoint.
//
// The query combines the title and, when given, the artist. Hits are filtered
// the way the original Genius clients do: non-song hits are skipped, as are
// alternate versions whose title contains an excluded term. When an artist is
// supplied, the hit's primary artist must match it (case-insensitive,
// substring in either direction, so "Taylor Swift" matches
// "Taylor Swift (Ft. Bon Iver)").
//
// Returns ErrNotFound when no usable hit remains.
func (c *Client) SearchSong(ctx context.Context, artist, title string) (*Song, error) {
	query := strings.TrimSpace(title)
	if artist != "" {
		query = strings.TrimSpace(title + " " + artist)
	}

	endpoint := c.baseURL + "/search?q=" + url.QueryEscape(query)
	c.logDebugf("genius: searching %q", query)

	body, err := c.get(ctx, endpoint, true)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{Message: "decoding search response: " + err.Error()}
	}

	for _, hit := range parsed.Response.Hits {
		if hit.Type != "" && hit.Type != "song" {
			continue
		}
		if c.titleExcluded(hit.Result.Title) {
			continue
		}
		if artist != "" && !artistMatches(artist, hit.Result.PrimaryArtist.Name) {
			continue
		}

		artwork := hit.Result.SongArtImageThumbnailURL
		if artwork == "" {
			artwork = hit.Result.HeaderImageThumbnailURL
		}

		return &Song{
			ID:         hit.Result.ID,
			Title:      hit.Result.Title,
			FullTitle:  hit.Result.FullTitle,
			Artist:     hit.Result.PrimaryArtist.Name,
			URL:        hit.Result.URL,
			ArtworkURL: artwork,
		}, nil
	}

	return nil, ErrNotFound
}

// Lyrics resolves a song and fetches its lyrics in one call.
func (c *Client) Lyrics(ctx context.Context, artist, title string) (*Result, error) {
	song, err := c.SearchSong(ctx, artist, title)
	if err != nil {
		return nil, err
	}

	lyrics, err := c.FetchLyrics(ctx, song)
	if err != nil {
		return nil, err
	}

	return &Result{Found: true, Song: *song, Lyrics: lyrics}, nil
}

func (c *Client) titleExcluded(title string) bool {
	for _, term := range c.excluded {
		if strings.Contains(title, term) {
			return true
		}
	}
	return false
}

func artistMatches(requested, actual string) bool {
	r := strings.ToLower(strings.TrimSpace(requested))
	a := strings.ToLower(strings.TrimSpace(actual))
	return strings.Contains(a, r) || strings.Contains(r, a)
}
