package genius

// Song describes a song resolved through the Genius search endpoint.
type Song struct {
	ID         int    // Genius song ID
	Title      string // Song title as listed on Genius
	FullTitle  string // "Title by Artist" form
	Artist     string // Primary artist name
	URL        string // Public song page (source of the lyrics)
	ArtworkURL string // Thumbnail of the song artwork, may be empty
}

// Result is the outcome of a full lyrics lookup.
//
// Found reports whether the provider knows the song. When Found is false the
// remaining fields are zero values; this is a valid outcome, not an error.
type Result struct {
	Found  bool
	Song   Song
	Lyrics string
}

// searchResponse mirrors the JSON envelope of GET /search.
type searchResponse struct {
	Meta struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"meta"`
	Response struct {
		Hits []searchHit `json:"hits"`
	} `json:"response"`
}

type searchHit struct {
	Type   string `json:"type"`
	Result struct {
		ID                       int    `json:"id"`
		Title                    string `json:"title"`
		FullTitle                string `json:"full_title"`
		URL                      string `json:"url"`
		SongArtImageThumbnailURL string `json:"song_art_image_thumbnail_url"`
		HeaderImageThumbnailURL  string `json:"header_image_thumbnail_url"`
		PrimaryArtist            struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"primary_artist"`
	} `json:"result"`
}
