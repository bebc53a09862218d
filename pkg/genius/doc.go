// Package genius provides a client library for the Genius API.
//
// # Overview
//
// This package implements a small Go client for Genius, focusing on song
// search and lyrics retrieval. It provides a type-safe API with context
// support, structured errors, and a single retry for transient failures.
//
// The Genius API itself does not serve lyrics text. The client therefore
// works in two steps: it resolves a song through the search endpoint, then
// extracts the lyrics from the song's public page.
//
// # Quick Start
//
//	client, err := genius.NewClient(genius.Config{
//	    AccessToken: os.Getenv("GENIUS_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Lyrics(ctx, "Taylor Swift", "Love Story")
//	switch {
//	case errors.Is(err, genius.ErrNotFound):
//	    fmt.Println("no such song")
//	case err != nil:
//	    log.Fatal(err)
//	default:
//	    fmt.Println(result.Lyrics)
//	}
//
// # Error Handling
//
// A song that cannot be found is reported as genius.ErrNotFound, which is a
// valid outcome rather than a provider failure. Provider failures carry a
// *genius.Error with the HTTP status code:
//
//	var apiErr *genius.Error
//	if errors.As(err, &apiErr) && apiErr.Temporary() {
//	    // the request may be retried
//	}
//
// # Context Support
//
// All methods accept a context.Context for cancellation and timeouts.
package genius
