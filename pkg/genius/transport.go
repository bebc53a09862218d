package genius

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	// maxAttempts caps the request loop at the original attempt plus one retry.
	maxAttempts  = 2
	retryBackoff = 1 * time.Second
)

// get performs a GET with the outbound rate limit and a single retry for
// temporary failures. When authed is true the bearer token is attached.
func (c *Client) get(ctx context.Context, url string, authed bool) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			c.logDebugf("genius: retrying %s after %v", url, retryBackoff)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		// Each attempt takes a limiter token, so a retry cannot slip past
		// the outbound rate limit.
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, &Error{Message: err.Error()}
		}
		req.Header.Set("User-Agent", "lyrics-explorer/1.0")
		if authed {
			req.Header.Set("Authorization", "Bearer "+c.accessToken)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = &Error{Message: err.Error()}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = &Error{Message: "reading response: " + err.Error()}
			continue
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		httpErr := &Error{StatusCode: resp.StatusCode, Message: "request to " + url + " failed"}
		if !httpErr.Temporary() {
			return nil, httpErr
		}
		lastErr = httpErr
	}

	return nil, lastErr
}
