package genius

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds client configuration.
type Config struct {
	AccessToken    string       // Required: Genius API access token
	HTTPClient     *http.Client // Optional: HTTP client (defaults to a 15s-timeout client)
	BaseURL        string       // Optional: API base URL (defaults to the Genius API, used for testing)
	LyricsBaseURL  string       // Optional: rewrites song page hosts (used for testing)
	ExcludedTerms  []string     // Optional: title substrings that disqualify a search hit
	RequestsPerSec float64      // Optional: outbound rate limit (defaults to 5 req/s)
	Logger         Logger       // Optional: logger for debug output
}

// Logger is an optional interface for debug logging.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Genius API operations.
type Client struct {
	accessToken   string
	httpClient    *http.Client
	baseURL       string
	lyricsBaseURL string
	excluded      []string
	limiter       *rate.Limiter
	logger        Logger
}

const (
	// DefaultBaseURL is the default Genius API endpoint.
	DefaultBaseURL = "https://api.genius.com"

	defaultTimeout        = 15 * time.Second
	defaultRequestsPerSec = 5
)

// DefaultExcludedTerms lists title fragments that mark alternate versions
// which should not be matched by a plain title search.
var DefaultExcludedTerms = []string{"(Remix)", "(Live)"}

// NewClient creates a new Genius API client.
//
// Returns an error if the access token is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("genius: AccessToken is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	excluded := cfg.ExcludedTerms
	if excluded == nil {
		excluded = DefaultExcludedTerms
	}

	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = defaultRequestsPerSec
	}

	return &Client{
		accessToken:   cfg.AccessToken,
		httpClient:    httpClient,
		baseURL:       baseURL,
		lyricsBaseURL: cfg.LyricsBaseURL,
		excluded:      excluded,
		limiter:       rate.NewLimiter(rate.Limit(rps), 1),
		logger:        cfg.Logger,
	}, nil
}

func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
