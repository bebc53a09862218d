package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Address the HTTP server binds to
	ListenAddr string

	// Artist used when the user leaves the artist field blank
	DefaultArtist string

	// Number of words shown in the top-words table
	TopWordsCount int

	// Path to the SQLite search-history database; empty disables history
	HistoryDB string

	// Genius API settings
	Genius GeniusConfig

	// Extra stop words merged into the analyzer's default set
	ExtraStopWords []string
}

// GeniusConfig holds Genius specific configuration
type GeniusConfig struct {
	Token          string
	TimeoutSeconds int
	RequestsPerSec float64
	ExcludedTerms  []string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("default_artist", "Taylor Swift")
	v.SetDefault("top_words_count", 15)
	v.SetDefault("history_db", defaultHistoryDB())
	v.SetDefault("genius.timeout_seconds", 15)
	v.SetDefault("genius.requests_per_sec", 5)
	v.SetDefault("genius.excluded_terms", []string{"(Remix)", "(Live)"})

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	v.SetEnvPrefix("LYRICS")
	v.AutomaticEnv()

	// The bare GENIUS_TOKEN name matches the original deployment.
	_ = v.BindEnv("genius.token", "GENIUS_TOKEN", "LYRICS_GENIUS_TOKEN")

	cfg := &Config{
		ListenAddr:    v.GetString("listen_addr"),
		DefaultArtist: v.GetString("default_artist"),
		TopWordsCount: v.GetInt("top_words_count"),
		HistoryDB:     v.GetString("history_db"),
		Genius: GeniusConfig{
			Token:          v.GetString("genius.token"),
			TimeoutSeconds: v.GetInt("genius.timeout_seconds"),
			RequestsPerSec: v.GetFloat64("genius.requests_per_sec"),
			ExcludedTerms:  v.GetStringSlice("genius.excluded_terms"),
		},
		ExtraStopWords: v.GetStringSlice("extra_stop_words"),
	}

	return cfg, nil
}

// Validate checks that the configuration can actually serve requests.
func (c *Config) Validate() error {
	if c.Genius.Token == "" {
		return fmt.Errorf("Genius token not configured: set GENIUS_TOKEN")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.TopWordsCount <= 0 {
		return fmt.Errorf("top_words_count must be positive")
	}
	return nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "lyrics-explorer")
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

func defaultHistoryDB() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(homeDir, ".local", "share", "lyrics-explorer", "history.db")
}
