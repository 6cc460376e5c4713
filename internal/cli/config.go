package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Output      string
	Verbose     bool
	Local       bool
	LexiconName string
	LexiconPath string
	BoardSize   int
	Workers     int
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("SCRABBY_SERVER", "http://localhost:8080"),
		Output:      "text",
		Verbose:     false,
		Local:       getEnvOrDefault("SCRABBY_LOCAL", "") == "true",
		LexiconName: getEnvOrDefault("SCRABBY_LEXICON_NAME", "default"),
		LexiconPath: getEnvOrDefault("SCRABBY_LEXICON_PATH", "data/words.txt"),
		BoardSize:   getEnvIntOrDefault("SCRABBY_BOARD_SIZE", 0),
		Workers:     getEnvIntOrDefault("SCRABBY_WORKERS", 0),
	}
}

// Logger returns a debug logger on stderr when verbose, otherwise a silent one
func (c *Config) Logger() *slog.Logger {
	if !c.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultVal
}
