package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mcoot/scrabby/internal/model"
)

// EnvPrefix is prepended to every environment variable, e.g. SCRABBY_SERVER_PORT
const EnvPrefix = "SCRABBY"

// Config is the server configuration
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	Lexicon LexiconConfig `mapstructure:"lexicon"`
}

// EngineConfig holds the board variant and generation settings
type EngineConfig struct {
	BoardSize   int `mapstructure:"board_size"`
	BonusLength int `mapstructure:"bonus_length"`
	Bonus       int `mapstructure:"bonus"`
	// Workers bounds parallel anchor processing. 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
	// TopK is how many moves the random strategy chooses between
	TopK int `mapstructure:"top_k"`
	// MaxResults caps the moves returned by one request. 0 means no cap.
	MaxResults int `mapstructure:"max_results"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StorageConfig selects the storage backend
type StorageConfig struct {
	// Type is "memory" or "redis"
	Type  string      `mapstructure:"type"`
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	AnalysisTTL  time.Duration `mapstructure:"analysis_ttl"`
}

// LoggingConfig controls the slog handler
type LoggingConfig struct {
	// Level is debug, info, warn or error
	Level string `mapstructure:"level"`
	// Format is json or text
	Format string `mapstructure:"format"`
}

// LexiconConfig names the word list loaded at startup
type LexiconConfig struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

var defaults = map[string]any{
	"engine.board_size":            21,
	"engine.bonus_length":          8,
	"engine.bonus":                 50,
	"engine.workers":               0,
	"engine.top_k":                 5,
	"engine.max_results":           100,
	"server.host":                  "",
	"server.port":                  8080,
	"server.read_timeout":          "15s",
	"server.write_timeout":         "60s",
	"server.idle_timeout":          "60s",
	"server.shutdown_timeout":      "30s",
	"storage.type":                 "memory",
	"storage.redis.url":            "redis://localhost:6379",
	"storage.redis.pool_size":      10,
	"storage.redis.min_idle_conns": 2,
	"storage.redis.analysis_ttl":   "24h",
	"logging.level":                "info",
	"logging.format":               "json",
	"lexicon.name":                 "default",
	"lexicon.path":                 "data/words.txt",
}

// Default returns the configuration with no file or environment applied
func Default() Config {
	cfg, err := load(newViper(false))
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from defaults, then the optional file at path,
// then SCRABBY_* environment variables, each overriding the last
func Load(path string) (Config, error) {
	v := newViper(true)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return load(v)
}

func newViper(env bool) *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if !env {
		return v
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail later at startup
func (c Config) Validate() error {
	var errs []error
	if err := model.CheckBoardSize(c.Engine.BoardSize); err != nil {
		errs = append(errs, fmt.Errorf("engine.board_size: %w", err))
	}
	if c.Engine.BonusLength < 0 {
		errs = append(errs, fmt.Errorf("engine.bonus_length must not be negative, got %d", c.Engine.BonusLength))
	}
	if c.Engine.Workers < 0 {
		errs = append(errs, fmt.Errorf("engine.workers must not be negative, got %d", c.Engine.Workers))
	}
	switch c.Storage.Type {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("storage.type must be memory or redis, got %q", c.Storage.Type))
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}
