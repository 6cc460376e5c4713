package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/scrabby/internal/dependencies/clock"
	"github.com/mcoot/scrabby/internal/dependencies/random"
	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/services/analysis"
	"github.com/mcoot/scrabby/internal/services/board"
	"github.com/mcoot/scrabby/internal/services/bot"
	"github.com/mcoot/scrabby/internal/services/dictionary"
	"github.com/mcoot/scrabby/internal/services/movegen"
	"github.com/mcoot/scrabby/internal/services/scoring"
	"github.com/mcoot/scrabby/internal/storage"
	"github.com/mcoot/scrabby/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabby/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService  *dictionary.Service
	ScoringService     *scoring.Service
	BoardService       *board.Service
	MoveService        *movegen.Service
	BotService         *bot.Service
	AnalysisController *analysis.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Rules are the scoring constants (optional)
	// If nil, defaults to model.DefaultRules(). A zero Rules disables the bonus.
	Rules *model.Rules
	// BoardSize is used when a request does not give one (optional)
	BoardSize int
	// Workers bounds parallel anchor processing; 0 means GOMAXPROCS
	Workers int
	// TopK is how many moves the random strategy chooses between (optional)
	TopK int
	// MaxResults caps the moves a single request may return; 0 means no cap
	MaxResults int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	cfg.Logger = logger
	return newWithDependencies(store, clock.New(), random.New(), cfg), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	rules := model.DefaultRules()
	if cfg.Rules != nil {
		rules = *cfg.Rules
	}
	topK := cfg.TopK
	if topK <= 0 {
		topK = bot.DefaultTopK
	}

	dictService := dictionary.New(store)
	scoringService := scoring.New(rules)
	boardService := board.New(scoringService, logger).WithDefaultSize(cfg.BoardSize)
	moveService := movegen.New(movegen.NewGenerator(scoringService, cfg.Workers), clk, logger)
	botService := bot.NewService(moveService, boardService, bot.DefaultStrategies(rnd, topK), logger)
	analysisController := analysis.NewController(
		store, dictService, boardService, moveService, botService, clk, rnd, cfg.MaxResults, logger,
	)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		DictionaryService:  dictService,
		ScoringService:     scoringService,
		BoardService:       boardService,
		MoveService:        moveService,
		BotService:         botService,
		AnalysisController: analysisController,
	}
}

// LoadLexicon makes the named lexicon available, preferring a copy already
// in storage and falling back to the word list at path
func (a *App) LoadLexicon(ctx context.Context, name, path string) error {
	err := a.DictionaryService.LoadFromStorage(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrDictionaryNotLoaded) || path == "" {
		return err
	}
	return a.DictionaryService.LoadFromFile(ctx, name, path)
}

// Close releases storage connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
