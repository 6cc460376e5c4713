package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Lexicon operations

func (s *Storage) GetLexiconWords(ctx context.Context, name string) ([]string, error) {
	key := lexiconKey(name)

	// Check if the lexicon exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrDictionaryNotLoaded, name)
	}

	words, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	// Sets are unordered
	slices.Sort(words)
	return words, nil
}

func (s *Storage) SaveLexiconWords(ctx context.Context, name string, words []string) error {
	key := lexiconKey(name)

	// Replace the word set and register the name atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]any, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}
	pipe.SAdd(ctx, lexiconIndexKey(), name)

	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteLexicon(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, lexiconKey(name))
	pipe.SRem(ctx, lexiconIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListLexicons(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, lexiconIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

// Analysis operations

func (s *Storage) SaveAnalysis(ctx context.Context, analysis *model.Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, analysisKey(analysis.ID), data, s.cfg.AnalysisTTL).Err()
}

func (s *Storage) GetAnalysis(ctx context.Context, id model.AnalysisID) (*model.Analysis, error) {
	data, err := s.client.Get(ctx, analysisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAnalysisNotFound
		}
		return nil, err
	}

	var analysis model.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *Storage) DeleteAnalysis(ctx context.Context, id model.AnalysisID) error {
	return s.client.Del(ctx, analysisKey(id)).Err()
}
