package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	lexicons map[string][]string
	analyses map[model.AnalysisID]*model.Analysis
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		lexicons: make(map[string][]string),
		analyses: make(map[model.AnalysisID]*model.Analysis),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Lexicon operations

func (s *Storage) GetLexiconWords(ctx context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.lexicons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrDictionaryNotLoaded, name)
	}
	return slices.Clone(words), nil
}

func (s *Storage) SaveLexiconWords(ctx context.Context, name string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lexicons[name] = slices.Clone(words)
	return nil
}

func (s *Storage) DeleteLexicon(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lexicons, name)
	return nil
}

func (s *Storage) ListLexicons(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := lo.Keys(s.lexicons)
	slices.Sort(names)
	return names, nil
}

// Analysis operations

func (s *Storage) SaveAnalysis(ctx context.Context, analysis *model.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[analysis.ID] = analysis
	return nil
}

func (s *Storage) GetAnalysis(ctx context.Context, id model.AnalysisID) (*model.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	analysis, ok := s.analyses[id]
	if !ok {
		return nil, model.ErrAnalysisNotFound
	}
	return analysis, nil
}

func (s *Storage) DeleteAnalysis(ctx context.Context, id model.AnalysisID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.analyses, id)
	return nil
}
