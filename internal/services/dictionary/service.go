package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/storage"
)

// DefaultLexicon is the name used when a caller does not pick a lexicon
const DefaultLexicon = "default"

// Service loads word lists and hands out immutable lexicon snapshots
type Service struct {
	storage storage.Storage

	mu       sync.RWMutex
	lexicons map[string]*model.Lexicon
}

// New creates a new DictionaryService
func New(storage storage.Storage) *Service {
	return &Service{
		storage:  storage,
		lexicons: make(map[string]*model.Lexicon),
	}
}

// LoadFromStorage loads a named lexicon from storage
func (s *Service) LoadFromStorage(ctx context.Context, name string) error {
	name = resolveName(name)
	words, err := s.storage.GetLexiconWords(ctx, name)
	if err != nil {
		return err
	}
	return s.loadWords(name, words)
}

// LoadFromFile loads a word list from a file (one word per line) and saves it to storage
func (s *Service) LoadFromFile(ctx context.Context, name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.LoadFromReader(ctx, name, file)
}

// LoadFromReader loads a word list from r (one word per line) and saves it to storage
func (s *Service) LoadFromReader(ctx context.Context, name string, r io.Reader) error {
	name = resolveName(name)

	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	lex := model.NewLexicon(words)
	if lex.Len() == 0 {
		return fmt.Errorf("%w: %s", model.ErrEmptyLexicon, name)
	}

	// Save to storage for future use
	if err := s.storage.SaveLexiconWords(ctx, name, lex.Words()); err != nil {
		return err
	}

	s.set(name, lex)
	return nil
}

// LoadAll loads every lexicon saved in storage and returns their names
func (s *Service) LoadAll(ctx context.Context) ([]string, error) {
	names, err := s.storage.ListLexicons(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := s.LoadFromStorage(ctx, name); err != nil {
			return nil, fmt.Errorf("lexicon %s: %w", name, err)
		}
	}
	return names, nil
}

// Delete unloads the named lexicon and removes it from storage
func (s *Service) Delete(ctx context.Context, name string) error {
	name = resolveName(name)
	if !s.IsLoaded(name) {
		return fmt.Errorf("%w: %s", model.ErrDictionaryNotLoaded, name)
	}
	if err := s.storage.DeleteLexicon(ctx, name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lexicons, name)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(name string, words []string) error {
	return s.loadWords(resolveName(name), words)
}

func (s *Service) loadWords(name string, words []string) error {
	lex := model.NewLexicon(words)
	if lex.Len() == 0 {
		return fmt.Errorf("%w: %s", model.ErrEmptyLexicon, name)
	}
	s.set(name, lex)
	return nil
}

func (s *Service) set(name string, lex *model.Lexicon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lexicons[name] = lex
}

// Lexicon returns the snapshot loaded under name. The snapshot stays valid
// after a reload; callers holding it keep the old words.
func (s *Service) Lexicon(name string) (*model.Lexicon, error) {
	name = resolveName(name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	lex, ok := s.lexicons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrDictionaryNotLoaded, name)
	}
	return lex, nil
}

// IsValidWord checks if a word exists in the named lexicon
func (s *Service) IsValidWord(name, word string) bool {
	lex, err := s.Lexicon(name)
	if err != nil {
		return false
	}
	return lex.Contains(strings.ToUpper(word))
}

// IsLoaded returns whether the named lexicon has been loaded
func (s *Service) IsLoaded(name string) bool {
	_, err := s.Lexicon(name)
	return err == nil
}

// WordCount returns the number of words in the named lexicon
func (s *Service) WordCount(name string) int {
	lex, err := s.Lexicon(name)
	if err != nil {
		return 0
	}
	return lex.Len()
}

// Names returns the loaded lexicon names in sorted order
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := lo.Keys(s.lexicons)
	slices.Sort(names)
	return names
}

func resolveName(name string) string {
	if name == "" {
		return DefaultLexicon
	}
	return name
}

// Interface check
type ServiceInterface interface {
	Lexicon(name string) (*model.Lexicon, error)
	IsValidWord(name, word string) bool
	IsLoaded(name string) bool
	WordCount(name string) int
	Names() []string
	LoadFromStorage(ctx context.Context, name string) error
	LoadFromFile(ctx context.Context, name, path string) error
	LoadFromReader(ctx context.Context, name string, r io.Reader) error
	LoadWords(name string, words []string) error
	LoadAll(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}

var _ ServiceInterface = (*Service)(nil)
