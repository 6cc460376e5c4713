package factory

import (
	"time"

	"github.com/mcoot/scrabby/internal/dependencies/mocks"
	"github.com/mcoot/scrabby/internal/services/dictionary"
	"github.com/mcoot/scrabby/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(Config{Workers: 2, MaxResults: 100})
}

// NewTestAppWithConfig is NewTestApp with engine settings overridden
func NewTestAppWithConfig(cfg Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, cfg)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is a small lexicon for tests. With HELLO across from (11,11)
// and the rack RADICA the only plays are RADICAL down through either L.
var TestWords = []string{
	"HELLO", "RADICAL",
	"CAT", "CATS", "AT", "AS", "TA", "SAT",
	"DOG", "GOD", "GO",
}

// LoadTestDictionary loads TestWords as the default lexicon
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(dictionary.DefaultLexicon, TestWords)
}
