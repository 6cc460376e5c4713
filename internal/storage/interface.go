package storage

import (
	"context"

	"github.com/mcoot/scrabby/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Lexicon operations
	GetLexiconWords(ctx context.Context, name string) ([]string, error)
	SaveLexiconWords(ctx context.Context, name string, words []string) error
	DeleteLexicon(ctx context.Context, name string) error
	ListLexicons(ctx context.Context) ([]string, error)

	// Analysis operations
	SaveAnalysis(ctx context.Context, analysis *model.Analysis) error
	GetAnalysis(ctx context.Context, id model.AnalysisID) (*model.Analysis, error)
	DeleteAnalysis(ctx context.Context, id model.AnalysisID) error
}
