package bot

import "github.com/mcoot/scrabby/internal/services/movegen"

// Strategy picks one move from a ranking. Rankings are validated as they
// are read, so a strategy should pull no more than it needs.
type Strategy interface {
	Choose(ranking *movegen.Ranking) (movegen.Candidate, bool)
}

// BestStrategy always plays the highest scoring legal move
type BestStrategy struct{}

// NewBestStrategy creates a new BestStrategy
func NewBestStrategy() *BestStrategy {
	return &BestStrategy{}
}

// Choose returns the first legal move of the ranking
func (s *BestStrategy) Choose(ranking *movegen.Ranking) (movegen.Candidate, bool) {
	return ranking.Next()
}
