package bot

import (
	"github.com/mcoot/scrabby/internal/dependencies/random"
	"github.com/mcoot/scrabby/internal/services/movegen"
)

// DefaultTopK is how many of the best moves RandomStrategy chooses between
const DefaultTopK = 5

// RandomStrategy picks uniformly among the top K legal moves
type RandomStrategy struct {
	random random.Random
	topK   int
}

// NewRandomStrategy creates a new RandomStrategy. topK <= 0 means DefaultTopK.
func NewRandomStrategy(rnd random.Random, topK int) *RandomStrategy {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &RandomStrategy{random: rnd, topK: topK}
}

// Choose validates at most topK moves and returns one of them at random
func (s *RandomStrategy) Choose(ranking *movegen.Ranking) (movegen.Candidate, bool) {
	top := ranking.Take(s.topK)
	if len(top) == 0 {
		return movegen.Candidate{}, false
	}
	return top[s.random.Intn(len(top))], true
}
