package scoring

import (
	"github.com/mcoot/scrabby/internal/model"
)

// Service scores plays against a board's premium layout
type Service struct {
	rules model.Rules
}

// New creates a new ScoringService
func New(rules model.Rules) *Service {
	return &Service{
		rules: rules,
	}
}

// Rules returns the scoring constants in use
func (s *Service) Rules() model.Rules {
	return s.rules
}

// Score returns the points word would earn if placed on board now.
// The board is not modified, so premiums are only spent by committing.
func (s *Service) Score(board *model.Board, word model.Word) (int, error) {
	b, err := s.Breakdown(board, word)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// Breakdown itemises the score of word in two passes: the word itself,
// then every perpendicular word completed by one of its newly placed letters.
// Cross words are scored once each and never spawn further scoring.
func (s *Service) Breakdown(board *model.Board, word model.Word) (*model.ScoreBreakdown, error) {
	tiles, err := word.Tiles()
	if err != nil {
		return nil, err
	}
	positions, err := word.Positions()
	if err != nil {
		return nil, err
	}
	overlay, err := model.NewOverlay(board, word)
	if err != nil {
		return nil, err
	}

	result := &model.ScoreBreakdown{
		Word:       word,
		Primary:    wordScore(board, tiles, positions, nil),
		CrossWords: []model.CrossWordScore{},
	}
	result.Total = result.Primary

	// Cross pass: only letters placed by this move can form new cross words
	for _, pos := range positions {
		if !board.IsEmpty(pos) {
			continue
		}
		cross, ok := model.FindBoundaryWord(overlay, pos, word.Direction.Opposite())
		if !ok {
			continue
		}
		crossTiles, err := cross.Tiles()
		if err != nil {
			return nil, err
		}
		crossPositions, err := cross.Positions()
		if err != nil {
			return nil, err
		}
		shared := pos
		score := wordScore(board, crossTiles, crossPositions, &shared)
		result.CrossWords = append(result.CrossWords, model.CrossWordScore{
			Word:   cross,
			Shared: shared,
			Score:  score,
		})
		result.Total += score
	}

	if s.rules.BonusLength > 0 && len(tiles) == s.rules.BonusLength {
		result.Bonus = s.rules.Bonus
		result.Total += result.Bonus
	}

	return result, nil
}

// wordScore sums letter values along positions. Premiums apply only on
// squares still empty on the real board and, when shared is set, only on
// that one square.
func wordScore(board *model.Board, tiles []model.Tile, positions []model.Position, shared *model.Position) int {
	premiums := board.Premiums()
	sum := 0
	multiplier := 1
	for i, pos := range positions {
		letterMultiplier := 1
		if board.IsEmpty(pos) && (shared == nil || *shared == pos) {
			letterMultiplier = premiums.Letter(pos)
			multiplier *= premiums.Word(pos)
		}
		sum += tiles[i].Value() * letterMultiplier
	}
	return sum * multiplier
}

// Interface for dependency injection
type ServiceInterface interface {
	Rules() model.Rules
	Score(board *model.Board, word model.Word) (int, error)
	Breakdown(board *model.Board, word model.Word) (*model.ScoreBreakdown, error)
}

var _ ServiceInterface = (*Service)(nil)
