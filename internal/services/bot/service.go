package bot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/mcoot/scrabby/internal/dependencies/random"
	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/services/board"
	"github.com/mcoot/scrabby/internal/services/movegen"
)

// Service chooses and plays moves on behalf of a computer player
type Service struct {
	moveService  *movegen.Service
	boardService *board.Service
	strategies   map[string]Strategy
	logger       *slog.Logger
}

// DefaultStrategies returns the built-in strategies keyed by name
func DefaultStrategies(rnd random.Random, topK int) map[string]Strategy {
	return map[string]Strategy{
		model.StrategyBest:   NewBestStrategy(),
		model.StrategyRandom: NewRandomStrategy(rnd, topK),
	}
}

// NewService creates a new bot Service
func NewService(
	moveService *movegen.Service,
	boardService *board.Service,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		moveService:  moveService,
		boardService: boardService,
		strategies:   strategies,
		logger:       logger.With(slog.String("component", "bot-service")),
	}
}

// ChooseMove ranks the moves for rack and lets the named strategy pick one.
// An empty strategy name means the best move.
func (s *Service) ChooseMove(ctx context.Context, b *model.Board, rack []model.Tile, lexicon movegen.Lexicon, strategy string) (movegen.Candidate, error) {
	if strategy == "" {
		strategy = model.StrategyBest
	}
	st, ok := s.strategies[strategy]
	if !ok {
		return movegen.Candidate{}, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, strategy)
	}
	if err := ctx.Err(); err != nil {
		return movegen.Candidate{}, err
	}

	ranking, err := s.moveService.Rank(b, rack, lexicon)
	if err != nil {
		return movegen.Candidate{}, err
	}

	choice, ok := st.Choose(ranking)
	if !ok {
		return movegen.Candidate{}, fmt.Errorf("%w for rack %q", model.ErrNoLegalMoves, model.TilesString(rack))
	}

	s.logger.Debug("move chosen",
		slog.String("strategy", strategy),
		slog.String("move", choice.Word.String()),
		slog.Int("score", choice.Score),
		slog.Int("checked", ranking.Checked()),
	)

	return choice, nil
}

// PlayMove chooses a move and commits it to the board
func (s *Service) PlayMove(ctx context.Context, b *model.Board, rack []model.Tile, lexicon movegen.Lexicon, strategy string) (*model.ScoreBreakdown, error) {
	choice, err := s.ChooseMove(ctx, b, rack, lexicon, strategy)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.boardService.MakeMove(b, model.MoveFromWord(choice.Word), lexicon)
	if err != nil {
		return nil, err
	}

	s.logger.Info("bot played",
		slog.String("strategy", strategy),
		slog.String("move", choice.Word.String()),
		slog.Int("score", breakdown.Total),
	)

	return breakdown, nil
}

// Strategies returns the names of the registered strategies in sorted order
func (s *Service) Strategies() []string {
	names := lo.Keys(s.strategies)
	slices.Sort(names)
	return names
}
