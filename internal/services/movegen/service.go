package movegen

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcoot/scrabby/internal/dependencies/clock"
	"github.com/mcoot/scrabby/internal/model"
)

// ErrStop may be returned by a Stream callback to end the stream without error
var ErrStop = errors.New("stop streaming")

// Result is a page of the strongest legal moves for a rack
type Result struct {
	Moves      []Candidate
	Candidates int
	Checked    int
	Elapsed    time.Duration
}

// Service wraps the Generator with request-scoped cancellation and logging
type Service struct {
	generator *Generator
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a new MoveService
func New(generator *Generator, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		generator: generator,
		clock:     clock,
		logger:    logger.With(slog.String("component", "movegen")),
	}
}

// Rank generates the full ranking for rack on board
func (s *Service) Rank(board *model.Board, rack []model.Tile, lexicon Lexicon) (*Ranking, error) {
	return s.generator.BestMoves(board, rack, lexicon)
}

// TopMoves returns up to limit legal moves, best first. limit <= 0 returns all.
// Validation stops early if ctx is cancelled.
func (s *Service) TopMoves(ctx context.Context, board *model.Board, rack []model.Tile, lexicon Lexicon, limit int) (*Result, error) {
	result := &Result{Moves: []Candidate{}}
	err := s.Stream(ctx, board, rack, lexicon, func(c Candidate) error {
		result.Moves = append(result.Moves, c)
		if limit > 0 && len(result.Moves) >= limit {
			return ErrStop
		}
		return nil
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Stream calls fn with each legal move, best first, until the ranking is
// exhausted, ctx is done, or fn returns an error. stats, if not nil, is
// filled with the generation counters.
func (s *Service) Stream(ctx context.Context, board *model.Board, rack []model.Tile, lexicon Lexicon, fn func(Candidate) error, stats *Result) error {
	start := s.clock.Now()

	ranking, err := s.generator.BestMoves(board, rack, lexicon)
	if err != nil {
		s.logger.Warn("move generation failed",
			slog.String("rack", model.TilesString(rack)),
			slog.String("error", err.Error()),
		)
		return err
	}

	emitted := 0
	var streamErr error
	for c := range ranking.All() {
		if err := ctx.Err(); err != nil {
			streamErr = err
			break
		}
		emitted++
		if err := fn(c); err != nil {
			if !errors.Is(err, ErrStop) {
				streamErr = err
			}
			break
		}
	}

	elapsed := s.clock.Since(start)
	if stats != nil {
		stats.Candidates = ranking.Candidates()
		stats.Checked = ranking.Checked()
		stats.Elapsed = elapsed
	}

	s.logger.Debug("moves generated",
		slog.String("rack", model.TilesString(rack)),
		slog.Int("anchors", len(board.Anchors())),
		slog.Int("candidates", ranking.Candidates()),
		slog.Int("checked", ranking.Checked()),
		slog.Int("emitted", emitted),
		slog.Duration("elapsed", elapsed),
	)

	return streamErr
}
