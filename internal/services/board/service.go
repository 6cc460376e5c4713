package board

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/services/movegen"
	"github.com/mcoot/scrabby/internal/services/scoring"
)

// Service provides board operations
type Service struct {
	scoringService *scoring.Service
	defaultSize    int
	logger         *slog.Logger
}

// New creates a new BoardService
func New(scoringService *scoring.Service, logger *slog.Logger) *Service {
	return &Service{
		scoringService: scoringService,
		defaultSize:    model.DefaultBoardSize,
		logger:         logger.With(slog.String("component", "board-service")),
	}
}

// WithDefaultSize sets the size used when a request gives none
func (s *Service) WithDefaultSize(size int) *Service {
	if size > 0 {
		s.defaultSize = size
	}
	return s
}

// NewBoard creates an empty board. Size 0 means the configured default,
// normally the 21x21 board.
func (s *Service) NewBoard(size int) (*model.Board, error) {
	if size == 0 {
		size = s.defaultSize
	}
	return model.NewBoard(size)
}

// Replay rebuilds a position from its move history in play order.
// Moves are checked for fit and conflicts but not against a lexicon,
// so any earlier position can be reproduced.
func (s *Service) Replay(size int, moves []model.Move) (*model.Board, error) {
	board, err := s.NewBoard(size)
	if err != nil {
		return nil, err
	}
	for i, m := range moves {
		w, err := m.Place(board.Size())
		if err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
		if err := board.Commit(w); err != nil {
			return nil, fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return board, nil
}

// Score returns the itemised score of a move without playing it
func (s *Service) Score(board *model.Board, move model.Move) (*model.ScoreBreakdown, error) {
	w, err := move.Place(board.Size())
	if err != nil {
		return nil, err
	}
	return s.scoringService.Breakdown(board, w)
}

// Verify checks a move against the board and lexicon without playing it.
// The returned error explains why an illegal move was rejected.
// Unlike generated moves, a submitted word must itself be in the lexicon
// or already on the board.
func (s *Service) Verify(board *model.Board, move model.Move, lexicon movegen.Lexicon) error {
	w, err := move.Place(board.Size())
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrIllegalMove, err)
	}
	if err := movegen.CheckMove(board, w, lexicon); err != nil {
		return err
	}
	if !lexicon.Contains(w.Text) && !board.HasPlayed(w.Text) {
		return fmt.Errorf("%w: %q is not in the lexicon", model.ErrIllegalMove, w.Text)
	}
	return nil
}

// MakeMove validates, scores and commits a move. The score is taken before
// the tiles are placed, so it includes the premiums the move spends.
func (s *Service) MakeMove(board *model.Board, move model.Move, lexicon movegen.Lexicon) (*model.ScoreBreakdown, error) {
	if err := s.Verify(board, move, lexicon); err != nil {
		return nil, err
	}
	breakdown, err := s.Score(board, move)
	if err != nil {
		return nil, err
	}
	w, err := move.Place(board.Size())
	if err != nil {
		return nil, err
	}
	if err := board.Commit(w); err != nil {
		return nil, err
	}

	s.logger.Debug("move committed",
		slog.String("move", move.String()),
		slog.Int("score", breakdown.Total),
		slog.Int("tiles", board.TileCount()),
	)

	return breakdown, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBoard(size int) (*model.Board, error)
	Replay(size int, moves []model.Move) (*model.Board, error)
	Score(board *model.Board, move model.Move) (*model.ScoreBreakdown, error)
	Verify(board *model.Board, move model.Move, lexicon movegen.Lexicon) error
	MakeMove(board *model.Board, move model.Move, lexicon movegen.Lexicon) (*model.ScoreBreakdown, error)
}

var _ ServiceInterface = (*Service)(nil)
