package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabby/internal/dependencies/clock"
	"github.com/mcoot/scrabby/internal/dependencies/random"
	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/services/board"
	"github.com/mcoot/scrabby/internal/services/bot"
	"github.com/mcoot/scrabby/internal/services/dictionary"
	"github.com/mcoot/scrabby/internal/services/movegen"
	"github.com/mcoot/scrabby/internal/storage"
)

const (
	// IDAlphabet is the character set for generated analysis IDs
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// IDLength is the length of generated analysis IDs
	IDLength = 12
)

// Position describes a board by its move history
type Position struct {
	// Lexicon names the word list; empty means the default
	Lexicon string
	// BoardSize is the grid dimension; 0 means the default
	BoardSize int
	// Moves are replayed in order without dictionary checks
	Moves []model.Move
}

// Request asks for the strongest moves for a rack on a position
type Request struct {
	Position
	Rack string
	// Limit caps the moves returned; 0 means the configured maximum
	Limit int
}

// Controller answers move-analysis requests. Each request rebuilds its
// board from the supplied history, so no game state is kept between calls.
type Controller struct {
	storage      storage.Storage
	dictionary   *dictionary.Service
	boardService *board.Service
	moveService  *movegen.Service
	botService   *bot.Service
	clock        clock.Clock
	random       random.Random
	maxResults   int
	logger       *slog.Logger
}

// NewController creates a new analysis Controller. maxResults caps every
// request's limit; 0 means no cap.
func NewController(
	storage storage.Storage,
	dictionary *dictionary.Service,
	boardService *board.Service,
	moveService *movegen.Service,
	botService *bot.Service,
	clock clock.Clock,
	random random.Random,
	maxResults int,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		dictionary:   dictionary,
		boardService: boardService,
		moveService:  moveService,
		botService:   botService,
		clock:        clock,
		random:       random,
		maxResults:   maxResults,
		logger:       logger.With(slog.String("component", "analysis-controller")),
	}
}

// Analyze ranks the moves for a rack, saves the result and returns it
func (c *Controller) Analyze(ctx context.Context, req Request) (*model.Analysis, error) {
	b, lex, rack, err := c.prepare(req.Position, req.Rack)
	if err != nil {
		return nil, err
	}

	result, err := c.moveService.TopMoves(ctx, b, rack, lex, c.limit(req.Limit))
	if err != nil {
		return nil, err
	}

	analysis := &model.Analysis{
		ID:         model.AnalysisID(c.random.String(IDLength, IDAlphabet)),
		Lexicon:    c.lexiconName(req.Lexicon),
		BoardSize:  b.Size(),
		Position:   req.Moves,
		Rack:       model.TilesString(rack),
		Moves:      toScoredMoves(result.Moves),
		Candidates: result.Candidates,
		Checked:    result.Checked,
		ElapsedMS:  result.Elapsed.Milliseconds(),
		CreatedAt:  c.clock.Now(),
	}

	if err := c.storage.SaveAnalysis(ctx, analysis); err != nil {
		c.logger.Error("failed to save analysis",
			slog.String("analysis_id", string(analysis.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("analysis created",
		slog.String("analysis_id", string(analysis.ID)),
		slog.String("lexicon", analysis.Lexicon),
		slog.Int("moves", len(analysis.Moves)),
		slog.Int("candidates", analysis.Candidates),
	)

	return analysis, nil
}

// GetAnalysis retrieves a saved analysis by ID
func (c *Controller) GetAnalysis(ctx context.Context, id model.AnalysisID) (*model.Analysis, error) {
	return c.storage.GetAnalysis(ctx, id)
}

// DeleteAnalysis removes a saved analysis
func (c *Controller) DeleteAnalysis(ctx context.Context, id model.AnalysisID) error {
	if _, err := c.storage.GetAnalysis(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteAnalysis(ctx, id); err != nil {
		return err
	}
	c.logger.Info("analysis deleted", slog.String("analysis_id", string(id)))
	return nil
}

// Stream calls fn with each legal move, best first, until the limit is
// reached, fn fails or ctx ends. Nothing is saved.
func (c *Controller) Stream(ctx context.Context, req Request, fn func(model.ScoredMove) error) (*movegen.Result, error) {
	b, lex, rack, err := c.prepare(req.Position, req.Rack)
	if err != nil {
		return nil, err
	}

	limit := c.limit(req.Limit)
	stats := &movegen.Result{}
	sent := 0
	err = c.moveService.Stream(ctx, b, rack, lex, func(cand movegen.Candidate) error {
		if err := fn(toScoredMove(cand)); err != nil {
			return err
		}
		sent++
		if limit > 0 && sent >= limit {
			return movegen.ErrStop
		}
		return nil
	}, stats)
	if err != nil {
		return stats, err
	}
	return stats, nil
}

// Suggest picks a single move for rack using the named strategy
func (c *Controller) Suggest(ctx context.Context, req Request, strategy string) (model.ScoredMove, error) {
	b, lex, rack, err := c.prepare(req.Position, req.Rack)
	if err != nil {
		return model.ScoredMove{}, err
	}
	choice, err := c.botService.ChooseMove(ctx, b, rack, lex, strategy)
	if err != nil {
		return model.ScoredMove{}, err
	}
	return toScoredMove(choice), nil
}

// Verify checks whether move is legal on the position
func (c *Controller) Verify(ctx context.Context, pos Position, move model.Move) error {
	lex, err := c.dictionary.Lexicon(pos.Lexicon)
	if err != nil {
		return err
	}
	b, err := c.boardService.Replay(pos.BoardSize, pos.Moves)
	if err != nil {
		return err
	}
	return c.boardService.Verify(b, move, lex)
}

// Score itemises the points move would earn on the position without checking legality
func (c *Controller) Score(ctx context.Context, pos Position, move model.Move) (*model.ScoreBreakdown, error) {
	b, err := c.boardService.Replay(pos.BoardSize, pos.Moves)
	if err != nil {
		return nil, err
	}
	return c.boardService.Score(b, move)
}

// Board replays a position so callers can render it
func (c *Controller) Board(pos Position) (*model.Board, error) {
	return c.boardService.Replay(pos.BoardSize, pos.Moves)
}

// Strategies returns the names of the available move strategies
func (c *Controller) Strategies() []string {
	return c.botService.Strategies()
}

func (c *Controller) prepare(pos Position, rackText string) (*model.Board, *model.Lexicon, []model.Tile, error) {
	rack, err := model.ParseRack(rackText)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", model.ErrInvalidRack, err)
	}
	lex, err := c.dictionary.Lexicon(pos.Lexicon)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := c.boardService.Replay(pos.BoardSize, pos.Moves)
	if err != nil {
		return nil, nil, nil, err
	}
	return b, lex, rack, nil
}

func (c *Controller) limit(requested int) int {
	if c.maxResults <= 0 {
		return requested
	}
	if requested <= 0 || requested > c.maxResults {
		return c.maxResults
	}
	return requested
}

func (c *Controller) lexiconName(name string) string {
	if name == "" {
		return dictionary.DefaultLexicon
	}
	return name
}

func toScoredMove(c movegen.Candidate) model.ScoredMove {
	return model.ScoredMove{Move: model.MoveFromWord(c.Word), Score: c.Score}
}

func toScoredMoves(cands []movegen.Candidate) []model.ScoredMove {
	out := make([]model.ScoredMove, len(cands))
	for i, c := range cands {
		out[i] = toScoredMove(c)
	}
	return out
}
