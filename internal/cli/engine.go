package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/mcoot/scrabby/internal/api/request"
	"github.com/mcoot/scrabby/internal/api/response"
	"github.com/mcoot/scrabby/internal/factory"
	"github.com/mcoot/scrabby/internal/model"
)

// Engine answers move questions either in-process or through a server
type Engine interface {
	Analyze(ctx context.Context, req request.MovesRequest) (response.Analysis, error)
	Stream(ctx context.Context, req request.MovesRequest, fn func(response.Move) error) (response.StreamDone, error)
	Verify(ctx context.Context, req request.MoveRequest) (response.Verify, error)
	Score(ctx context.Context, req request.MoveRequest) (response.ScoreBreakdown, error)
	Suggest(ctx context.Context, req request.SuggestRequest) (response.Suggestion, error)
	Board(ctx context.Context, pos request.Position) (response.Board, error)
	Strategies(ctx context.Context) ([]string, error)
	Health(ctx context.Context) (response.Health, error)
	Close() error
}

// NewLocalEngine wires the engine in-process and loads the configured lexicon
func NewLocalEngine(ctx context.Context, cfg *Config) (*LocalEngine, error) {
	app, err := factory.New(factory.Config{
		BoardSize: cfg.BoardSize,
		Workers:   cfg.Workers,
		Logger:    cfg.Logger(),
	})
	if err != nil {
		return nil, err
	}
	if err := app.LoadLexicon(ctx, cfg.LexiconName, cfg.LexiconPath); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("loading lexicon %s: %w", cfg.LexiconPath, err)
	}
	return &LocalEngine{app: app}, nil
}

// LocalEngine runs requests against an in-process App
type LocalEngine struct {
	app *factory.App
}

var _ Engine = (*LocalEngine)(nil)

func (e *LocalEngine) Analyze(ctx context.Context, req request.MovesRequest) (response.Analysis, error) {
	a, err := e.app.AnalysisController.Analyze(ctx, req.ToRequest())
	if err != nil {
		return response.Analysis{}, err
	}
	return response.AnalysisFromModel(a), nil
}

func (e *LocalEngine) Stream(ctx context.Context, req request.MovesRequest, fn func(response.Move) error) (response.StreamDone, error) {
	result, err := e.app.AnalysisController.Stream(ctx, req.ToRequest(), func(m model.ScoredMove) error {
		return fn(response.MoveFromModel(m))
	})
	if err != nil {
		return response.StreamDone{}, err
	}
	return response.StreamDoneFromResult(result), nil
}

func (e *LocalEngine) Verify(ctx context.Context, req request.MoveRequest) (response.Verify, error) {
	err := e.app.AnalysisController.Verify(ctx, req.ToPosition(), req.Move)
	switch {
	case err == nil:
		return response.Verify{Legal: true}, nil
	case errors.Is(err, model.ErrIllegalMove):
		return response.Verify{Legal: false, Reason: err.Error()}, nil
	default:
		return response.Verify{}, err
	}
}

func (e *LocalEngine) Score(ctx context.Context, req request.MoveRequest) (response.ScoreBreakdown, error) {
	b, err := e.app.AnalysisController.Score(ctx, req.ToPosition(), req.Move)
	if err != nil {
		return response.ScoreBreakdown{}, err
	}
	return response.ScoreBreakdownFromModel(b), nil
}

func (e *LocalEngine) Suggest(ctx context.Context, req request.SuggestRequest) (response.Suggestion, error) {
	strategy := req.Strategy
	if strategy == "" {
		strategy = model.StrategyBest
	}
	m, err := e.app.AnalysisController.Suggest(ctx, req.ToRequest(), strategy)
	if err != nil {
		return response.Suggestion{}, err
	}
	return response.Suggestion{Strategy: strategy, Move: response.MoveFromModel(m)}, nil
}

func (e *LocalEngine) Board(_ context.Context, pos request.Position) (response.Board, error) {
	b, err := e.app.AnalysisController.Board(pos.ToPosition())
	if err != nil {
		return response.Board{}, err
	}
	return response.BoardFromModel(b), nil
}

func (e *LocalEngine) Strategies(context.Context) ([]string, error) {
	return e.app.AnalysisController.Strategies(), nil
}

func (e *LocalEngine) Health(context.Context) (response.Health, error) {
	return response.HealthFromLexicons(e.app.DictionaryService.Names()), nil
}

func (e *LocalEngine) Close() error {
	return e.app.Close()
}

// RemoteEngine sends requests to a running server
type RemoteEngine struct {
	client *Client
}

var _ Engine = (*RemoteEngine)(nil)

// NewRemoteEngine creates an Engine backed by the API at client's base URL
func NewRemoteEngine(client *Client) *RemoteEngine {
	return &RemoteEngine{client: client}
}

func (e *RemoteEngine) Analyze(ctx context.Context, req request.MovesRequest) (response.Analysis, error) {
	var result response.Analysis
	err := e.client.Post(ctx, "/api/v1/moves", req, &result)
	return result, err
}

// Stream relays move events until the server sends done or error
func (e *RemoteEngine) Stream(ctx context.Context, req request.MovesRequest, fn func(response.Move) error) (response.StreamDone, error) {
	var done response.StreamDone
	err := e.client.Stream(ctx, "/api/v1/moves/stream", req, func(ev SSEEvent) error {
		switch ev.Event {
		case "move":
			var m response.Move
			if err := json.Unmarshal([]byte(ev.Data), &m); err != nil {
				return fmt.Errorf("bad move event: %w", err)
			}
			return fn(m)
		case "done":
			return json.Unmarshal([]byte(ev.Data), &done)
		case "error":
			var apiErr APIError
			if err := json.Unmarshal([]byte(ev.Data), &apiErr); err != nil {
				return fmt.Errorf("stream failed: %s", ev.Data)
			}
			return errors.New(apiErr.String())
		}
		return nil
	})
	return done, err
}

func (e *RemoteEngine) Verify(ctx context.Context, req request.MoveRequest) (response.Verify, error) {
	var result response.Verify
	err := e.client.Post(ctx, "/api/v1/moves/verify", req, &result)
	return result, err
}

func (e *RemoteEngine) Score(ctx context.Context, req request.MoveRequest) (response.ScoreBreakdown, error) {
	var result response.ScoreBreakdown
	err := e.client.Post(ctx, "/api/v1/moves/score", req, &result)
	return result, err
}

func (e *RemoteEngine) Suggest(ctx context.Context, req request.SuggestRequest) (response.Suggestion, error) {
	var result response.Suggestion
	err := e.client.Post(ctx, "/api/v1/moves/suggest", req, &result)
	return result, err
}

func (e *RemoteEngine) Board(ctx context.Context, pos request.Position) (response.Board, error) {
	var result response.Board
	err := e.client.Post(ctx, "/api/v1/board", pos, &result)
	return result, err
}

func (e *RemoteEngine) Strategies(ctx context.Context) ([]string, error) {
	var result []string
	err := e.client.Get(ctx, "/api/v1/strategies", &result)
	return result, err
}

func (e *RemoteEngine) Health(ctx context.Context) (response.Health, error) {
	var result response.Health
	err := e.client.Get(ctx, "/api/v1/health", &result)
	return result, err
}

// Analysis fetches a saved analysis. Only the server keeps them.
func (e *RemoteEngine) Analysis(ctx context.Context, id string) (response.Analysis, error) {
	var result response.Analysis
	err := e.client.Get(ctx, "/api/v1/analyses/"+url.PathEscape(id), &result)
	return result, err
}

// DeleteAnalysis removes a saved analysis
func (e *RemoteEngine) DeleteAnalysis(ctx context.Context, id string) error {
	return e.client.Delete(ctx, "/api/v1/analyses/"+url.PathEscape(id))
}

func (e *RemoteEngine) Close() error {
	return nil
}
