package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabby/internal/api/apierr"
	"github.com/mcoot/scrabby/internal/api/request"
	"github.com/mcoot/scrabby/internal/api/response"
	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/services/analysis"
)

// MovesHandler handles move analysis endpoints
type MovesHandler struct {
	controller *analysis.Controller
	logger     *slog.Logger
}

// NewMovesHandler creates a new moves handler
func NewMovesHandler(controller *analysis.Controller, logger *slog.Logger) *MovesHandler {
	return &MovesHandler{
		controller: controller,
		logger:     logger.With(slog.String("component", "moves-handler")),
	}
}

func validateMoves(req request.MovesRequest) error {
	if strings.TrimSpace(req.Rack) == "" {
		return NewInvalidRequestError("rack is required")
	}
	if req.Limit < 0 {
		return NewInvalidRequestError("limit must not be negative")
	}
	return nil
}

func (h *MovesHandler) decodeMoves(w http.ResponseWriter, r *http.Request, req *request.MovesRequest) bool {
	if err := decodeJSON(r, req); err != nil {
		WriteError(w, err)
		return false
	}
	if err := validateMoves(*req); err != nil {
		WriteError(w, err)
		return false
	}
	return true
}

// Analyze handles POST /api/v1/moves
func (h *MovesHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req request.MovesRequest
	if !h.decodeMoves(w, r, &req) {
		return
	}

	result, err := h.controller.Analyze(r.Context(), req.ToRequest())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AnalysisFromModel(result))
}

// Get handles GET /api/v1/analyses/{id}
func (h *MovesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.AnalysisID(mux.Vars(r)["id"])

	result, err := h.controller.GetAnalysis(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnalysisFromModel(result))
}

// Delete handles DELETE /api/v1/analyses/{id}
func (h *MovesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.AnalysisID(mux.Vars(r)["id"])

	if err := h.controller.DeleteAnalysis(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Stream handles POST /api/v1/moves/stream.
// Each legal move is sent as a "move" event as soon as it is verified,
// followed by one "done" event, or an "error" event if generation fails.
func (h *MovesHandler) Stream(w http.ResponseWriter, r *http.Request) {
	var req request.MovesRequest
	if !h.decodeMoves(w, r, &req) {
		return
	}

	var stream *response.EventStream
	stats, err := h.controller.Stream(r.Context(), req.ToRequest(), func(m model.ScoredMove) error {
		if stream == nil {
			s, err := response.NewEventStream(w)
			if err != nil {
				return err
			}
			stream = s
		}
		return stream.Send("move", response.MoveFromModel(m))
	})

	// Errors before the first event still get a plain JSON response
	if stream == nil {
		if err != nil {
			if errors.Is(err, response.ErrStreamingUnsupported) {
				err = apierr.NewInternalError()
			}
			WriteError(w, err)
			return
		}
		s, serr := response.NewEventStream(w)
		if serr != nil {
			WriteError(w, apierr.NewInternalError())
			return
		}
		stream = s
	}

	if err != nil {
		h.logger.Warn("move stream ended early", slog.String("error", err.Error()))
		_ = stream.Send("error", apierr.Body(err).Error)
		return
	}
	_ = stream.Send("done", response.StreamDoneFromResult(stats))
}

// Verify handles POST /api/v1/moves/verify.
// An illegal move is a normal answer, not an error.
func (h *MovesHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	err := h.controller.Verify(r.Context(), req.ToPosition(), req.Move)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, response.Verify{Legal: true})
	case errors.Is(err, model.ErrIllegalMove):
		response.JSON(w, http.StatusOK, response.Verify{Legal: false, Reason: err.Error()})
	default:
		WriteError(w, err)
	}
}

// Score handles POST /api/v1/moves/score
func (h *MovesHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	breakdown, err := h.controller.Score(r.Context(), req.ToPosition(), req.Move)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreBreakdownFromModel(breakdown))
}

// Suggest handles POST /api/v1/moves/suggest
func (h *MovesHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req request.SuggestRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if err := validateMoves(req.MovesRequest); err != nil {
		WriteError(w, err)
		return
	}
	if req.Strategy == "" {
		req.Strategy = model.StrategyBest
	}

	move, err := h.controller.Suggest(r.Context(), req.ToRequest(), req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Suggestion{
		Strategy: req.Strategy,
		Move:     response.MoveFromModel(move),
	})
}

// Board handles POST /api/v1/board
func (h *MovesHandler) Board(w http.ResponseWriter, r *http.Request) {
	var req request.Position
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	b, err := h.controller.Board(req.ToPosition())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardFromModel(b))
}

// Strategies handles GET /api/v1/strategies
func (h *MovesHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.controller.Strategies())
}
