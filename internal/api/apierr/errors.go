package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/scrabby/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidTiles     = "INVALID_TILES"
	CodeInvalidPosition  = "INVALID_POSITION"
	CodeIllegalMove      = "ILLEGAL_MOVE"
	CodeNoLegalMoves     = "NO_LEGAL_MOVES"
	CodeUnknownStrategy  = "UNKNOWN_STRATEGY"
	CodeLexiconNotLoaded = "LEXICON_NOT_LOADED"
	CodeEmptyLexicon     = "EMPTY_LEXICON"
	CodeAnalysisNotFound = "ANALYSIS_NOT_FOUND"
	CodeCancelled        = "CANCELLED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// Body returns the error body WriteError would write for err
func Body(err error) ErrorResponse {
	return ErrorResponse{Error: toHTTPError(err).apiError}
}

// toHTTPError converts an error to an httpError.
// Client mistakes keep the wrapped error text, which names the offending
// move or tile; server faults never leak their cause.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// An illegal move wraps the geometry error that made it illegal
	switch {
	case errors.Is(err, model.ErrIllegalMove):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeIllegalMove, err.Error()}}
	case errors.Is(err, model.ErrNoLegalMoves):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNoLegalMoves, err.Error()}}
	case errors.Is(err, model.ErrInvalidRack),
		errors.Is(err, model.ErrInvalidTileChar),
		errors.Is(err, model.ErrEmptyWord):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTiles, err.Error()}}
	case errors.Is(err, model.ErrPositionOverflow),
		errors.Is(err, model.ErrWordExceedsBoard),
		errors.Is(err, model.ErrInvalidBoardSize),
		errors.Is(err, model.ErrLetterConflict):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, err.Error()}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, err.Error()}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusNotFound, APIError{CodeLexiconNotLoaded, err.Error()}}
	case errors.Is(err, model.ErrEmptyLexicon):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyLexicon, err.Error()}}
	case errors.Is(err, model.ErrAnalysisNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAnalysisNotFound, "Analysis not found"}}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeCancelled, "Request cancelled before it finished"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
