package request

import (
	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/services/analysis"
)

// Position describes a board by the moves played on it, in order
type Position struct {
	Lexicon   string       `json:"lexicon,omitempty"`
	BoardSize int          `json:"board_size,omitempty"`
	Moves     []model.Move `json:"moves"`
}

// ToPosition converts the request into the controller's form
func (p Position) ToPosition() analysis.Position {
	return analysis.Position{
		Lexicon:   p.Lexicon,
		BoardSize: p.BoardSize,
		Moves:     p.Moves,
	}
}

// MovesRequest is the request body for ranking the moves of a rack
type MovesRequest struct {
	Position
	Rack  string `json:"rack"`
	Limit int    `json:"limit,omitempty"`
}

// ToRequest converts the request into the controller's form
func (r MovesRequest) ToRequest() analysis.Request {
	return analysis.Request{
		Position: r.ToPosition(),
		Rack:     r.Rack,
		Limit:    r.Limit,
	}
}

// SuggestRequest is the request body for picking a single move
type SuggestRequest struct {
	MovesRequest
	Strategy string `json:"strategy,omitempty"`
}

// MoveRequest is the request body for verifying or scoring one move
type MoveRequest struct {
	Position
	Move model.Move `json:"move"`
}

// LexiconRequest is the JSON request body for uploading a word list
type LexiconRequest struct {
	Words []string `json:"words"`
}
