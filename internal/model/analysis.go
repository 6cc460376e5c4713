package model

import "time"

// AnalysisID identifies a saved analysis
type AnalysisID string

// Analysis is the saved result of ranking the moves for one rack on one position
type Analysis struct {
	ID         AnalysisID   `json:"id"`
	Lexicon    string       `json:"lexicon"`
	BoardSize  int          `json:"board_size"`
	Position   []Move       `json:"position"`
	Rack       string       `json:"rack"`
	Moves      []ScoredMove `json:"moves"`
	Candidates int          `json:"candidates"`
	Checked    int          `json:"checked"`
	ElapsedMS  int64        `json:"elapsed_ms"`
	CreatedAt  time.Time    `json:"created_at"`
}
