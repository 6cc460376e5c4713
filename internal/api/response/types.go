package response

import (
	"strings"
	"time"

	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/services/movegen"
)

// Move represents a scored move in API responses
type Move struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
	Word      string `json:"word"`
	Score     int    `json:"score"`
}

// MoveFromModel converts a model.ScoredMove
func MoveFromModel(m model.ScoredMove) Move {
	return Move{
		Row:       m.Row,
		Col:       m.Col,
		Direction: m.Direction.String(),
		Word:      m.Word,
		Score:     m.Score,
	}
}

// Analysis represents a saved analysis
type Analysis struct {
	ID         string       `json:"id"`
	Lexicon    string       `json:"lexicon"`
	BoardSize  int          `json:"board_size"`
	Position   []model.Move `json:"position"`
	Rack       string       `json:"rack"`
	Moves      []Move       `json:"moves"`
	Candidates int          `json:"candidates"`
	Checked    int          `json:"checked"`
	ElapsedMS  int64        `json:"elapsed_ms"`
	CreatedAt  time.Time    `json:"created_at"`
}

// AnalysisFromModel converts model.Analysis
func AnalysisFromModel(a *model.Analysis) Analysis {
	moves := make([]Move, len(a.Moves))
	for i, m := range a.Moves {
		moves[i] = MoveFromModel(m)
	}
	position := a.Position
	if position == nil {
		position = []model.Move{}
	}
	return Analysis{
		ID:         string(a.ID),
		Lexicon:    a.Lexicon,
		BoardSize:  a.BoardSize,
		Position:   position,
		Rack:       a.Rack,
		Moves:      moves,
		Candidates: a.Candidates,
		Checked:    a.Checked,
		ElapsedMS:  a.ElapsedMS,
		CreatedAt:  a.CreatedAt,
	}
}

// StreamDone is the final event of a move stream
type StreamDone struct {
	Candidates int   `json:"candidates"`
	Checked    int   `json:"checked"`
	ElapsedMS  int64 `json:"elapsed_ms"`
}

// StreamDoneFromResult converts the generation counters
func StreamDoneFromResult(r *movegen.Result) StreamDone {
	return StreamDone{
		Candidates: r.Candidates,
		Checked:    r.Checked,
		ElapsedMS:  r.Elapsed.Milliseconds(),
	}
}

// Verify is the result of checking a move
type Verify struct {
	Legal  bool   `json:"legal"`
	Reason string `json:"reason,omitempty"`
}

// CrossWord is a perpendicular word a move completes
type CrossWord struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
	Score     int    `json:"score"`
}

// ScoreBreakdown itemises a move's score
type ScoreBreakdown struct {
	Primary    int         `json:"primary"`
	CrossWords []CrossWord `json:"cross_words"`
	Bonus      int         `json:"bonus"`
	Total      int         `json:"total"`
}

// ScoreBreakdownFromModel converts model.ScoreBreakdown
func ScoreBreakdownFromModel(b *model.ScoreBreakdown) ScoreBreakdown {
	cross := make([]CrossWord, len(b.CrossWords))
	for i, c := range b.CrossWords {
		cross[i] = CrossWord{
			Word:      c.Word.Text,
			Row:       c.Word.Start.Row(),
			Col:       c.Word.Start.Col(),
			Direction: c.Word.Direction.String(),
			Score:     c.Score,
		}
	}
	return ScoreBreakdown{
		Primary:    b.Primary,
		CrossWords: cross,
		Bonus:      b.Bonus,
		Total:      b.Total,
	}
}

// Board is a rendered position. Each row is a string with '.' for empty squares.
type Board struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// BoardFromModel renders model.Board
func BoardFromModel(b *model.Board) Board {
	rows := make([]string, b.Size())
	for r := range b.Size() {
		var sb strings.Builder
		for c := range b.Size() {
			pos := model.Position{Index: r*b.Size() + c, Size: b.Size()}
			if t, ok := b.Get(pos); ok {
				sb.WriteRune(t.Rune())
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return Board{Size: b.Size(), Rows: rows}
}

// Suggestion is a single chosen move
type Suggestion struct {
	Strategy string `json:"strategy"`
	Move     Move   `json:"move"`
}

// Lexicon describes a loaded word list
type Lexicon struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// WordCheck is the result of looking up a word
type WordCheck struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

// Health reports server readiness
type Health struct {
	Status   string   `json:"status"`
	Lexicons []string `json:"lexicons"`
}

// HealthFromLexicons reports ok once at least one lexicon is loaded
func HealthFromLexicons(names []string) Health {
	status := "ok"
	if len(names) == 0 {
		status = "no lexicon loaded"
	}
	return Health{Status: status, Lexicons: names}
}
