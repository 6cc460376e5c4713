package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mcoot/scrabby/internal/api/response"
	"github.com/mcoot/scrabby/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// IsJSON reports whether output is machine-readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintStreamed outputs one move as it arrives. JSON output is one object per line.
func (o *Output) PrintStreamed(rank int, m response.Move) {
	if o.IsJSON() {
		data, _ := json.Marshal(m)
		fmt.Fprintln(o.w, string(data))
		return
	}
	fmt.Fprintf(o.w, "%3d. %-15s (%d,%d) %-5s %4d\n", rank, m.Word, m.Row, m.Col, m.Direction, m.Score)
}

// PrintStreamDone closes a streamed listing. JSON output stays one object per line.
func (o *Output) PrintStreamDone(done response.StreamDone) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]response.StreamDone{"done": done})
		fmt.Fprintln(o.w, string(data))
		return
	}
	o.printText(done)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Analysis:
		o.printAnalysis(v)
	case response.StreamDone:
		fmt.Fprintf(o.w, "%d candidates, %d checked in %dms\n", v.Candidates, v.Checked, v.ElapsedMS)
	case response.Verify:
		o.printVerify(v)
	case response.ScoreBreakdown:
		o.printScore(v)
	case response.Suggestion:
		fmt.Fprintf(o.w, "Strategy: %s\n", model.StrategyDisplayName(v.Strategy))
		o.printMoves([]response.Move{v.Move})
	case response.Board:
		o.printBoard(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		if len(v.Lexicons) > 0 {
			fmt.Fprintf(o.w, "Lexicons: %s\n", strings.Join(v.Lexicons, ", "))
		}
	case response.Lexicon:
		fmt.Fprintf(o.w, "%s: %d words\n", v.Name, v.Words)
	case []response.Lexicon:
		for _, l := range v {
			fmt.Fprintf(o.w, "%s: %d words\n", l.Name, l.Words)
		}
	case response.WordCheck:
		verdict := "not valid"
		if v.Valid {
			verdict = "valid"
		}
		fmt.Fprintf(o.w, "%s is %s\n", v.Word, verdict)
	case []string:
		for _, s := range v {
			fmt.Fprintln(o.w, s)
		}
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printMoves(moves []response.Move) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tWORD\tROW\tCOL\tDIR\tSCORE")
	for i, m := range moves {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%d\n", i+1, m.Word, m.Row, m.Col, m.Direction, m.Score)
	}
	_ = tw.Flush()
}

func (o *Output) printAnalysis(a response.Analysis) {
	fmt.Fprintf(o.w, "Analysis: %s\n", a.ID)
	fmt.Fprintf(o.w, "Lexicon: %s  Rack: %s  Board: %dx%d\n", a.Lexicon, a.Rack, a.BoardSize, a.BoardSize)
	if len(a.Moves) == 0 {
		fmt.Fprintln(o.w, "No legal moves")
	} else {
		o.printMoves(a.Moves)
	}
	fmt.Fprintf(o.w, "%d candidates, %d checked in %dms\n", a.Candidates, a.Checked, a.ElapsedMS)
}

func (o *Output) printVerify(v response.Verify) {
	if v.Legal {
		fmt.Fprintln(o.w, "Legal")
		return
	}
	fmt.Fprintf(o.w, "Illegal: %s\n", v.Reason)
}

func (o *Output) printScore(b response.ScoreBreakdown) {
	fmt.Fprintf(o.w, "Word: %d\n", b.Primary)
	for _, c := range b.CrossWords {
		fmt.Fprintf(o.w, "  + %s at (%d,%d) %s: %d\n", c.Word, c.Row, c.Col, c.Direction, c.Score)
	}
	if b.Bonus > 0 {
		fmt.Fprintf(o.w, "Bonus: %d\n", b.Bonus)
	}
	fmt.Fprintf(o.w, "Total: %d\n", b.Total)
}

// printBoard draws the grid with row and column numbers. Lowercase letters
// mark squares a highlighted move would fill.
func (o *Output) printBoard(b response.Board) {
	if b.Size == 0 {
		return
	}

	fmt.Fprint(o.w, "     ")
	for col := range b.Size {
		fmt.Fprintf(o.w, "%2d ", col)
	}
	fmt.Fprintln(o.w)

	border := "    +" + strings.Repeat("---", b.Size) + "+"
	fmt.Fprintln(o.w, border)
	for row, cells := range b.Rows {
		fmt.Fprintf(o.w, "%3d |", row)
		for _, cell := range cells {
			fmt.Fprintf(o.w, " %c ", cell)
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, border)
}
