package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabby/internal/api/request"
	"github.com/mcoot/scrabby/internal/model"
)

// positionFlags are the flags every command that takes a board shares
type positionFlags struct {
	moves []string
	file  string
}

func (p *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&p.moves, "move", "m", nil, "Move already on the board as WORD@ROW,COL,DIR (repeatable, in play order)")
	cmd.Flags().StringVar(&p.file, "position", "", "JSON file holding the moves already on the board")
}

// position builds the request position: moves from --position first, then --move
func (p *positionFlags) position(cfg *Config) (request.Position, error) {
	var moves []model.Move
	if p.file != "" {
		data, err := os.ReadFile(p.file)
		if err != nil {
			return request.Position{}, err
		}
		if err := json.Unmarshal(data, &moves); err != nil {
			return request.Position{}, fmt.Errorf("parsing %s: %w", p.file, err)
		}
	}
	for _, text := range p.moves {
		m, err := ParseMove(text)
		if err != nil {
			return request.Position{}, err
		}
		moves = append(moves, m)
	}
	if moves == nil {
		moves = []model.Move{}
	}
	return request.Position{Lexicon: cfg.LexiconName, BoardSize: cfg.BoardSize, Moves: moves}, nil
}

// ParseMove reads a move written as WORD@ROW,COL,DIR, e.g. HELLO@11,11,right.
// DIR may be any name model.ParseDirection accepts and defaults to right.
func ParseMove(text string) (model.Move, error) {
	word, coords, ok := strings.Cut(text, "@")
	if !ok || word == "" {
		return model.Move{}, fmt.Errorf("move %q: want WORD@ROW,COL,DIR", text)
	}
	parts := strings.Split(coords, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return model.Move{}, fmt.Errorf("move %q: want WORD@ROW,COL,DIR", text)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Move{}, fmt.Errorf("move %q: bad row: %w", text, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Move{}, fmt.Errorf("move %q: bad column: %w", text, err)
	}
	dir := model.Right
	if len(parts) == 3 {
		dir, err = model.ParseDirection(strings.TrimSpace(parts[2]))
		if err != nil {
			return model.Move{}, fmt.Errorf("move %q: %w", text, err)
		}
	}

	return model.Move{Row: row, Col: col, Direction: dir, Word: strings.ToUpper(word)}, nil
}
