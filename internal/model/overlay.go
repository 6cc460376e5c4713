package model

import "strings"

// Grid is a read-only view of board squares
type Grid interface {
	Size() int
	Get(pos Position) (Tile, bool)
}

var (
	_ Grid = (*Board)(nil)
	_ Grid = (*Overlay)(nil)
)

// Overlay answers what the board would read if a candidate word were
// placed, without touching the board. Squares the word covers read as
// the word's letters; every other square falls through to the board.
type Overlay struct {
	board *Board
	word  Word
	tiles []Tile
}

// NewOverlay places word over board hypothetically. The word must fit.
func NewOverlay(board *Board, word Word) (*Overlay, error) {
	tiles, err := word.Tiles()
	if err != nil {
		return nil, err
	}
	if _, err := word.Positions(); err != nil {
		return nil, err
	}
	return &Overlay{board: board, word: word, tiles: tiles}, nil
}

// Size returns the grid dimension
func (o *Overlay) Size() int {
	return o.board.Size()
}

// Get returns the candidate's tile at pos if it covers it, else the board's
func (o *Overlay) Get(pos Position) (Tile, bool) {
	if i, ok := o.word.Covers(pos); ok {
		return o.tiles[i], true
	}
	return o.board.Get(pos)
}

// FindBoundaryWord returns the full contiguous run through pos along dir,
// read from g. It reports false when pos is empty or has no occupied
// neighbour on that axis, i.e. no word of two or more letters passes through it.
func FindBoundaryWord(g Grid, pos Position, dir Direction) (Word, bool) {
	if _, ok := g.Get(pos); !ok {
		return Word{}, false
	}

	start := pos
	for {
		prev, err := start.Step(dir, -1)
		if err != nil {
			break
		}
		if _, ok := g.Get(prev); !ok {
			break
		}
		start = prev
	}

	var sb strings.Builder
	cur := start
	for {
		t, ok := g.Get(cur)
		if !ok {
			break
		}
		sb.WriteRune(t.Rune())
		next, err := cur.Step(dir, 1)
		if err != nil {
			break
		}
		cur = next
	}

	text := sb.String()
	if len(text) < 2 {
		return Word{}, false
	}
	return Word{Start: start, Direction: dir, Text: text}, true
}
