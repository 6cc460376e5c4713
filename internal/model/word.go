package model

import (
	"fmt"
	"unicode/utf8"
)

// Word is a placement of text on the board: either a candidate being
// evaluated or a play already committed to a Board
type Word struct {
	Start     Position
	Direction Direction
	Text      string
}

// NewWord builds a word starting at (row, col)
func NewWord(row, col, size int, dir Direction, text string) (Word, error) {
	start, err := NewPosition(row, col, size)
	if err != nil {
		return Word{}, err
	}
	return Word{Start: start, Direction: dir, Text: text}, nil
}

// Len returns the number of squares the word covers
func (w Word) Len() int {
	return utf8.RuneCountInString(w.Text)
}

// At returns the square of the i-th letter without bounds checking
func (w Word) At(i int) Position {
	return w.Start.Add(w.Direction, i)
}

// Positions returns every square the word covers. It fails if any
// of them is off the board or the word wraps a row.
func (w Word) Positions() ([]Position, error) {
	n := w.Len()
	if n == 0 {
		return nil, ErrEmptyWord
	}
	if _, err := w.Start.Step(w.Direction, n-1); err != nil {
		return nil, fmt.Errorf("%w: %s %s %q: %w", ErrWordExceedsBoard, w.Start, w.Direction, w.Text, err)
	}
	out := make([]Position, n)
	for i := range out {
		out[i] = w.At(i)
	}
	return out, nil
}

// Tiles converts the text into tiles
func (w Word) Tiles() ([]Tile, error) {
	return ParseTiles(w.Text)
}

// Covers reports whether pos is one of the word's squares and, if so,
// which letter lands there
func (w Word) Covers(pos Position) (int, bool) {
	offset := w.Direction.Offset(w.Start.Size)
	delta := pos.Index - w.Start.Index
	if delta < 0 || delta%offset != 0 {
		return 0, false
	}
	i := delta / offset
	if i >= w.Len() {
		return 0, false
	}
	if w.Direction == Right && pos.Row() != w.Start.Row() {
		return 0, false
	}
	return i, true
}

func (w Word) String() string {
	return fmt.Sprintf("%s %s %s", w.Text, w.Start, w.Direction)
}
