package model

import (
	"fmt"
	"slices"
)

// Board is the placed-tile grid plus the log of committed words.
// Tiles are only ever written by Commit, so every occupied square
// belongs to some committed word.
type Board struct {
	size     int
	cells    []Tile
	words    []Word
	premiums *Premiums
}

// CheckBoardSize rejects sizes outside 1..MaxBoardSize
func CheckBoardSize(size int) error {
	if size <= 0 || size > MaxBoardSize {
		return fmt.Errorf("%w: %d, want 1 to %d", ErrInvalidBoardSize, size, MaxBoardSize)
	}
	return nil
}

// NewBoard creates an empty size x size board. The default 21x21 board
// gets the variant's premium layout; any other size has no premiums.
func NewBoard(size int) (*Board, error) {
	if err := CheckBoardSize(size); err != nil {
		return nil, err
	}
	premiums := NoPremiums(size)
	if size == DefaultBoardSize {
		premiums = DefaultPremiums()
	}
	return newBoard(size, premiums), nil
}

// NewBoardWithPremiums creates an empty board with a custom premium layout
func NewBoardWithPremiums(size int, premiums *Premiums) (*Board, error) {
	if err := CheckBoardSize(size); err != nil {
		return nil, err
	}
	if premiums == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrPremiumShape)
	}
	if premiums.Size() != size {
		return nil, fmt.Errorf("%w: layout is %d, board is %d", ErrPremiumShape, premiums.Size(), size)
	}
	return newBoard(size, premiums), nil
}

func newBoard(size int, premiums *Premiums) *Board {
	return &Board{
		size:     size,
		cells:    make([]Tile, size*size),
		premiums: premiums,
	}
}

// Size returns the grid dimension
func (b *Board) Size() int {
	return b.size
}

// Premiums returns the board's premium layout
func (b *Board) Premiums() *Premiums {
	return b.premiums
}

// Get returns the tile at pos, or false if the square is empty or off the board
func (b *Board) Get(pos Position) (Tile, bool) {
	if pos.Size != b.size || !pos.Valid() {
		return NoTile, false
	}
	t := b.cells[pos.Index]
	return t, t != NoTile
}

// IsEmpty returns true if nothing has been placed at pos
func (b *Board) IsEmpty(pos Position) bool {
	_, ok := b.Get(pos)
	return !ok
}

func (b *Board) set(pos Position, t Tile) {
	b.cells[pos.Index] = t
}

// MakeMove commits text starting at (row, col) in dir
func (b *Board) MakeMove(row, col int, text string, dir Direction) error {
	w, err := NewWord(row, col, b.size, dir, text)
	if err != nil {
		return err
	}
	return b.Commit(w)
}

// Commit writes the word's tiles and appends it to the history.
// It checks geometry only: the word must fit and agree with tiles already
// on the board. Dictionary legality is the caller's concern.
// Nothing is written if any check fails.
func (b *Board) Commit(w Word) error {
	if w.Start.Size != b.size {
		return fmt.Errorf("%w: position is for a %dx%d board", ErrPositionOverflow, w.Start.Size, w.Start.Size)
	}
	tiles, err := w.Tiles()
	if err != nil {
		return err
	}
	positions, err := w.Positions()
	if err != nil {
		return err
	}
	for i, pos := range positions {
		if existing, ok := b.Get(pos); ok && existing != tiles[i] {
			return fmt.Errorf("%w: %s holds %s, not %s", ErrLetterConflict, pos, existing, tiles[i])
		}
	}
	for i, pos := range positions {
		b.set(pos, tiles[i])
	}
	b.words = append(b.words, w)
	return nil
}

// Words returns the committed words in play order
func (b *Board) Words() []Word {
	return slices.Clone(b.words)
}

// HasPlayed reports whether text was committed by an earlier move
func (b *Board) HasPlayed(text string) bool {
	for _, w := range b.words {
		if w.Text == text {
			return true
		}
	}
	return false
}

// Anchors returns every occupied square in index order
func (b *Board) Anchors() []Position {
	var out []Position
	for i, t := range b.cells {
		if t != NoTile {
			out = append(out, Position{Index: i, Size: b.size})
		}
	}
	return out
}

// TileCount returns the number of occupied squares
func (b *Board) TileCount() int {
	n := 0
	for _, t := range b.cells {
		if t != NoTile {
			n++
		}
	}
	return n
}

// Clone returns an independent copy. The premium layout is shared.
func (b *Board) Clone() *Board {
	return &Board{
		size:     b.size,
		cells:    slices.Clone(b.cells),
		words:    slices.Clone(b.words),
		premiums: b.premiums,
	}
}
