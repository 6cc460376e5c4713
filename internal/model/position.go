package model

import "fmt"

// Direction is the axis a word is read along
type Direction int

const (
	Right Direction = iota
	Down
)

// Opposite returns the perpendicular axis
func (d Direction) Opposite() Direction {
	if d == Right {
		return Down
	}
	return Right
}

// Offset is the index distance of one step along the direction
func (d Direction) Offset(size int) int {
	if d == Right {
		return 1
	}
	return size
}

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "down"
}

// ParseDirection accepts "right"/"r"/"across" and "down"/"d"
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "right", "r", "R", "across", "Right":
		return Right, nil
	case "down", "d", "D", "Down":
		return Down, nil
	}
	return Right, fmt.Errorf("unknown direction %q", s)
}

// Position is a square on a size x size grid, stored as row*size + col.
// Positions built with the unchecked helpers may lie off the board;
// use Valid or Step before reading the grid with them.
type Position struct {
	Index int
	Size  int
}

// NewPosition builds a position from a row and column
func NewPosition(row, col, size int) (Position, error) {
	if row < 0 || col < 0 || row >= size || col >= size {
		return Position{}, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrPositionOverflow, row, col, size, size)
	}
	return Position{Index: row*size + col, Size: size}, nil
}

// Row returns the 0-indexed row
func (p Position) Row() int {
	return floorDiv(p.Index, p.Size)
}

// Col returns the 0-indexed column
func (p Position) Col() int {
	return p.Index - p.Row()*p.Size
}

// Valid reports whether the index lies on the grid
func (p Position) Valid() bool {
	return p.Size > 0 && p.Index >= 0 && p.Index < p.Size*p.Size
}

// AddRows moves by whole rows without bounds checking
func (p Position) AddRows(n int) Position {
	return Position{Index: p.Index + n*p.Size, Size: p.Size}
}

// AddCols moves by whole columns without bounds checking.
// The result may wrap onto a neighbouring row.
func (p Position) AddCols(n int) Position {
	return Position{Index: p.Index + n, Size: p.Size}
}

// Add moves n steps along dir without bounds checking
func (p Position) Add(dir Direction, n int) Position {
	return Position{Index: p.Index + n*dir.Offset(p.Size), Size: p.Size}
}

// Step moves n steps (n may be negative) along dir. It fails with
// ErrPositionOverflow if either end is off the grid or if a step along
// Right would cross a row boundary.
func (p Position) Step(dir Direction, n int) (Position, error) {
	if !p.Valid() {
		return Position{}, fmt.Errorf("%w: index %d", ErrPositionOverflow, p.Index)
	}
	next := p.Add(dir, n)
	if !next.Valid() {
		return Position{}, fmt.Errorf("%w: index %d", ErrPositionOverflow, next.Index)
	}
	if dir == Right && next.Row() != p.Row() {
		return Position{}, fmt.Errorf("%w: index %d wraps row %d", ErrPositionOverflow, next.Index, p.Row())
	}
	return next, nil
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row(), p.Col())
}

func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
