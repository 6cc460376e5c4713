package model

import "fmt"

// DefaultBoardSize is the board dimension of this variant
const DefaultBoardSize = 21

// MaxBoardSize is the largest board dimension accepted
const MaxBoardSize = 64

// Premium layouts for the default 21x21 board. '.' is no bonus.
var (
	defaultWordPremiums = []string{
		"4......3.....3......4",
		".2......2...2......2.",
		"..2......2.2......2..",
		"...3......3......3...",
		"....2...........2....",
		".....2.........2.....",
		"......2.......2......",
		"3......2.....2......3",
		".2.................2.",
		"..2...............2..",
		"...3......2......3...",
		"..2...............2..",
		".2.................2.",
		"3......2.....2......3",
		"......2.......2......",
		".....2.........2.....",
		"....2...........2....",
		"...3......3......3...",
		"..2......2.2......2..",
		".2......2...2......2.",
		"4......3.....3......4",
	}

	defaultLetterPremiums = []string{
		"...2......2......2...",
		"....3...........3....",
		".....4.........4.....",
		"2.....2.......2.....2",
		".3......3...3......3.",
		"..4......2.2......4..",
		"...2......2......2...",
		".....................",
		"....3...3...3...3....",
		".....2...2.2...2.....",
		"2.....2.......2.....2",
		".....2...2.2...2.....",
		"....3...3...3...3....",
		".....................",
		"...2......2......2...",
		"..4......2.2......4..",
		".3......3...3......3.",
		"2.....2.......2.....2",
		".....4.........4.....",
		"....3...........3....",
		"...2......2......2...",
	}
)

// Premiums holds the letter- and word-multiplier grids of a board.
// It is read-only once built and may be shared between boards.
type Premiums struct {
	size   int
	letter []int
	word   []int
}

// DefaultPremiums returns the 21x21 layout of this variant
func DefaultPremiums() *Premiums {
	p, err := ParsePremiums(DefaultBoardSize, defaultLetterPremiums, defaultWordPremiums)
	if err != nil {
		panic(err)
	}
	return p
}

// NoPremiums returns a size x size layout with every multiplier at 1
func NoPremiums(size int) *Premiums {
	p := &Premiums{
		size:   size,
		letter: make([]int, size*size),
		word:   make([]int, size*size),
	}
	for i := range p.letter {
		p.letter[i] = 1
		p.word[i] = 1
	}
	return p
}

// ParsePremiums builds a layout from one string per row.
// Digits 1-9 are multipliers and '.' means 1.
func ParsePremiums(size int, letterRows, wordRows []string) (*Premiums, error) {
	letter, err := parsePremiumRows(size, letterRows)
	if err != nil {
		return nil, fmt.Errorf("letter premiums: %w", err)
	}
	word, err := parsePremiumRows(size, wordRows)
	if err != nil {
		return nil, fmt.Errorf("word premiums: %w", err)
	}
	return &Premiums{size: size, letter: letter, word: word}, nil
}

func parsePremiumRows(size int, rows []string) ([]int, error) {
	if len(rows) != size {
		return nil, fmt.Errorf("%w: %d rows for size %d", ErrPremiumShape, len(rows), size)
	}
	out := make([]int, 0, size*size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d squares", ErrPremiumShape, r, len(row))
		}
		for c := 0; c < len(row); c++ {
			ch := row[c]
			switch {
			case ch == '.':
				out = append(out, 1)
			case ch >= '1' && ch <= '9':
				out = append(out, int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: bad character %q at (%d,%d)", ErrPremiumShape, ch, r, c)
			}
		}
	}
	return out, nil
}

// Size returns the grid dimension
func (p *Premiums) Size() int {
	return p.size
}

// Letter returns the letter multiplier at pos, or 1 off the grid
func (p *Premiums) Letter(pos Position) int {
	if pos.Index < 0 || pos.Index >= len(p.letter) {
		return 1
	}
	return p.letter[pos.Index]
}

// Word returns the word multiplier at pos, or 1 off the grid
func (p *Premiums) Word(pos Position) int {
	if pos.Index < 0 || pos.Index >= len(p.word) {
		return 1
	}
	return p.word[pos.Index]
}
