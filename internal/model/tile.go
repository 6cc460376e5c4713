package model

import (
	"fmt"
	"strings"
)

// Tile is one playable symbol: a letter A-Z or a blank
type Tile uint8

// NoTile marks an empty square. It is never a valid rack or word tile.
const NoTile Tile = 0

const (
	A Tile = iota + 1
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	Blank
)

// BlankRune is the character used for a blank tile in words and racks
const BlankRune = ' '

type tileInfo struct {
	char  rune
	value int
}

// tileTable maps each tile to its character and point value
var tileTable = map[Tile]tileInfo{
	A: {'A', 1}, B: {'B', 3}, C: {'C', 3}, D: {'D', 2}, E: {'E', 1},
	F: {'F', 4}, G: {'G', 2}, H: {'H', 4}, I: {'I', 1}, J: {'J', 8},
	K: {'K', 5}, L: {'L', 1}, M: {'M', 3}, N: {'N', 1}, O: {'O', 1},
	P: {'P', 3}, Q: {'Q', 10}, R: {'R', 1}, S: {'S', 1}, T: {'T', 1},
	U: {'U', 1}, V: {'V', 4}, W: {'W', 4}, X: {'X', 8}, Y: {'Y', 4},
	Z:     {'Z', 10},
	Blank: {BlankRune, 0},
}

// runeTable is the reverse of tileTable
var runeTable = func() map[rune]Tile {
	m := make(map[rune]Tile, len(tileTable))
	for t, info := range tileTable {
		m[info.char] = t
	}
	return m
}()

// TileFromRune converts an uppercase letter or a space into a Tile
func TileFromRune(r rune) (Tile, error) {
	t, ok := runeTable[r]
	if !ok {
		return NoTile, fmt.Errorf("%w: %q", ErrInvalidTileChar, r)
	}
	return t, nil
}

// MustTile is like TileFromRune but panics on invalid input.
// Only use it with literals.
func MustTile(r rune) Tile {
	t, err := TileFromRune(r)
	if err != nil {
		panic(err)
	}
	return t
}

// Rune returns the character for the tile, or 0 for NoTile
func (t Tile) Rune() rune {
	return tileTable[t].char
}

// Value returns the tile's point value. Blanks are worth nothing.
func (t Tile) Value() int {
	return tileTable[t].value
}

// IsBlank reports whether the tile is a wildcard
func (t Tile) IsBlank() bool {
	return t == Blank
}

func (t Tile) String() string {
	if t == NoTile {
		return "."
	}
	return string(t.Rune())
}

// ParseTiles converts a word into tiles. Every character must be A-Z or a space.
func ParseTiles(s string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(s))
	for _, r := range s {
		t, err := TileFromRune(r)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// ParseRack reads a rack as typed by a player: case-insensitive,
// with '?' or '_' accepted as blanks alongside a space
func ParseRack(s string) ([]Tile, error) {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case '?', '_':
			return BlankRune
		}
		return r
	}, strings.ToUpper(s))
	return ParseTiles(normalized)
}

// TilesString renders tiles back into a word
func TilesString(tiles []Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteRune(t.Rune())
	}
	return sb.String()
}
