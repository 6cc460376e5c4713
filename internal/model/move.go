package model

import (
	"encoding/json"
	"fmt"
)

// Move is a play as clients describe it: 0-indexed row and column of the
// first letter, the direction, and the word text
type Move struct {
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
	Word      string    `json:"word"`
}

// ScoredMove is a move together with the points it would earn
type ScoredMove struct {
	Move
	Score int `json:"score"`
}

// MoveFromWord converts a placement back into client coordinates
func MoveFromWord(w Word) Move {
	return Move{
		Row:       w.Start.Row(),
		Col:       w.Start.Col(),
		Direction: w.Direction,
		Word:      w.Text,
	}
}

// Place positions the move on a size x size board
func (m Move) Place(size int) (Word, error) {
	return NewWord(m.Row, m.Col, size, m.Direction, m.Word)
}

func (m Move) String() string {
	return fmt.Sprintf("%s at (%d,%d) %s", m.Word, m.Row, m.Col, m.Direction)
}

// MarshalJSON writes the direction by name
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts any name ParseDirection does
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
