package movegen

import (
	"github.com/mcoot/scrabby/internal/model"
)

// MovePositions returns every placement of word, Down then Right, that
// lands one of its letters on the anchor with the same tile as the anchor.
// The results are not checked at all: they may run off the board or clash
// with other tiles. VerifyMove decides which of them are legal.
func MovePositions(board *model.Board, anchor model.Position, word string) []model.Word {
	anchorTile, ok := board.Get(anchor)
	if !ok {
		return nil
	}

	var out []model.Word
	for _, dir := range []model.Direction{model.Down, model.Right} {
		for i, ch := range []rune(word) {
			if ch != anchorTile.Rune() {
				continue
			}
			out = append(out, model.Word{
				Start:     anchor.Add(dir, -i),
				Direction: dir,
				Text:      word,
			})
		}
	}
	return out
}
