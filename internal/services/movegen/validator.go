package movegen

import (
	"fmt"

	"github.com/mcoot/scrabby/internal/model"
)

// Lexicon is the read-only word collection the generator and validator need
type Lexicon interface {
	Words() []string
	Contains(word string) bool
}

var _ Lexicon = (*model.Lexicon)(nil)

// missingLexicon catches a nil interface and a nil *model.Lexicon inside one
func missingLexicon(lexicon Lexicon) bool {
	if lexicon == nil {
		return true
	}
	l, ok := lexicon.(*model.Lexicon)
	return ok && l == nil
}

// VerifyMove reports whether word can legally be placed on board
func VerifyMove(board *model.Board, word model.Word, lexicon Lexicon) bool {
	return CheckMove(board, word, lexicon) == nil
}

// CheckMove is VerifyMove with the reason for rejection. Every rejection
// wraps model.ErrIllegalMove, except a missing lexicon.
//
// A move is legal when it fits on the board, agrees with every tile it
// overlaps, and every word it forms is in the lexicon or was played before:
// the full run along its own axis when it joins tiles beyond its ends, and
// the perpendicular run through each newly placed letter. All runs are read
// through an overlay, so letters supplied by the move itself are counted.
func CheckMove(board *model.Board, word model.Word, lexicon Lexicon) error {
	if missingLexicon(lexicon) {
		return model.ErrLexiconUnset
	}
	if word.Start.Size != board.Size() {
		return illegal(word, fmt.Errorf("%w: position is for a %dx%d board", model.ErrPositionOverflow, word.Start.Size, word.Start.Size))
	}
	tiles, err := word.Tiles()
	if err != nil {
		return illegal(word, err)
	}
	positions, err := word.Positions()
	if err != nil {
		return illegal(word, err)
	}

	for i, pos := range positions {
		if existing, ok := board.Get(pos); ok && existing != tiles[i] {
			return illegal(word, fmt.Errorf("%w: %s holds %s", model.ErrLetterConflict, pos, existing))
		}
	}

	overlay, err := model.NewOverlay(board, word)
	if err != nil {
		return illegal(word, err)
	}

	accepted := func(text string) bool {
		return lexicon.Contains(text) || board.HasPlayed(text)
	}

	if run, ok := model.FindBoundaryWord(overlay, word.Start, word.Direction); ok && run.Len() > word.Len() {
		if !accepted(run.Text) {
			return illegal(word, fmt.Errorf("extends into %q", run.Text))
		}
	}

	cross := word.Direction.Opposite()
	for _, pos := range positions {
		if !board.IsEmpty(pos) {
			continue
		}
		run, ok := model.FindBoundaryWord(overlay, pos, cross)
		if !ok {
			continue
		}
		if !accepted(run.Text) {
			return illegal(word, fmt.Errorf("forms %q at %s", run.Text, run.Start))
		}
	}

	return nil
}

func illegal(word model.Word, reason error) error {
	return fmt.Errorf("%w: %q at %s %s: %w", model.ErrIllegalMove, word.Text, word.Start, word.Direction, reason)
}
