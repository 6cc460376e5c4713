package movegen

import (
	"github.com/samber/lo"

	"github.com/mcoot/scrabby/internal/model"
)

// CanCreateWord reports whether the rack can spell word. Each letter takes
// the first unused exact tile in rack order, falling back to the first
// unused blank. The matching is greedy and is not an optimal assignment.
func CanCreateWord(rack []model.Tile, word string) bool {
	used := make([]bool, len(rack))
	take := func(want model.Tile) bool {
		for i, t := range rack {
			if !used[i] && t == want {
				used[i] = true
				return true
			}
		}
		return false
	}

	for _, ch := range word {
		want, err := model.TileFromRune(ch)
		if err != nil {
			return false
		}
		if take(want) || take(model.Blank) {
			continue
		}
		return false
	}
	return true
}

// CreatableWords filters words down to those the rack can spell
func CreatableWords(rack []model.Tile, words []string) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		return CanCreateWord(rack, w)
	})
}
