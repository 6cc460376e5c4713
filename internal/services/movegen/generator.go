package movegen

import (
	"cmp"
	"runtime"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/scrabby/internal/model"
)

// Scorer prices a candidate placement
type Scorer interface {
	Score(board *model.Board, word model.Word) (int, error)
}

// Generator enumerates and ranks candidate plays
type Generator struct {
	scorer  Scorer
	workers int
}

// NewGenerator creates a Generator. workers bounds how many anchors are
// processed at once; 0 or less means GOMAXPROCS.
func NewGenerator(scorer Scorer, workers int) *Generator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		scorer:  scorer,
		workers: workers,
	}
}

// BestMoves builds the ranking of every placement that extends board
// through an occupied square using the rack plus that square's tile.
//
// Candidates are scored eagerly and sorted by descending score; equal
// scores keep anchor order (row-major), then lexicon order, then Down
// before Right. Legality is checked lazily as the ranking is consumed.
func (g *Generator) BestMoves(board *model.Board, rack []model.Tile, lexicon Lexicon) (*Ranking, error) {
	if missingLexicon(lexicon) {
		return nil, model.ErrLexiconUnset
	}
	words := lexicon.Words()
	if len(words) == 0 {
		return nil, model.ErrEmptyLexicon
	}

	anchors := board.Anchors()
	anchorTiles := lo.Map(anchors, func(pos model.Position, _ int) model.Tile {
		t, _ := board.Get(pos)
		return t
	})

	// Anchors with the same tile share one feasibility pass over the lexicon
	distinct := lo.Uniq(anchorTiles)
	feasible := make([][]string, len(distinct))
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for i, t := range distinct {
		eg.Go(func() error {
			augmented := append(slices.Clone(rack), t)
			feasible[i] = CreatableWords(augmented, words)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	byTile := make(map[model.Tile][]string, len(distinct))
	for i, t := range distinct {
		byTile[t] = feasible[i]
	}

	perAnchor := make([][]Candidate, len(anchors))
	for i, anchor := range anchors {
		eg.Go(func() error {
			perAnchor[i] = g.candidatesAt(board, anchor, byTile[anchorTiles[i]])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	all := lo.Flatten(perAnchor)
	slices.SortStableFunc(all, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return newRanking(board, lexicon, all), nil
}

// candidatesAt places every feasible word through anchor and scores it.
// Placements that do not fit score 0; they are rejected when validated.
func (g *Generator) candidatesAt(board *model.Board, anchor model.Position, words []string) []Candidate {
	var out []Candidate
	for _, w := range words {
		for _, word := range MovePositions(board, anchor, w) {
			score, err := g.scorer.Score(board, word)
			if err != nil {
				score = 0
			}
			out = append(out, Candidate{Word: word, Score: score})
		}
	}
	return out
}
