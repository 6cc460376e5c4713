package movegen

import (
	"iter"

	"github.com/mcoot/scrabby/internal/model"
)

// Candidate is a scored placement. Scores are computed before legality is known.
type Candidate struct {
	Word  model.Word
	Score int
}

// Ranking is the ranked candidate list of one generation call. Candidates
// are held strongest first and validated only as they are pulled, so a
// caller that stops early never pays for validating the rest.
// A Ranking is consumed once and is not safe for concurrent use.
type Ranking struct {
	board      *model.Board
	lexicon    Lexicon
	candidates []Candidate
	next       int
	checked    int
}

func newRanking(board *model.Board, lexicon Lexicon, candidates []Candidate) *Ranking {
	return &Ranking{
		board:      board,
		lexicon:    lexicon,
		candidates: candidates,
	}
}

// Next returns the next legal candidate, or false when none remain
func (r *Ranking) Next() (Candidate, bool) {
	for r.next < len(r.candidates) {
		c := r.candidates[r.next]
		r.next++
		r.checked++
		if VerifyMove(r.board, c.Word, r.lexicon) {
			return c, true
		}
	}
	return Candidate{}, false
}

// All yields the remaining legal candidates in descending score order
func (r *Ranking) All() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for {
			c, ok := r.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Take returns up to n legal candidates. n <= 0 takes all of them.
func (r *Ranking) Take(n int) []Candidate {
	var out []Candidate
	for c := range r.All() {
		out = append(out, c)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}

// Candidates returns how many candidates were generated, legal or not
func (r *Ranking) Candidates() int {
	return len(r.candidates)
}

// Checked returns how many candidates have been validated so far
func (r *Ranking) Checked() int {
	return r.checked
}
