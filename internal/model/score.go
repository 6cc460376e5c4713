package model

// CrossWordScore is a perpendicular word completed by one newly placed letter
type CrossWordScore struct {
	Word   Word
	Shared Position // square of the newly placed letter that formed it
	Score  int
}

// ScoreBreakdown is the itemised score of a single play
type ScoreBreakdown struct {
	Word       Word
	Primary    int // letter sum of the word times its word multiplier
	CrossWords []CrossWordScore
	Bonus      int
	Total      int
}
