package model

// Rules are the variant-specific scoring constants
type Rules struct {
	// BonusLength is the word length that earns Bonus when placed in one move.
	// This variant uses 8, not the 7 of the standard game.
	BonusLength int
	// Bonus is added after all multipliers are applied
	Bonus int
}

// DefaultRules returns the rules of the 21x21 variant
func DefaultRules() Rules {
	return Rules{
		BonusLength: 8,
		Bonus:       50,
	}
}
