package model

// Move-choosing strategy names
const (
	StrategyBest   = "best"
	StrategyRandom = "random"
)

// StrategyDisplayName returns a human-readable label for a strategy
func StrategyDisplayName(strategy string) string {
	switch strategy {
	case StrategyBest:
		return "Best"
	case StrategyRandom:
		return "Random top pick"
	default:
		return strategy
	}
}

// ValidStrategies returns all valid strategy names
func ValidStrategies() []string {
	return []string{StrategyBest, StrategyRandom}
}
