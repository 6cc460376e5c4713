package redis

import (
	"fmt"

	"github.com/mcoot/scrabby/internal/model"
)

// Key prefix for all scrabby data
const keyPrefix = "scrabby"

// lexiconKey returns the Redis key for the word SET of a named lexicon
func lexiconKey(name string) string {
	return fmt.Sprintf("%s:lexicon:%s", keyPrefix, name)
}

// lexiconIndexKey returns the Redis key for the SET of lexicon names
func lexiconIndexKey() string {
	return fmt.Sprintf("%s:idx:lexicons", keyPrefix)
}

// analysisKey returns the Redis key for a saved Analysis
func analysisKey(id model.AnalysisID) string {
	return fmt.Sprintf("%s:analysis:%s", keyPrefix, id)
}
