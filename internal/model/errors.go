package model

import "errors"

// Common errors used across the application
var (
	// Tile errors
	ErrInvalidTileChar = errors.New("invalid tile character")

	// Geometry errors
	ErrPositionOverflow = errors.New("position is off the board")
	ErrWordExceedsBoard = errors.New("word does not fit on the board")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrPremiumShape     = errors.New("premium layout does not match board")
	ErrLetterConflict   = errors.New("word conflicts with a placed tile")
	ErrEmptyWord        = errors.New("word is empty")

	// Move errors
	ErrIllegalMove     = errors.New("illegal move")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidRack     = errors.New("invalid rack")

	// Lexicon errors
	ErrLexiconUnset        = errors.New("lexicon not supplied")
	ErrEmptyLexicon        = errors.New("lexicon is empty")
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// Analysis errors
	ErrAnalysisNotFound = errors.New("analysis not found")
)
