package model

import (
	"slices"
	"strings"
)

// Lexicon is an immutable set of legal words. It is safe to share
// between goroutines without locking.
type Lexicon struct {
	words []string
	set   map[string]struct{}
}

// NewLexicon builds a lexicon from raw entries. Entries are trimmed and
// uppercased; anything that is not purely A-Z is dropped, as are duplicates.
// The word list is kept sorted.
func NewLexicon(entries []string) *Lexicon {
	set := make(map[string]struct{}, len(entries))
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		w := strings.ToUpper(strings.TrimSpace(e))
		if w == "" || !isLetters(w) {
			continue
		}
		if _, dup := set[w]; dup {
			continue
		}
		set[w] = struct{}{}
		words = append(words, w)
	}
	slices.Sort(words)
	return &Lexicon{words: words, set: set}
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Words returns the sorted word list. Callers must not modify it.
func (l *Lexicon) Words() []string {
	if l == nil {
		return nil
	}
	return l.words
}

// Contains reports whether word is legal
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.set[word]
	return ok
}

// Len returns the number of words
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}
