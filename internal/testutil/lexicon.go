package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcoot/scrabby/internal/model"
)

// HelloRadicalWords is the smallest lexicon with a known answer: with HELLO
// across from (11,11) on the default board, the rack RADICA plays RADICAL
// down through either L, for 22 at (5,14) and 20 at (5,13).
var HelloRadicalWords = []string{"HELLO", "RADICAL"}

// HelloMove is the opening move the HelloRadicalWords scenario starts from
var HelloMove = model.Move{Row: 11, Col: 11, Direction: model.Right, Word: "HELLO"}

// WriteLexicon writes words one per line to a file in a temp dir and returns its path
func WriteLexicon(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}
	return path
}
