package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabby/internal/api"
	"github.com/mcoot/scrabby/internal/api/response"
	"github.com/mcoot/scrabby/internal/factory"
	"github.com/mcoot/scrabby/internal/model"
	"github.com/mcoot/scrabby/internal/testutil"
)

// runCLI executes the root command and returns what it wrote to stdout
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"SCRABBY_SERVER", "SCRABBY_LOCAL", "SCRABBY_LEXICON_NAME", "SCRABBY_LEXICON_PATH", "SCRABBY_BOARD_SIZE", "SCRABBY_WORKERS"} {
		t.Setenv(key, "")
	}

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

type RemoteSuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestRemoteSuite(t *testing.T) {
	suite.Run(t, new(RemoteSuite))
}

func (s *RemoteSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.Require().NoError(s.app.LoadTestDictionary())

	router := api.NewRouter(api.RouterConfig{
		Logger:             testutil.QuietLogger(),
		Clock:              s.app.Clock,
		AnalysisController: s.app.AnalysisController,
		DictionaryService:  s.app.DictionaryService,
	})
	s.server = httptest.NewServer(router)
}

func (s *RemoteSuite) TearDownTest() {
	s.server.Close()
}

func (s *RemoteSuite) run(args ...string) (string, error) {
	return runCLI(s.T(), append([]string{"--server", s.server.URL}, args...)...)
}

func (s *RemoteSuite) runJSON(v any, args ...string) {
	out, err := s.run(append([]string{"-o", "json"}, args...)...)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal([]byte(out), v), out)
}

func (s *RemoteSuite) TestHealth() {
	var health response.Health
	s.runJSON(&health, "health")

	s.Equal("ok", health.Status)
	s.Equal([]string{"default"}, health.Lexicons)
}

func (s *RemoteSuite) TestMoves() {
	s.app.MockRandom.QueueString("abc123def456")

	var analysis response.Analysis
	s.runJSON(&analysis, "moves", "RADICA", "--move", "HELLO@11,11,right")

	s.Equal("abc123def456", analysis.ID)
	s.Require().Len(analysis.Moves, 2)
	s.Equal(response.Move{Row: 5, Col: 14, Direction: "down", Word: "RADICAL", Score: 22}, analysis.Moves[0])
	s.Equal(20, analysis.Moves[1].Score)

	// The saved analysis can be fetched back by ID
	var fetched response.Analysis
	s.runJSON(&fetched, "analysis", "abc123def456")
	s.Equal(analysis.Moves, fetched.Moves)
}

func (s *RemoteSuite) TestMovesText() {
	out, err := s.run("moves", "RADICA", "-m", "HELLO@11,11,r", "--limit", "1")
	s.Require().NoError(err)

	s.Contains(out, "Rack: RADICA")
	s.Equal(1, strings.Count(out, "RADICAL"))
}

func (s *RemoteSuite) TestMovesFromPositionFile() {
	data, err := json.Marshal([]model.Move{testutil.HelloMove})
	s.Require().NoError(err)
	path := filepath.Join(s.T().TempDir(), "position.json")
	s.Require().NoError(os.WriteFile(path, data, 0o644))

	var analysis response.Analysis
	s.runJSON(&analysis, "moves", "RADICA", "--position", path)
	s.Len(analysis.Moves, 2)
}

func (s *RemoteSuite) TestStream() {
	out, err := s.run("-o", "json", "moves", "RADICA", "-m", "HELLO@11,11,right", "--stream")
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 3)

	var first response.Move
	s.Require().NoError(json.Unmarshal([]byte(lines[0]), &first))
	s.Equal(22, first.Score)

	var done map[string]response.StreamDone
	s.Require().NoError(json.Unmarshal([]byte(lines[2]), &done))
	s.GreaterOrEqual(done["done"].Candidates, 2)
}

func (s *RemoteSuite) TestStreamReportsErrors() {
	_, err := s.run("moves", "RADICA", "--lexicon-name", "missing", "--stream")
	s.Error(err)
}

func (s *RemoteSuite) TestVerify() {
	var legal response.Verify
	s.runJSON(&legal, "verify", "RADICAL@5,14,down", "-m", "HELLO@11,11,right")
	s.True(legal.Legal)

	var illegal response.Verify
	s.runJSON(&illegal, "verify", "CAT@10,11,down", "-m", "HELLO@11,11,right")
	s.False(illegal.Legal)
	s.NotEmpty(illegal.Reason)
}

func (s *RemoteSuite) TestScore() {
	var breakdown response.ScoreBreakdown
	s.runJSON(&breakdown, "score", "HELLO@11,11,right")
	s.Equal(13, breakdown.Total)
}

func (s *RemoteSuite) TestSuggest() {
	var suggestion response.Suggestion
	s.runJSON(&suggestion, "suggest", "RADICA", "-m", "HELLO@11,11,right")

	s.Equal(model.StrategyBest, suggestion.Strategy)
	s.Equal(22, suggestion.Move.Score)

	_, err := s.run("suggest", "RADICA", "-m", "HELLO@11,11,right", "--strategy", "greedy")
	s.ErrorContains(err, "UNKNOWN_STRATEGY")
}

func (s *RemoteSuite) TestBoardHighlight() {
	var board response.Board
	s.runJSON(&board, "--board-size", "7", "board", "-m", "CAT@1,1,right", "--highlight", "CATS@1,1,right")

	s.Equal(7, board.Size)
	s.Equal(".CATs..", board.Rows[1])
}

func (s *RemoteSuite) TestBoardText() {
	out, err := s.run("--board-size", "5", "board", "-m", "GO@0,0,down")
	s.Require().NoError(err)

	s.Contains(out, "  0 | G  .  .  .  . |")
	s.Contains(out, "  1 | O  .  .  .  . |")
}

func (s *RemoteSuite) TestStrategies() {
	var names []string
	s.runJSON(&names, "strategies")
	s.ElementsMatch(model.ValidStrategies(), names)
}

func (s *RemoteSuite) TestLexicons() {
	path := testutil.WriteLexicon(s.T(), "cat", "dog")

	var uploaded response.Lexicon
	s.runJSON(&uploaded, "lexicon", "upload", "pets", path)
	s.Equal(response.Lexicon{Name: "pets", Words: 2}, uploaded)

	var all []response.Lexicon
	s.runJSON(&all, "lexicons", "list")
	s.Len(all, 2)

	var shown response.Lexicon
	s.runJSON(&shown, "lexicon", "show", "pets")
	s.Equal(2, shown.Words)

	var check response.WordCheck
	s.runJSON(&check, "--lexicon-name", "pets", "lexicon", "check", "dog")
	s.Equal(response.WordCheck{Word: "DOG", Valid: true}, check)
}

func (s *RemoteSuite) TestDeleteCommands() {
	s.app.MockRandom.QueueString("removeme0001")
	_, err := s.run("moves", "RADICA", "-m", "HELLO@11,11,right")
	s.Require().NoError(err)

	_, err = s.run("analysis", "removeme0001", "--delete")
	s.Require().NoError(err)
	_, err = s.run("analysis", "removeme0001")
	s.ErrorContains(err, "ANALYSIS_NOT_FOUND")

	path := testutil.WriteLexicon(s.T(), "cat")
	_, err = s.run("lexicon", "upload", "pets", path)
	s.Require().NoError(err)

	_, err = s.run("lexicon", "delete", "pets")
	s.Require().NoError(err)
	_, err = s.run("lexicon", "show", "pets")
	s.ErrorContains(err, "LEXICON_NOT_LOADED")
}

func (s *RemoteSuite) TestAPIErrorsAreReturned() {
	_, err := s.run("moves", "AB1")
	s.ErrorContains(err, "INVALID_TILES")

	_, err = s.run("analysis", "nope")
	s.ErrorContains(err, "ANALYSIS_NOT_FOUND")
}

func TestLocalEngine(t *testing.T) {
	lexicon := testutil.WriteLexicon(t, testutil.HelloRadicalWords...)
	local := []string{"--local", "--lexicon", lexicon, "-o", "json"}

	out, err := runCLI(t, append(local, "moves", "RADICA", "-m", "HELLO@11,11,right")...)
	require.NoError(t, err)
	var analysis response.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis), out)
	require.Len(t, analysis.Moves, 2)
	assert.Equal(t, 22, analysis.Moves[0].Score)
	assert.Len(t, analysis.ID, 12)

	out, err = runCLI(t, append(local, "verify", "HELLO@11,11,right")...)
	require.NoError(t, err)
	var verify response.Verify
	require.NoError(t, json.Unmarshal([]byte(out), &verify), out)
	assert.True(t, verify.Legal)

	out, err = runCLI(t, append(local, "moves", "RADICA", "-m", "HELLO@11,11,right", "--stream")...)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	out, err = runCLI(t, append(local, "health")...)
	require.NoError(t, err)
	var health response.Health
	require.NoError(t, json.Unmarshal([]byte(out), &health), out)
	assert.Equal(t, response.Health{Status: "ok", Lexicons: []string{"default"}}, health)
}

func TestLocalEngineMissingLexicon(t *testing.T) {
	_, err := runCLI(t, "--local", "--lexicon", filepath.Join(t.TempDir(), "none.txt"), "strategies")
	assert.Error(t, err)
}

func TestLocalAnalysisUnavailable(t *testing.T) {
	_, err := runCLI(t, "--local", "analysis", "abc")
	assert.ErrorContains(t, err, "only kept by a server")
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("hello@11,11,right")
	require.NoError(t, err)
	assert.Equal(t, testutil.HelloMove, m)

	m, err = ParseMove("RADICAL@5, 14, d")
	require.NoError(t, err)
	assert.Equal(t, model.Move{Row: 5, Col: 14, Direction: model.Down, Word: "RADICAL"}, m)

	m, err = ParseMove("AT@0,0")
	require.NoError(t, err)
	assert.Equal(t, model.Right, m.Direction)

	for _, bad := range []string{"HELLO", "@1,1", "HI@1", "HI@1,2,3,4", "HI@x,1", "HI@1,y", "HI@1,1,up"} {
		_, err := ParseMove(bad)
		assert.Error(t, err, bad)
	}
}

func TestHighlightBoard(t *testing.T) {
	before := response.Board{Size: 3, Rows: []string{"...", "AT.", "..."}}
	after := response.Board{Size: 3, Rows: []string{"...", "ATE", "..."}}

	assert.Equal(t, []string{"...", "ATe", "..."}, HighlightBoard(before, after).Rows)
	assert.Equal(t, after, HighlightBoard(response.Board{Size: 2}, after))
}
