package e2e_test

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scrabby/internal/api"
	"github.com/mcoot/scrabby/internal/api/response"
	"github.com/mcoot/scrabby/internal/factory"
	"github.com/mcoot/scrabby/internal/testutil"
)

const sampleLexicon = "data/sample_words.txt"

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	lexicon    string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "scrabby-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/scrabby")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		lexicon:    filepath.Join(projectRoot, sampleLexicon),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = cliEnv()
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runLocal(args ...string) (string, error) {
	fullArgs := append([]string{
		"--local",
		"--lexicon", r.lexicon,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = cliEnv()
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// cliEnv is the test environment without SCRABBY_* overrides
func cliEnv() []string {
	return slices.DeleteFunc(os.Environ(), func(kv string) bool {
		return strings.HasPrefix(kv, "SCRABBY_")
	})
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *api.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := testutil.QuietLogger()

	// Create application
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	// Load lexicon
	projectRoot := findProjectRoot(t)
	err = app.LoadLexicon(context.Background(), "default", filepath.Join(projectRoot, sampleLexicon))
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		Clock:              app.Clock,
		AnalysisController: app.AnalysisController,
		DictionaryService:  app.DictionaryService,
	})

	server := api.NewServer(router, api.ServerConfig{Host: "127.0.0.1"}, logger)
	require.NoError(t, server.Listen())

	go func() {
		if err := server.Start(); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + server.Addr()
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

func assertRanked(t *testing.T, moves []response.Move) {
	t.Helper()
	for i := 1; i < len(moves); i++ {
		assert.GreaterOrEqual(t, moves[i-1].Score, moves[i].Score, "moves %d and %d out of order", i-1, i)
	}
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp response.Health
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"default"}, resp.Lexicons)
}

func TestCLI_AnalyzeAndFetch(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("moves", "RADICA", "--move", "HELLO@11,11,right")
	require.NoError(t, err, "output: %s", output)

	var analysis response.Analysis
	require.NoError(t, json.Unmarshal([]byte(output), &analysis))
	assert.Len(t, analysis.ID, 12)
	assert.Equal(t, "RADICA", analysis.Rack)
	require.NotEmpty(t, analysis.Moves)
	assertRanked(t, analysis.Moves)
	assert.Contains(t, analysis.Moves, response.Move{Row: 5, Col: 14, Direction: "down", Word: "RADICAL", Score: 22})

	// Fetch it back
	output, err = cli.run("analysis", analysis.ID)
	require.NoError(t, err, "output: %s", output)

	var fetched response.Analysis
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, analysis.Moves, fetched.Moves)
}

func TestCLI_StreamMatchesAnalysis(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("moves", "TEARS", "--move", "HELLO@11,11,right")
	require.NoError(t, err, "output: %s", output)
	var analysis response.Analysis
	require.NoError(t, json.Unmarshal([]byte(output), &analysis))

	output, err = cli.run("moves", "TEARS", "--move", "HELLO@11,11,right", "--stream")
	require.NoError(t, err, "output: %s", output)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, len(analysis.Moves)+1)

	streamed := make([]response.Move, 0, len(analysis.Moves))
	for _, line := range lines[:len(lines)-1] {
		var m response.Move
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		streamed = append(streamed, m)
	}
	assert.Equal(t, analysis.Moves, streamed)
	assert.Contains(t, lines[len(lines)-1], `"done"`)
}

func TestCLI_MoveCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Verify
	output, err := cli.run("verify", "RADICAL@5,14,down", "--move", "HELLO@11,11,right")
	require.NoError(t, err, "output: %s", output)
	var verify response.Verify
	require.NoError(t, json.Unmarshal([]byte(output), &verify))
	assert.True(t, verify.Legal)

	output, err = cli.run("verify", "XQZ@0,0,right")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &verify))
	assert.False(t, verify.Legal)

	// Score
	output, err = cli.run("score", "HELLO@11,11,right")
	require.NoError(t, err, "output: %s", output)
	var breakdown response.ScoreBreakdown
	require.NoError(t, json.Unmarshal([]byte(output), &breakdown))
	assert.Equal(t, 13, breakdown.Total)

	// Suggest
	output, err = cli.run("suggest", "RADICA", "--move", "HELLO@11,11,right")
	require.NoError(t, err, "output: %s", output)
	var suggestion response.Suggestion
	require.NoError(t, json.Unmarshal([]byte(output), &suggestion))
	assert.Equal(t, "best", suggestion.Strategy)
	assert.GreaterOrEqual(t, suggestion.Move.Score, 22)

	// Board
	output, err = cli.run("board", "--move", "HELLO@11,11,right", "--highlight", "RADICAL@5,14,down")
	require.NoError(t, err, "output: %s", output)
	var board response.Board
	require.NoError(t, json.Unmarshal([]byte(output), &board))
	assert.Equal(t, 21, board.Size)
	assert.Equal(t, strings.Repeat(".", 14)+"a"+strings.Repeat(".", 6), board.Rows[10])
	assert.Equal(t, strings.Repeat(".", 11)+"HELLO"+strings.Repeat(".", 5), board.Rows[11])
}

func TestCLI_LexiconCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	path := filepath.Join(t.TempDir(), "birds.txt")
	require.NoError(t, os.WriteFile(path, []byte("owl\nwren\nkite\n"), 0o644))

	output, err := cli.run("lexicon", "upload", "birds", path)
	require.NoError(t, err, "output: %s", output)
	var lex response.Lexicon
	require.NoError(t, json.Unmarshal([]byte(output), &lex))
	assert.Equal(t, response.Lexicon{Name: "birds", Words: 3}, lex)

	output, err = cli.run("lexicon", "list")
	require.NoError(t, err, "output: %s", output)
	var all []response.Lexicon
	require.NoError(t, json.Unmarshal([]byte(output), &all))
	assert.Len(t, all, 2)

	output, err = cli.run("--lexicon-name", "birds", "lexicon", "check", "wren")
	require.NoError(t, err, "output: %s", output)
	var check response.WordCheck
	require.NoError(t, json.Unmarshal([]byte(output), &check))
	assert.True(t, check.Valid)

	// Moves are checked against the named lexicon
	output, err = cli.run("--lexicon-name", "birds", "verify", "HELLO@11,11,right")
	require.NoError(t, err, "output: %s", output)
	var verify response.Verify
	require.NoError(t, json.Unmarshal([]byte(output), &verify))
	assert.False(t, verify.Legal)
}

func TestCLI_Errors(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("moves", "AB1")
	require.Error(t, err)
	assert.Contains(t, output, "INVALID_TILES")

	output, err = cli.run("moves", "CAT", "--lexicon-name", "missing")
	require.Error(t, err)
	assert.Contains(t, output, "LEXICON_NOT_LOADED")

	output, err = cli.run("analysis", "nosuchid")
	require.Error(t, err)
	assert.Contains(t, output, "ANALYSIS_NOT_FOUND")
}

func TestCLI_LocalMatchesServer(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	args := []string{"moves", "TEARS", "--move", "HELLO@11,11,right", "--limit", "20"}

	output, err := cli.run(args...)
	require.NoError(t, err, "output: %s", output)
	var remote response.Analysis
	require.NoError(t, json.Unmarshal([]byte(output), &remote))

	output, err = cli.runLocal(args...)
	require.NoError(t, err, "output: %s", output)
	var local response.Analysis
	require.NoError(t, json.Unmarshal([]byte(output), &local))

	assert.Equal(t, remote.Moves, local.Moves)
	assert.Equal(t, remote.Candidates, local.Candidates)
}
