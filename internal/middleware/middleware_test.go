package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scrabby/internal/dependencies/mocks"
	"github.com/mcoot/scrabby/internal/testutil"
)

func TestLoggingRecordsStatusAndDuration(t *testing.T) {
	logger, buf := testutil.CaptureLogger(slog.LevelInfo)
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	clk.Step = 250 * time.Millisecond

	h := Logging(logger, clk)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("nope"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/moves/verify", nil))

	entries := testutil.LogEntries(t, buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/api/v1/moves/verify", entry["path"])
	assert.Equal(t, float64(http.StatusUnprocessableEntity), entry["status"])
	assert.Equal(t, float64(4), entry["size"])
	assert.Equal(t, float64(250*time.Millisecond), entry["duration"])
}

func TestResponseWriterFlushes(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &ResponseWriter{ResponseWriter: rr, status: http.StatusOK}

	rw.Flush()

	assert.True(t, rr.Flushed)
	assert.Same(t, rr, rw.Unwrap())
}

func TestRecoveryWritesResponse(t *testing.T) {
	logger := testutil.NopLogger()
	var got any

	h := Recovery(logger, func(w http.ResponseWriter, r *http.Request, recovered any) {
		got = recovered
		w.WriteHeader(http.StatusTeapot)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "boom", got)
}

func TestRecoveryRepanicsAbort(t *testing.T) {
	logger := testutil.NopLogger()
	h := Recovery(logger, func(w http.ResponseWriter, r *http.Request, recovered any) {
		t.Fatal("abort must not be handled")
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
