package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStream(t *testing.T) {
	rr := httptest.NewRecorder()

	stream, err := NewEventStream(rr)
	require.NoError(t, err)
	require.NoError(t, stream.Send("move", Move{Row: 5, Col: 14, Direction: "down", Word: "RADICAL", Score: 22}))
	require.NoError(t, stream.Send("done", StreamDone{Candidates: 4, Checked: 4}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "retry: 3000\n\n"+
		"event: move\ndata: {\"row\":5,\"col\":14,\"direction\":\"down\",\"word\":\"RADICAL\",\"score\":22}\n\n"+
		"event: done\ndata: {\"candidates\":4,\"checked\":4,\"elapsed_ms\":0}\n\n",
		rr.Body.String())
}

func TestFormatEventMultiline(t *testing.T) {
	assert.Equal(t, "event: note\ndata: a\ndata: b\n\n", string(formatEvent("note", "a\r\nb")))
}

type plainWriter struct {
	http.ResponseWriter
}

func TestEventStreamNeedsFlusher(t *testing.T) {
	rr := httptest.NewRecorder()

	_, err := NewEventStream(plainWriter{rr})
	assert.ErrorIs(t, err, ErrStreamingUnsupported)
	assert.Empty(t, rr.Header().Get("Content-Type"))
}
