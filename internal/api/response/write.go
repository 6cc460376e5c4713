package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// retryMillis tells EventSource clients how long to wait before reconnecting
const retryMillis = 3000

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// EventStream writes server-sent events, flushing after each one
type EventStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// ErrStreamingUnsupported is returned when the writer cannot flush
var ErrStreamingUnsupported = errors.New("streaming unsupported")

// NewEventStream sends the SSE headers and the retry hint.
// Nothing is written if w cannot flush.
func NewEventStream(w http.ResponseWriter) (*EventStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering
	w.WriteHeader(http.StatusOK)

	s := &EventStream{w: w, flusher: flusher}
	if _, err := w.Write([]byte("retry: " + strconv.Itoa(retryMillis) + "\n\n")); err != nil {
		return nil, err
	}
	flusher.Flush()
	return s, nil
}

// Send writes one event with data encoded as JSON
func (s *EventStream) Send(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := s.w.Write(formatEvent(event, string(payload))); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// formatEvent prefixes every line of data with "data: "
func formatEvent(event, data string) []byte {
	var sb strings.Builder
	sb.WriteString("event: ")
	sb.WriteString(event)
	sb.WriteByte('\n')
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r", ""), "\n") {
		sb.WriteString("data: ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
