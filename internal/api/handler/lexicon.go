package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabby/internal/api/request"
	"github.com/mcoot/scrabby/internal/api/response"
	"github.com/mcoot/scrabby/internal/services/dictionary"
)

// maxLexiconBytes bounds an uploaded word list
const maxLexiconBytes = 32 << 20

// LexiconHandler handles word list endpoints
type LexiconHandler struct {
	dictionary *dictionary.Service
	logger     *slog.Logger
}

// NewLexiconHandler creates a new lexicon handler
func NewLexiconHandler(dict *dictionary.Service, logger *slog.Logger) *LexiconHandler {
	return &LexiconHandler{
		dictionary: dict,
		logger:     logger.With(slog.String("component", "lexicon-handler")),
	}
}

// List handles GET /api/v1/lexicons
func (h *LexiconHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.dictionary.Names()
	resp := make([]response.Lexicon, len(names))
	for i, name := range names {
		resp[i] = response.Lexicon{Name: name, Words: h.dictionary.WordCount(name)}
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/lexicons/{name}
func (h *LexiconHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	lex, err := h.dictionary.Lexicon(name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Lexicon{Name: name, Words: lex.Len()})
}

// Put handles PUT /api/v1/lexicons/{name}.
// The body is either JSON {"words": [...]} or plain text with one word per line.
// The list replaces any lexicon of the same name and is saved to storage.
func (h *LexiconHandler) Put(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	r.Body = http.MaxBytesReader(w, r.Body, maxLexiconBytes)

	var body io.Reader = r.Body
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req request.LexiconRequest
		if err := decodeJSON(r, &req); err != nil {
			WriteError(w, err)
			return
		}
		body = bytes.NewBufferString(strings.Join(req.Words, "\n"))
	}

	if err := h.dictionary.LoadFromReader(r.Context(), name, body); err != nil {
		WriteError(w, err)
		return
	}

	count := h.dictionary.WordCount(name)
	h.logger.Info("lexicon loaded",
		slog.String("lexicon", name),
		slog.Int("words", count),
	)

	response.JSON(w, http.StatusOK, response.Lexicon{Name: name, Words: count})
}

// CheckWord handles GET /api/v1/lexicons/{name}/words/{word}
func (h *LexiconHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]
	word := strings.ToUpper(vars["word"])

	if _, err := h.dictionary.Lexicon(name); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordCheck{Word: word, Valid: h.dictionary.IsValidWord(name, word)})
}

// Delete handles DELETE /api/v1/lexicons/{name}
func (h *LexiconHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.dictionary.Delete(r.Context(), name); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("lexicon deleted", slog.String("lexicon", name))
	response.NoContent(w)
}

// Health handles GET /api/v1/health
func (h *LexiconHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthFromLexicons(h.dictionary.Names()))
}
