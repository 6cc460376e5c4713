package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabby/internal/api/apierr"
	"github.com/mcoot/scrabby/internal/api/handler"
	"github.com/mcoot/scrabby/internal/dependencies/clock"
	"github.com/mcoot/scrabby/internal/middleware"
	"github.com/mcoot/scrabby/internal/services/analysis"
	"github.com/mcoot/scrabby/internal/services/dictionary"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	Clock              clock.Clock
	AnalysisController *analysis.Controller
	DictionaryService  *dictionary.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	// Create handlers
	movesHandler := handler.NewMovesHandler(cfg.AnalysisController, cfg.Logger)
	lexiconHandler := handler.NewLexiconHandler(cfg.DictionaryService, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.Logging(cfg.Logger, clk))

	// Move analysis
	api.HandleFunc("/moves", movesHandler.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/moves/stream", movesHandler.Stream).Methods(http.MethodPost)
	api.HandleFunc("/moves/verify", movesHandler.Verify).Methods(http.MethodPost)
	api.HandleFunc("/moves/score", movesHandler.Score).Methods(http.MethodPost)
	api.HandleFunc("/moves/suggest", movesHandler.Suggest).Methods(http.MethodPost)
	api.HandleFunc("/analyses/{id}", movesHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/analyses/{id}", movesHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/board", movesHandler.Board).Methods(http.MethodPost)
	api.HandleFunc("/strategies", movesHandler.Strategies).Methods(http.MethodGet)

	// Lexicons
	api.HandleFunc("/lexicons", lexiconHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/lexicons/{name}", lexiconHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/lexicons/{name}", lexiconHandler.Put).Methods(http.MethodPut)
	api.HandleFunc("/lexicons/{name}", lexiconHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/lexicons/{name}/words/{word}", lexiconHandler.CheckWord).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", lexiconHandler.Health).Methods(http.MethodGet)

	return r
}

// apiPanicHandler returns a JSON error body after a panic
func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
