package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/scrabby/internal/api"
	"github.com/mcoot/scrabby/internal/config"
	"github.com/mcoot/scrabby/internal/factory"
	"github.com/mcoot/scrabby/internal/model"
	redisstorage "github.com/mcoot/scrabby/internal/storage/redis"
)

func main() {
	configPath := flag.String("config", os.Getenv("SCRABBY_CONFIG"), "Path to a YAML, TOML or JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, err := cfg.Logging.NewLogger(os.Stdout)
	if err != nil {
		slog.Error("failed to create logger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(factoryConfig(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	// Restore lexicons uploaded before a restart
	restored, err := app.DictionaryService.LoadAll(context.Background())
	if err != nil {
		logger.Warn("could not restore stored lexicons", slog.String("error", err.Error()))
	} else if len(restored) > 0 {
		logger.Info("restored stored lexicons", slog.Any("lexicons", restored))
	}

	// Load lexicon; the server still answers lexicon uploads without one
	if err := app.LoadLexicon(context.Background(), cfg.Lexicon.Name, cfg.Lexicon.Path); err != nil {
		logger.Warn("could not load lexicon",
			slog.String("lexicon", cfg.Lexicon.Name),
			slog.String("path", cfg.Lexicon.Path),
			slog.String("error", err.Error()),
		)
	} else {
		logger.Info("lexicon loaded",
			slog.String("lexicon", cfg.Lexicon.Name),
			slog.Int("words", app.DictionaryService.WordCount(cfg.Lexicon.Name)),
		)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		Clock:              app.Clock,
		AnalysisController: app.AnalysisController,
		DictionaryService:  app.DictionaryService,
	})

	// Create server
	server := api.NewServer(router, api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Listen(); err != nil {
		logger.Error("failed to listen", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func factoryConfig(cfg config.Config, logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Rules:       &model.Rules{BonusLength: cfg.Engine.BonusLength, Bonus: cfg.Engine.Bonus},
		BoardSize:   cfg.Engine.BoardSize,
		Workers:     cfg.Engine.Workers,
		TopK:        cfg.Engine.TopK,
		MaxResults:  cfg.Engine.MaxResults,
		Logger:      logger,
		StorageType: cfg.Storage.Type,
	}
	if cfg.Storage.Type == factory.StorageTypeRedis {
		fc.RedisConfig = &redisstorage.Config{
			URL:          cfg.Storage.Redis.URL,
			PoolSize:     cfg.Storage.Redis.PoolSize,
			MinIdleConns: cfg.Storage.Redis.MinIdleConns,
			AnalysisTTL:  cfg.Storage.Redis.AnalysisTTL,
		}
	}
	return fc
}
