package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nader0889-cyber/smart-summarizer/internal/config"
	"github.com/nader0889-cyber/smart-summarizer/internal/detect"
	"github.com/nader0889-cyber/smart-summarizer/internal/gemini"
	"github.com/nader0889-cyber/smart-summarizer/internal/logger"
	"github.com/nader0889-cyber/smart-summarizer/internal/server"
	"github.com/nader0889-cyber/smart-summarizer/internal/storage"
	"github.com/nader0889-cyber/smart-summarizer/internal/summary"
	"github.com/nader0889-cyber/smart-summarizer/internal/translate"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Missing credentials halt the process before any input is
		// accepted.
		log.Fatalf("configuration error: %v", err)
	}

	logger.Init(cfg.Debug)

	ctx := context.Background()

	model, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxInputRunes)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}
	defer model.Close()

	store, err := storage.New(cfg.DatabaseURL, cfg.DatabasePassword)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer store.Close()

	languages, err := config.LoadLanguages(cfg.LanguagesPath)
	if err != nil {
		log.Fatalf("languages config: %v", err)
	}

	translator := translate.NewChain(model.Translate, cfg.OpenAIAPIKey)
	detector := detect.New()
	service := summary.NewService(model, translator, detector, store)

	srv := server.New(server.Options{
		Runner:         service,
		DB:             store,
		Languages:      languages,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RequestTimeout: cfg.RequestTimeout,
		Debug:          cfg.Debug,
	})

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Router(),
	}

	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
