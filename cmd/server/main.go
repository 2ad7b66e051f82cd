package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"naver-keyword-analyzer/config"
	"naver-keyword-analyzer/scraper/naver"
	"naver-keyword-analyzer/server"
	"naver-keyword-analyzer/services"
	"naver-keyword-analyzer/storage"
	"naver-keyword-analyzer/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	ctx := context.Background()

	shopping := naver.NewShoppingClient(cfg, logger)
	counts := naver.NewCountScraper(cfg, logger)
	volumes := naver.NewStatClient(cfg, logger)
	analyzer := services.NewAnalyzer(logger, cfg.OwnerStoreName, cfg.BigMalls)

	pipeline := services.NewPipeline(shopping, counts, volumes, analyzer, logger,
		cfg.MaxConcurrency, cfg.RateLimitMs)

	var writers []storage.ReportWriter
	var history storage.ReportFetcher

	pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v — running without history", err)
	} else {
		writers = append(writers, pgWriter)
		history = pgWriter
		defer pgWriter.Close()
	}

	sheetsWriter, err := storage.NewSheetsWriter(ctx, cfg.SheetCredsPath, cfg.SheetID, cfg.SheetName)
	if err != nil {
		logger.Warn("Google Sheets backend unavailable: %v", err)
	} else {
		writers = append(writers, sheetsWriter)
	}

	srv := server.New(cfg.ListenAddr, pipeline, writers, history, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening on %s", cfg.ListenAddr)
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed: %v", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("Received %v — shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown error: %v", err)
		}
	}
}
