package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"naver-keyword-analyzer/config"
	"naver-keyword-analyzer/scraper/naver"
	"naver-keyword-analyzer/services"
	"naver-keyword-analyzer/storage"
	"naver-keyword-analyzer/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	keywords := os.Args[1:]
	if len(keywords) == 0 {
		if env := os.Getenv("KEYWORDS"); env != "" {
			keywords = strings.Split(env, ",")
		}
	}
	if len(keywords) == 0 {
		logger.Error("No keywords given. Usage: naver-keyword-analyzer <keyword> [keyword...]")
		os.Exit(1)
	}

	logger.Info("=== Keyword Market Analyzer starting ===")
	logger.Info("Config — keywords: %d | concurrency: %d | rate: %dms | listings/keyword: %d",
		len(keywords), cfg.MaxConcurrency, cfg.RateLimitMs, cfg.ListingsPerKeyword)

	ctx := context.Background()

	shopping := naver.NewShoppingClient(cfg, logger)
	counts := naver.NewCountScraper(cfg, logger)
	volumes := naver.NewStatClient(cfg, logger)
	analyzer := services.NewAnalyzer(logger, cfg.OwnerStoreName, cfg.BigMalls)

	pipeline := services.NewPipeline(shopping, counts, volumes, analyzer, logger,
		cfg.MaxConcurrency, cfg.RateLimitMs)

	rows := pipeline.Run(ctx, keywords)
	if len(rows) == 0 {
		logger.Error("No keyword produced any data. Exiting.")
		os.Exit(1)
	}

	analyzer.PrintReport(rows)

	writers := buildWriters(ctx, cfg, logger)
	for _, w := range writers {
		if err := w.WriteReport(rows); err != nil {
			logger.Error("Report write failed: %v", err)
		}
	}
	for _, w := range writers {
		_ = w.Close()
	}

	fmt.Printf("  Done. %d rows written across %d backends | CSV → %s\n\n",
		len(rows), len(writers), cfg.CSVOutputPath)
}

// buildWriters constructs every configured report backend. A backend that
// fails to construct is skipped with a logged error; the run continues with
// whatever remains.
func buildWriters(ctx context.Context, cfg *config.Config, logger *utils.Logger) []storage.ReportWriter {
	var writers []storage.ReportWriter

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
	} else {
		writers = append(writers, csvWriter)
	}

	pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v — skipping DB persistence", err)
	} else {
		writers = append(writers, pgWriter)
	}

	sheetsWriter, err := storage.NewSheetsWriter(ctx, cfg.SheetCredsPath, cfg.SheetID, cfg.SheetName)
	if err != nil {
		logger.Warn("Google Sheets backend unavailable: %v", err)
	} else {
		writers = append(writers, sheetsWriter)
	}

	return writers
}
