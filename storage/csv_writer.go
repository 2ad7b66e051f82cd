package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"naver-keyword-analyzer/models"
)

var csvHeader = []string{
	"run_id", "analyzed_at", "keyword", "rank", "category",
	"seo_grade", "seo_score", "power_score", "abuse", "strategy",
	"mall_name", "title", "price",
	"total_listings", "search_volume", "competition_ratio", "avg_top_price", "top_vocabulary",
}

// CSVWriter appends analysis rows to a CSV file. Safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteReport writes every row of the batch, summary rows included.
func (c *CSVWriter) WriteReport(rows []*models.ReportRow) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range rows {
		if err := c.writer.Write(rowFields(r)); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func rowFields(r *models.ReportRow) []string {
	return []string{
		r.RunID,
		r.AnalyzedAt.Format(time.RFC3339),
		r.Keyword,
		strconv.Itoa(r.Rank),
		r.Category,
		r.SEOGrade,
		strconv.Itoa(r.SEOScore),
		strconv.Itoa(r.PowerScore),
		r.Abuse,
		r.Strategy,
		r.MallName,
		r.Title,
		strconv.Itoa(r.Price),
		strconv.Itoa(r.TotalListings),
		strconv.Itoa(r.SearchVolume),
		strconv.FormatFloat(r.CompetitionRatio, 'f', 2, 64),
		strconv.FormatFloat(r.AvgTopPrice, 'f', 2, 64),
		strings.Join(r.TopVocabulary, " "),
	}
}
