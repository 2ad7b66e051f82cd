package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"naver-keyword-analyzer/models"
)

var sheetHeader = []interface{}{
	"Run", "Analyzed", "Keyword", "Rank", "Category",
	"SEO Grade", "SEO Score", "Power", "Abuse", "Strategy",
	"Mall", "Title", "Price",
	"Total Listings", "Search Volume", "Competition", "Avg Top-10 Price", "Top Vocabulary",
}

// SheetsWriter appends analysis rows to a Google Sheet, authenticated with
// a service-account credentials file.
type SheetsWriter struct {
	srv           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsWriter builds the Sheets client and ensures the header row
// exists. Returns an error when the sheet target is not configured, so the
// caller can skip this backend.
func NewSheetsWriter(ctx context.Context, credsPath, spreadsheetID, sheetName string) (*SheetsWriter, error) {
	if credsPath == "" || spreadsheetID == "" {
		return nil, errors.New("sheets: not configured")
	}

	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credsPath),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("sheets: build service: %w", err)
	}

	w := &SheetsWriter{srv: srv, spreadsheetID: spreadsheetID, sheetName: sheetName}
	if err := w.ensureHeader(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *SheetsWriter) ensureHeader(ctx context.Context) error {
	resp, err := w.srv.Spreadsheets.Values.
		Get(w.spreadsheetID, w.sheetName+"!A1:A1").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: read header: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	_, err = w.srv.Spreadsheets.Values.
		Update(w.spreadsheetID, w.sheetName+"!A1",
			&sheets.ValueRange{Values: [][]interface{}{sheetHeader}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: write header: %w", err)
	}
	return nil
}

// WriteReport appends every row of the batch below the existing data.
func (w *SheetsWriter) WriteReport(rows []*models.ReportRow) error {
	if len(rows) == 0 {
		return nil
	}

	values := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		values = append(values, []interface{}{
			r.RunID,
			r.AnalyzedAt.Format(time.RFC3339),
			r.Keyword,
			r.Rank,
			r.Category,
			r.SEOGrade,
			r.SEOScore,
			r.PowerScore,
			r.Abuse,
			r.Strategy,
			r.MallName,
			r.Title,
			r.Price,
			r.TotalListings,
			r.SearchVolume,
			r.CompetitionRatio,
			r.AvgTopPrice,
			strings.Join(r.TopVocabulary, " "),
		})
	}

	_, err := w.srv.Spreadsheets.Values.
		Append(w.spreadsheetID, w.sheetName+"!A1",
			&sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").Do()
	if err != nil {
		return fmt.Errorf("sheets: append rows: %w", err)
	}
	return nil
}

// Close satisfies ReportWriter; the Sheets client holds no local resources.
func (w *SheetsWriter) Close() error {
	return nil
}
