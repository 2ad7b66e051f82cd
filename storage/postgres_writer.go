package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"naver-keyword-analyzer/models"
)

// PostgresWriter persists analysis rows to PostgreSQL. Runs accumulate;
// rows carry a run_id so batches stay distinguishable.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS report_rows (
			id                SERIAL PRIMARY KEY,
			run_id            VARCHAR(36) NOT NULL,
			analyzed_at       TIMESTAMPTZ NOT NULL,
			keyword           TEXT        NOT NULL,
			rank              INTEGER     NOT NULL,
			category          VARCHAR(16) NOT NULL DEFAULT '',
			seo_grade         VARCHAR(4)  NOT NULL DEFAULT '',
			seo_score         INTEGER     NOT NULL DEFAULT 0,
			power_score       INTEGER     NOT NULL DEFAULT 0,
			abuse             TEXT        NOT NULL DEFAULT '',
			strategy          TEXT        NOT NULL DEFAULT '',
			mall_name         TEXT        NOT NULL DEFAULT '',
			title             TEXT        NOT NULL DEFAULT '',
			price             INTEGER     NOT NULL DEFAULT 0,
			total_listings    INTEGER     NOT NULL DEFAULT 0,
			search_volume     INTEGER     NOT NULL DEFAULT 0,
			competition_ratio NUMERIC(10,2) NOT NULL DEFAULT 0,
			avg_top_price     NUMERIC(12,2) NOT NULL DEFAULT 0,
			top_vocabulary    TEXT        NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_report_rows_run_id  ON report_rows(run_id);
		CREATE INDEX IF NOT EXISTS idx_report_rows_keyword ON report_rows(keyword);
	`)
	return err
}

// WriteReport batch-inserts all rows of an analysis run.
func (pw *PostgresWriter) WriteReport(rows []*models.ReportRow) error {
	if len(rows) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := pw.insertBatch(rows[i:end]); err != nil {
			return err
		}
	}
	return nil
}

const rowColumns = 18

func (pw *PostgresWriter) insertBatch(batch []*models.ReportRow) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*rowColumns)

	for idx, r := range batch {
		base := idx * rowColumns
		placeholders := make([]string, rowColumns)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			r.RunID, r.AnalyzedAt, r.Keyword, r.Rank, r.Category,
			r.SEOGrade, r.SEOScore, r.PowerScore, r.Abuse, r.Strategy,
			r.MallName, r.Title, r.Price,
			r.TotalListings, r.SearchVolume, r.CompetitionRatio, r.AvgTopPrice,
			strings.Join(r.TopVocabulary, " "))
	}

	query := fmt.Sprintf(`
		INSERT INTO report_rows (
			run_id, analyzed_at, keyword, rank, category,
			seo_grade, seo_score, power_score, abuse, strategy,
			mall_name, title, price,
			total_listings, search_volume, competition_ratio, avg_top_price, top_vocabulary
		) VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchRecent retrieves the most recently stored rows, newest first.
func (pw *PostgresWriter) FetchRecent(limit int) ([]*models.ReportRow, error) {
	rows, err := pw.db.Query(`
		SELECT run_id, analyzed_at, keyword, rank, category,
		       seo_grade, seo_score, power_score, abuse, strategy,
		       mall_name, title, price,
		       total_listings, search_volume, competition_ratio, avg_top_price, top_vocabulary
		FROM report_rows
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch recent: %w", err)
	}
	defer rows.Close()

	var out []*models.ReportRow
	for rows.Next() {
		r := &models.ReportRow{}
		var vocab string
		if err := rows.Scan(
			&r.RunID, &r.AnalyzedAt, &r.Keyword, &r.Rank, &r.Category,
			&r.SEOGrade, &r.SEOScore, &r.PowerScore, &r.Abuse, &r.Strategy,
			&r.MallName, &r.Title, &r.Price,
			&r.TotalListings, &r.SearchVolume, &r.CompetitionRatio, &r.AvgTopPrice, &vocab,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		if vocab != "" {
			r.TopVocabulary = strings.Fields(vocab)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
