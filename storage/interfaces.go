package storage

import "naver-keyword-analyzer/models"

// ReportWriter is the interface any report backend must satisfy.
type ReportWriter interface {
	WriteReport(rows []*models.ReportRow) error
	Close() error
}

// ReportFetcher reads back persisted rows, newest first.
type ReportFetcher interface {
	FetchRecent(limit int) ([]*models.ReportRow, error)
}
