package models

import "time"

// Listing is one marketplace search result for a keyword, numeric fields
// already normalized at the scraper boundary. Rank is the 1-based position
// in the ranked result list; rank 0 never appears on a real listing.
type Listing struct {
	Title       string
	MallName    string
	Brand       string
	Price       int
	ReviewCount int
	Rank        int
}

// KeywordStat holds the monthly query counts for a keyword.
type KeywordStat struct {
	PC     int
	Mobile int
}

// Total returns the combined monthly search volume.
func (s KeywordStat) Total() int {
	return s.PC + s.Mobile
}

// ReportRow is one flat record of the analysis output, ready for tabular
// serialization. Rank 0 marks the per-keyword summary row; listing rows
// follow in input rank order.
type ReportRow struct {
	RunID      string    `json:"run_id"`
	AnalyzedAt time.Time `json:"analyzed_at"`
	Keyword    string    `json:"keyword"`
	Rank       int       `json:"rank"`

	// Listing fields (zero-valued on the summary row).
	Category   string `json:"category,omitempty"`
	SEOGrade   string `json:"seo_grade,omitempty"`
	SEOScore   int    `json:"seo_score,omitempty"`
	PowerScore int    `json:"power_score,omitempty"`
	Abuse      string `json:"abuse,omitempty"`
	Strategy   string `json:"strategy,omitempty"`
	MallName   string `json:"mall_name,omitempty"`
	Title      string `json:"title,omitempty"`
	Price      int    `json:"price,omitempty"`

	// Aggregate fields (zero-valued on listing rows).
	TotalListings    int      `json:"total_listings,omitempty"`
	SearchVolume     int      `json:"search_volume,omitempty"`
	CompetitionRatio float64  `json:"competition_ratio,omitempty"`
	AvgTopPrice      float64  `json:"avg_top_price,omitempty"`
	TopVocabulary    []string `json:"top_vocabulary,omitempty"`
}

// IsSummary reports whether the row is the keyword summary variant.
func (r *ReportRow) IsSummary() bool {
	return r.Rank == 0
}

// Category tags for listing rows. "mine" wins over "brand" when both apply.
const (
	CategoryMine    = "mine"
	CategoryBrand   = "brand"
	CategoryGeneral = "general"
)
