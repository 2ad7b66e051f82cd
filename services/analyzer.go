package services

import (
	"fmt"
	"sort"
	"strings"

	"naver-keyword-analyzer/models"
	"naver-keyword-analyzer/utils"
)

// Aggregation constants.
const (
	topSampleSize      = 10  // listings sampled for price average and vocabulary
	minQualifyingPrice = 100 // prices at or below this are excluded from the average
	vocabularySize     = 7
)

// Analyzer turns one keyword's ranked listing set plus its search volume
// into a summary row and one scored row per listing.
type Analyzer struct {
	logger     *utils.Logger
	ownerStore string
	bigMalls   []string
}

// NewAnalyzer creates an Analyzer. An empty ownerStore disables the "mine"
// category entirely.
func NewAnalyzer(logger *utils.Logger, ownerStore string, bigMalls []string) *Analyzer {
	return &Analyzer{logger: logger, ownerStore: ownerStore, bigMalls: bigMalls}
}

// Analyze scores a keyword's listing set. Listings must arrive in rank
// order; none is dropped, reordered, or deduplicated. An empty listing set
// yields nil — the keyword has no data, which is not an error.
func (a *Analyzer) Analyze(keyword string, listings []*models.Listing, totalListings int, stat models.KeywordStat) []*models.ReportRow {
	if len(listings) == 0 {
		a.logger.Warn("[analyzer] %q returned no listings — skipping", keyword)
		return nil
	}

	volume := stat.Total()
	ratio := 0.0
	if volume > 0 {
		ratio = round2(float64(totalListings) / float64(volume))
	}

	top := listings
	if len(top) > topSampleSize {
		top = top[:topSampleSize]
	}

	vocabulary := topVocabulary(top, vocabularySize)

	rows := make([]*models.ReportRow, 0, len(listings)+1)
	rows = append(rows, &models.ReportRow{
		Keyword:          keyword,
		Rank:             0,
		TotalListings:    totalListings,
		SearchVolume:     volume,
		CompetitionRatio: ratio,
		AvgTopPrice:      avgTopPrice(top),
		TopVocabulary:    vocabulary,
	})

	for _, l := range listings {
		isMine := a.ownerStore != "" && strings.Contains(l.MallName, a.ownerStore)
		isBigMall := a.isBigMall(l.MallName)
		isBrand := l.Brand != ""

		category := models.CategoryGeneral
		switch {
		case isMine:
			category = models.CategoryMine
		case isBrand:
			category = models.CategoryBrand
		}

		seoScore, grade := SEOScore(l.Title, keyword)
		abuse := ClassifyAbuse(l.Rank, l.ReviewCount, seoScore, isBrand, isBigMall)

		rows = append(rows, &models.ReportRow{
			Keyword:    keyword,
			Rank:       l.Rank,
			Category:   category,
			SEOGrade:   grade,
			SEOScore:   seoScore,
			PowerScore: PowerScore(l.Rank, l.ReviewCount, isBrand, isBigMall, seoScore),
			Abuse:      string(abuse),
			Strategy:   a.strategyNote(grade, isMine, abuse, l.Title, vocabulary),
			MallName:   l.MallName,
			Title:      StripEmphasis(l.Title),
			Price:      l.Price,
		})
	}

	return rows
}

func (a *Analyzer) isBigMall(mallName string) bool {
	for _, mall := range a.bigMalls {
		if strings.Contains(mallName, mall) {
			return true
		}
	}
	return false
}

// strategyNote derives the short per-listing annotation: the SEO grade,
// vocabulary gaps for the owner's own listings, and a benchmark warning for
// suspicious rows.
func (a *Analyzer) strategyNote(grade string, isMine bool, abuse AbuseStatus, title string, vocabulary []string) string {
	parts := []string{"SEO " + grade}

	if isMine {
		own := make(map[string]struct{})
		for _, tok := range Tokenize(StripEmphasis(title)) {
			own[tok] = struct{}{}
		}
		var missing []string
		for _, term := range vocabulary {
			if _, ok := own[term]; !ok {
				missing = append(missing, term)
			}
		}
		if len(missing) == 0 {
			parts = append(parts, "fully optimized")
		} else {
			parts = append(parts, "missing terms: "+strings.Join(missing, " "))
		}
	}

	if abuse.Suspicious() {
		parts = append(parts, "do not benchmark")
	}

	return strings.Join(parts, "; ")
}

// avgTopPrice averages the qualifying prices among the sampled listings.
func avgTopPrice(top []*models.Listing) float64 {
	sum, n := 0, 0
	for _, l := range top {
		if l.Price > minQualifyingPrice {
			sum += l.Price
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round2(float64(sum) / float64(n))
}

// topVocabulary ranks the tokens of the sampled titles by frequency,
// breaking ties lexicographically for determinism.
func topVocabulary(top []*models.Listing, n int) []string {
	freq := make(map[string]int)
	for _, l := range top {
		for _, tok := range Tokenize(StripEmphasis(l.Title)) {
			freq[tok]++
		}
	}

	type kv struct {
		term  string
		count int
	}
	list := make([]kv, 0, len(freq))
	for term, count := range freq {
		list = append(list, kv{term, count})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count == list[j].count {
			return list[i].term < list[j].term
		}
		return list[i].count > list[j].count
	})

	if n > len(list) {
		n = len(list)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, list[i].term)
	}
	return out
}

// PrintReport renders analysis rows to the console, one block per keyword.
func (a *Analyzer) PrintReport(rows []*models.ReportRow) {
	sep := strings.Repeat("═", 60)
	thin := strings.Repeat("─", 60)

	for i := 0; i < len(rows); i++ {
		r := rows[i]
		if !r.IsSummary() {
			continue
		}

		fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
		fmt.Printf("\033[1;35m  🕵️ KEYWORD ANALYSIS — %s\033[0m\n", r.Keyword)
		fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

		fmt.Printf("  Total listings    : \033[1m%d\033[0m\n", r.TotalListings)
		fmt.Printf("  Monthly searches  : \033[1m%d\033[0m\n", r.SearchVolume)
		fmt.Printf("  Competition ratio : \033[1;32m%.2f\033[0m\n", r.CompetitionRatio)
		if r.AvgTopPrice > 0 {
			fmt.Printf("  Avg top-10 price  : \033[1;32m%.0f\033[0m\n", r.AvgTopPrice)
		} else {
			fmt.Printf("  Avg top-10 price  : no qualifying prices\n")
		}
		fmt.Printf("  Top vocabulary    : %s\n\n", strings.Join(r.TopVocabulary, " "))

		fmt.Printf("  %s\n", thin)
		for j := i + 1; j < len(rows) && !rows[j].IsSummary(); j++ {
			l := rows[j]
			grade := l.SEOGrade
			if grade == GradeS {
				grade = "👑" + grade
			}
			fmt.Printf("  \033[1m%2d.\033[0m [%-7s] %-3s pw %2d  %s\n",
				l.Rank, l.Category, grade, l.PowerScore, truncate(l.Title, 38))
			fmt.Printf("      %s — %s\n", l.Abuse, l.Strategy)
		}
		fmt.Printf("  %s\n", thin)
	}
	fmt.Println()
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
