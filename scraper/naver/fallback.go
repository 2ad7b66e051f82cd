package naver

import (
	"context"
	"net/url"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"naver-keyword-analyzer/config"
	"naver-keyword-analyzer/services"
	"naver-keyword-analyzer/utils"
)

const searchPageURL = "https://search.shopping.naver.com/search/all?query="

// totalCountRegexp matches the "전체 123,456개" fragment on the search page.
var totalCountRegexp = regexp.MustCompile(`전체\s*([\d,]+)\s*개`)

// CountScraper recovers a keyword's total listing count by rendering the
// shopping search page headless and reading the filter-bar counter. Used
// only when the Open API cannot provide a total; everything here is best
// effort and failures resolve to 0.
type CountScraper struct {
	chromeBin string
	logger    *utils.Logger
}

// NewCountScraper creates a CountScraper.
func NewCountScraper(cfg *config.Config, logger *utils.Logger) *CountScraper {
	bin := cfg.ChromeBin
	if bin == "" {
		bin = findChromeBinary()
	}
	return &CountScraper{chromeBin: bin, logger: logger}
}

// TotalCount renders the search page for the keyword and extracts the total
// product count. Returns 0 when the page cannot be fetched or parsed.
func (s *CountScraper) TotalCount(ctx context.Context, keyword string) int {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if s.chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(s.chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, 30*time.Second)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(searchPageURL+url.QueryEscape(keyword)),
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		s.logger.Warn("[fallback] %q: render failed: %v", keyword, err)
		return 0
	}

	count := extractTotalCount(html)
	if count == 0 {
		s.logger.Warn("[fallback] %q: total count not found on page", keyword)
	} else {
		s.logger.Debug("[fallback] %q: scraped total count %d", keyword, count)
	}
	return count
}

// extractTotalCount parses the rendered page for the total-count element,
// preferring the filter-bar counter node and falling back to a text match.
func extractTotalCount(html string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0
	}

	count := 0
	doc.Find(`span[class*="subFilter_num"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if n := services.CleanNumber(sel.Text()); n > 0 {
			count = n
			return false
		}
		return true
	})
	if count > 0 {
		return count
	}

	if m := totalCountRegexp.FindStringSubmatch(doc.Text()); len(m) == 2 {
		return services.CleanNumber(m[1])
	}
	return 0
}

// findChromeBinary locates a Chrome/Chromium binary on the host.
func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
