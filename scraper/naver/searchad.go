package naver

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"naver-keyword-analyzer/config"
	"naver-keyword-analyzer/models"
	"naver-keyword-analyzer/services"
	"naver-keyword-analyzer/utils"
)

const (
	searchAdBaseURL = "https://api.naver.com"
	keywordToolPath = "/keywordstool"
)

// StatClient fetches monthly search volumes from the Naver SearchAd
// keyword tool. Requests are HMAC-signed. A client constructed without
// credentials is disabled: it returns zero stats instead of failing, so a
// missing advertising account never blocks an analysis run.
type StatClient struct {
	apiKey     string
	secret     string
	customerID string
	baseURL    string
	httpClient *http.Client
	logger     *utils.Logger
	disabled   bool
}

// NewStatClient creates a StatClient, degraded to a no-op when credentials
// are absent.
func NewStatClient(cfg *config.Config, logger *utils.Logger) *StatClient {
	disabled := cfg.SearchAdAPIKey == "" || cfg.SearchAdSecret == "" || cfg.SearchAdCustomerID == ""
	if disabled {
		logger.Warn("[searchad] credentials not configured — search volumes will be 0")
	}
	return &StatClient{
		apiKey:     cfg.SearchAdAPIKey,
		secret:     cfg.SearchAdSecret,
		customerID: cfg.SearchAdCustomerID,
		baseURL:    searchAdBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		disabled:   disabled,
	}
}

type keywordToolItem struct {
	RelKeyword         string          `json:"relKeyword"`
	MonthlyPcQcCnt     json.RawMessage `json:"monthlyPcQcCnt"`
	MonthlyMobileQcCnt json.RawMessage `json:"monthlyMobileQcCnt"`
}

type keywordToolResponse struct {
	KeywordList []keywordToolItem `json:"keywordList"`
}

// MonthlyVolume returns the keyword's monthly PC and mobile query counts.
// Any failure degrades to a zero stat with a logged warning.
func (c *StatClient) MonthlyVolume(ctx context.Context, keyword string) models.KeywordStat {
	if c.disabled {
		return models.KeywordStat{}
	}

	hint := strings.ReplaceAll(keyword, " ", "")
	q := url.Values{}
	q.Set("hintKeywords", hint)
	q.Set("showDetail", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+keywordToolPath+"?"+q.Encode(), nil)
	if err != nil {
		c.logger.Warn("[searchad] %q: build request: %v", keyword, err)
		return models.KeywordStat{}
	}

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	req.Header.Set("X-Timestamp", timestamp)
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("X-Customer", c.customerID)
	req.Header.Set("X-Signature", sign(c.secret, timestamp, http.MethodGet, keywordToolPath))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("[searchad] %q: request failed: %v", keyword, err)
		return models.KeywordStat{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("[searchad] %q: unexpected status %d", keyword, resp.StatusCode)
		return models.KeywordStat{}
	}

	var parsed keywordToolResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("[searchad] %q: decode response: %v", keyword, err)
		return models.KeywordStat{}
	}

	item, ok := matchKeyword(parsed.KeywordList, hint)
	if !ok {
		c.logger.Warn("[searchad] %q: keyword not in response", keyword)
		return models.KeywordStat{}
	}

	return models.KeywordStat{
		PC:     rawCount(item.MonthlyPcQcCnt),
		Mobile: rawCount(item.MonthlyMobileQcCnt),
	}
}

// matchKeyword finds the exact hint among the related keywords the tool
// returns, falling back to the first entry.
func matchKeyword(items []keywordToolItem, hint string) (keywordToolItem, bool) {
	for _, it := range items {
		if strings.EqualFold(it.RelKeyword, hint) {
			return it, true
		}
	}
	if len(items) > 0 {
		return items[0], true
	}
	return keywordToolItem{}, false
}

// rawCount normalizes a count field that the API returns either as a number
// or as a "< 10" string.
func rawCount(raw json.RawMessage) int {
	return services.CleanNumber(strings.Trim(string(raw), `"`))
}

// sign produces the base64 HMAC-SHA256 signature the SearchAd API expects
// over "timestamp.method.path".
func sign(secret, timestamp, method, path string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s.%s", timestamp, method, path)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
