package naver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"naver-keyword-analyzer/config"
	"naver-keyword-analyzer/models"
	"naver-keyword-analyzer/services"
	"naver-keyword-analyzer/utils"
)

const shoppingSearchURL = "https://openapi.naver.com/v1/search/shop.json"

// ShoppingClient fetches the ranked listing set for a keyword from the
// Naver shopping Open API.
type ShoppingClient struct {
	clientID     string
	clientSecret string
	display      int
	baseURL      string
	httpClient   *http.Client
	logger       *utils.Logger
	retry        *utils.RetryConfig
}

// NewShoppingClient creates a ready-to-use ShoppingClient.
func NewShoppingClient(cfg *config.Config, logger *utils.Logger) *ShoppingClient {
	return &ShoppingClient{
		clientID:     cfg.NaverClientID,
		clientSecret: cfg.NaverClientSecret,
		display:      cfg.ListingsPerKeyword,
		baseURL:      shoppingSearchURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   time.Second,
			Logger:      logger,
		},
	}
}

type shopItem struct {
	Title       string `json:"title"`
	MallName    string `json:"mallName"`
	Brand       string `json:"brand"`
	LPrice      string `json:"lprice"`
	ReviewCount string `json:"reviewCount"`
}

type shopResponse struct {
	Total int        `json:"total"`
	Items []shopItem `json:"items"`
}

// Search returns the listings ranked by relevance plus the total match
// count. Numeric fields are normalized at this boundary; titles keep their
// emphasis markers for the scorer to strip.
func (c *ShoppingClient) Search(ctx context.Context, keyword string) ([]*models.Listing, int, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, 0, errors.New("naver: shopping API credentials not configured")
	}

	var parsed shopResponse
	err := c.retry.Do(ctx, "shopping-search "+keyword, func() error {
		q := url.Values{}
		q.Set("query", keyword)
		q.Set("display", strconv.Itoa(c.display))
		q.Set("sort", "sim")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
		if err != nil {
			return fmt.Errorf("naver: build request: %w", err)
		}
		req.Header.Set("X-Naver-Client-Id", c.clientID)
		req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("naver: shopping search: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("naver: shopping search: unexpected status %d", resp.StatusCode)
		}

		parsed = shopResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return fmt.Errorf("naver: decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	listings := make([]*models.Listing, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		listings = append(listings, &models.Listing{
			Title:       item.Title,
			MallName:    item.MallName,
			Brand:       item.Brand,
			Price:       services.CleanNumber(item.LPrice),
			ReviewCount: services.CleanNumber(item.ReviewCount),
			Rank:        i + 1,
		})
	}

	c.logger.Debug("[naver] %q: %d listings of %d total", keyword, len(listings), parsed.Total)
	return listings, parsed.Total, nil
}
