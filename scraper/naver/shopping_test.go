package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"naver-keyword-analyzer/utils"
)

func TestShoppingSearchNormalizesFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Naver-Client-Id") == "" {
			t.Error("client id header missing")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total": 12345,
			"items": [
				{"title": "<b>무선</b> 청소기 거치대", "mallName": "SmallShop", "brand": "", "lprice": "12,900", "reviewCount": "<10"},
				{"title": "무선 청소기", "mallName": "쿠팡", "brand": "다이슨", "lprice": "abc", "reviewCount": "231"}
			]
		}`))
	}))
	defer ts.Close()

	logger := utils.NewLogger()
	c := &ShoppingClient{
		clientID:     "id",
		clientSecret: "secret",
		display:      20,
		baseURL:      ts.URL,
		httpClient:   ts.Client(),
		logger:       logger,
		retry:        &utils.RetryConfig{MaxAttempts: 1, BaseDelay: time.Millisecond, Logger: logger},
	}

	listings, total, err := c.Search(context.Background(), "무선 청소기")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if total != 12345 {
		t.Errorf("total: got %d, want 12345", total)
	}
	if len(listings) != 2 {
		t.Fatalf("listings: got %d, want 2", len(listings))
	}

	first := listings[0]
	if first.Rank != 1 || first.Price != 12900 || first.ReviewCount != 10 {
		t.Errorf("first listing not normalized: %+v", first)
	}
	second := listings[1]
	if second.Rank != 2 || second.Price != 0 || second.ReviewCount != 231 {
		t.Errorf("second listing not normalized: %+v", second)
	}
}

func TestShoppingSearchRequiresCredentials(t *testing.T) {
	logger := utils.NewLogger()
	c := &ShoppingClient{
		logger: logger,
		retry:  &utils.RetryConfig{MaxAttempts: 1, BaseDelay: time.Millisecond, Logger: logger},
	}

	if _, _, err := c.Search(context.Background(), "x"); err == nil {
		t.Error("expected an error without credentials")
	}
}
