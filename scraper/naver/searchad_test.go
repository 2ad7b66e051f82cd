package naver

import (
	"encoding/json"
	"testing"
)

func TestSignDeterministic(t *testing.T) {
	a := sign("secret", "1700000000000", "GET", "/keywordstool")
	b := sign("secret", "1700000000000", "GET", "/keywordstool")
	if a != b {
		t.Errorf("signature not deterministic: %q vs %q", a, b)
	}
	if a == "" {
		t.Error("signature should not be empty")
	}

	other := sign("other-secret", "1700000000000", "GET", "/keywordstool")
	if a == other {
		t.Error("different secrets must produce different signatures")
	}
}

func TestRawCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`1234`, 1234},
		{`"1,234"`, 1234},
		{`"< 10"`, 10},
		{`""`, 0},
		{`null`, 0},
	}

	for _, tt := range tests {
		if got := rawCount(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("rawCount(%s) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestMatchKeyword(t *testing.T) {
	items := []keywordToolItem{
		{RelKeyword: "무선청소기거치대"},
		{RelKeyword: "무선청소기"},
	}

	item, ok := matchKeyword(items, "무선청소기")
	if !ok || item.RelKeyword != "무선청소기" {
		t.Errorf("exact match: got %q, ok=%v", item.RelKeyword, ok)
	}

	item, ok = matchKeyword(items, "없는키워드")
	if !ok || item.RelKeyword != "무선청소기거치대" {
		t.Errorf("fallback to first entry: got %q, ok=%v", item.RelKeyword, ok)
	}

	if _, ok := matchKeyword(nil, "x"); ok {
		t.Error("empty list should not match")
	}
}
