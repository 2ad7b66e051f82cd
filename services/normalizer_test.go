package services

import (
	"reflect"
	"testing"
)

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1,234", 1234},
		{"<10", 10},
		{"< 10", 10},
		{"", 0},
		{"집계중", 0},
		{"123,456개", 123456},
		{"42", 42},
	}

	for _, tt := range tests {
		got := CleanNumber(tt.raw)
		if got != tt.want {
			t.Errorf("CleanNumber(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestStripEmphasis(t *testing.T) {
	got := StripEmphasis("<b>무선</b> 청소기 <b>거치대</b>")
	want := "무선 청소기 거치대"
	if got != want {
		t.Errorf("StripEmphasis: got %q, want %q", got, want)
	}
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	got := Tokenize("a 무선 청소기/거치대! b 물 스탠드형")
	want := []string{"무선", "청소기", "거치대", "스탠드형"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize: got %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") should be empty, got %v", got)
	}
	if got := Tokenize("!@#$%"); len(got) != 0 {
		t.Errorf("Tokenize of pure punctuation should be empty, got %v", got)
	}
}
