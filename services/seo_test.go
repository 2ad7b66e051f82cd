package services

import (
	"strings"
	"testing"
)

func TestSEOScoreBounds(t *testing.T) {
	titles := []string{
		"",
		"청소기",
		"<b>무선</b> 청소기",
		strings.Repeat("가나다 ", 30),
		"!!!@@@###$$$%%%",
	}
	keywords := []string{"", "무선 청소기", "x"}

	for _, title := range titles {
		for _, kw := range keywords {
			score, grade := SEOScore(title, kw)
			if score < 0 || score > 100 {
				t.Errorf("SEOScore(%q, %q) = %d; out of [0,100]", title, kw, score)
			}
			if grade == "" {
				t.Errorf("SEOScore(%q, %q): empty grade", title, kw)
			}
		}
	}
}

func TestSEOScoreRules(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		keyword string
		want    int
	}{
		{
			// 29 runes (+10), keyword part in the leading window (+10)
			name:    "ideal title",
			title:   "프리미엄 무선 청소기 스탠드 거치대 가정용 원룸 자취",
			keyword: "무선 청소기",
			want:    100,
		},
		{
			// good length, keyword absent
			name:    "length bonus only",
			title:   "주방용품 특가 모음전 하나 둘 셋 넷 다섯 여섯 일곱",
			keyword: "에어프라이어",
			want:    90,
		},
		{
			// 12 runes: neutral length, no other signals
			name:    "neutral length",
			title:   "무선청소기 거치대 추천",
			keyword: "로봇청소기",
			want:    80,
		},
		{
			// 3 runes: short penalty
			name:    "short title",
			title:   "청소기",
			keyword: "로봇",
			want:    60,
		},
		{
			name:    "empty title",
			title:   "",
			keyword: "무선 청소기",
			want:    60,
		},
		{
			// length bonus + placement - repetition
			name:    "repeated token",
			title:   "거치대 거치대 거치대 무선 청소기 스탠드 예쁜 선물용",
			keyword: "무선",
			want:    80,
		},
		{
			// 6 special characters tip the punctuation penalty
			name:    "heavy punctuation",
			title:   "[특가] 무선 청소기!! (최저가) 스탠드 거치대 세일중",
			keyword: "무선",
			want:    90,
		},
		{
			// 64 runes (-10) and a 16x repeated token (-20)
			name:    "overlong and repetitive",
			title:   strings.Repeat("가나다 ", 16),
			keyword: "",
			want:    50,
		},
		{
			name:    "emphasis markers stripped before scoring",
			title:   "<b>무선</b> 청소기 거치대",
			keyword: "무선",
			want:    90,
		},
	}

	for _, tt := range tests {
		score, _ := SEOScore(tt.title, tt.keyword)
		if score != tt.want {
			t.Errorf("%s: SEOScore(%q, %q) = %d; want %d",
				tt.name, tt.title, tt.keyword, score, tt.want)
		}
	}
}

func TestGradeThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, GradeS}, {95, GradeS},
		{94, GradeA}, {85, GradeA},
		{84, GradeB}, {70, GradeB},
		{69, GradeF}, {0, GradeF},
	}

	for _, tt := range tests {
		if got := gradeFor(tt.score); got != tt.want {
			t.Errorf("gradeFor(%d) = %s; want %s", tt.score, got, tt.want)
		}
	}
}

func TestGradeMonotonic(t *testing.T) {
	order := map[string]int{GradeS: 3, GradeA: 2, GradeB: 1, GradeF: 0}

	prev := GradeF
	for s := 0; s <= 100; s++ {
		g := gradeFor(s)
		if order[g] < order[prev] {
			t.Fatalf("grade regressed at score %d: %s after %s", s, g, prev)
		}
		prev = g
	}
}
