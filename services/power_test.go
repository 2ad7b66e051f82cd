package services

import "testing"

func TestPowerScoreRankBoundary(t *testing.T) {
	if got := PowerScore(41, 0, false, false, 0); got != 0 {
		t.Errorf("rank 41: got %d, want 0", got)
	}
	if got := PowerScore(42, 0, false, false, 0); got != 0 {
		t.Errorf("rank 42: got %d, want 0 (never negative)", got)
	}
	if got := PowerScore(1, 0, false, false, 0); got != 40 {
		t.Errorf("rank 1: got %d, want 40", got)
	}
}

func TestPowerScoreReviewCap(t *testing.T) {
	if got := PowerScore(41, 10000, false, false, 0); got != 30 {
		t.Errorf("review contribution should cap at 30, got %d", got)
	}
	if got := PowerScore(41, 95, false, false, 0); got != 9 {
		t.Errorf("95 reviews: got %d, want 9", got)
	}
	if got := PowerScore(41, 9, false, false, 0); got != 0 {
		t.Errorf("9 reviews: got %d, want 0", got)
	}
}

func TestPowerScoreChannelBonus(t *testing.T) {
	base := PowerScore(5, 0, false, false, 0)
	if got := PowerScore(5, 0, true, false, 0); got != base+20 {
		t.Errorf("brand bonus: got %d, want %d", got, base+20)
	}
	if got := PowerScore(5, 0, false, true, 0); got != base+20 {
		t.Errorf("big-mall bonus: got %d, want %d", got, base+20)
	}
	if got := PowerScore(5, 0, true, true, 0); got != base+20 {
		t.Errorf("bonus must not stack: got %d, want %d", got, base+20)
	}
}

func TestPowerScoreComposite(t *testing.T) {
	// rank 1 (40) + 400 reviews (30) + brand (20) + seo 87 (8)
	if got := PowerScore(1, 400, true, false, 87); got != 98 {
		t.Errorf("composite: got %d, want 98", got)
	}
}
