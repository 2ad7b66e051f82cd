package services

import "testing"

func TestClassifyAbuseTable(t *testing.T) {
	tests := []struct {
		name               string
		rank, reviews, seo int
		isBrand, isBigMall bool
		want               AbuseStatus
	}{
		{"brand exempt regardless of signals", 1, 0, 0, true, false, AbuseTrustedChannel},
		{"big mall exempt regardless of signals", 1, 0, 0, false, true, AbuseTrustedChannel},
		{"deep rank never evaluated", 11, 0, 0, false, false, AbuseNotEvaluated},
		{"deep rank with good signals still not evaluated", 40, 5000, 100, false, false, AbuseNotEvaluated},
		{"no quality, no proof, high visibility", 1, 2, 30, false, false, AbuseSlotTraffic},
		{"strong rule wins over later cautions", 10, 3, 39, false, false, AbuseSlotTraffic},
		{"no social proof", 2, 3, 60, false, false, AbuseFakePurchase},
		{"thin content", 3, 20, 45, false, false, AbuseTraffic},
		{"healthy listing", 1, 500, 90, false, false, AbuseNone},
		{"boundary: seo 40 is not weak", 1, 3, 40, false, false, AbuseFakePurchase},
		{"boundary: 5 reviews is enough proof", 4, 5, 49, false, false, AbuseTraffic},
		{"boundary: seo 50 is adequate", 4, 5, 50, false, false, AbuseNone},
	}

	for _, tt := range tests {
		got := ClassifyAbuse(tt.rank, tt.reviews, tt.seo, tt.isBrand, tt.isBigMall)
		if got != tt.want {
			t.Errorf("%s: ClassifyAbuse(%d, %d, %d, %v, %v) = %q; want %q",
				tt.name, tt.rank, tt.reviews, tt.seo, tt.isBrand, tt.isBigMall, got, tt.want)
		}
	}
}

func TestClassifyAbuseIdempotent(t *testing.T) {
	first := ClassifyAbuse(1, 0, 0, true, false)
	second := ClassifyAbuse(1, 0, 0, true, false)
	if first != second || first != AbuseTrustedChannel {
		t.Errorf("classification not stable: %q then %q", first, second)
	}
}

func TestSuspicious(t *testing.T) {
	suspicious := []AbuseStatus{AbuseSlotTraffic, AbuseFakePurchase, AbuseTraffic}
	for _, s := range suspicious {
		if !s.Suspicious() {
			t.Errorf("%q should be suspicious", s)
		}
	}

	clean := []AbuseStatus{AbuseTrustedChannel, AbuseNotEvaluated, AbuseNone}
	for _, s := range clean {
		if s.Suspicious() {
			t.Errorf("%q should not be suspicious", s)
		}
	}
}
