package services

// AbuseStatus is the manipulation-likelihood classification for a listing.
type AbuseStatus string

const (
	// AbuseTrustedChannel marks brand or big-mall listings, exempt from checks.
	AbuseTrustedChannel AbuseStatus = "normal (trusted channel)"
	// AbuseNotEvaluated marks listings beyond the top-10 visibility window.
	AbuseNotEvaluated AbuseStatus = "not evaluated"
	// AbuseSlotTraffic: high visibility with neither content quality nor
	// social proof — the strongest manipulation signature.
	AbuseSlotTraffic AbuseStatus = "strong suspicion: slot/traffic manipulation"
	// AbuseFakePurchase: visibility without any social proof.
	AbuseFakePurchase AbuseStatus = "caution: possible fake-purchase activity"
	// AbuseTraffic: visibility without adequate listing-quality investment.
	AbuseTraffic AbuseStatus = "caution: possible traffic manipulation"
	// AbuseNone: no anomaly signal.
	AbuseNone AbuseStatus = "no anomaly signal"
)

// Suspicious reports whether the status carries a manipulation signal.
func (a AbuseStatus) Suspicious() bool {
	switch a {
	case AbuseSlotTraffic, AbuseFakePurchase, AbuseTraffic:
		return true
	}
	return false
}

// Classification thresholds. Heuristic: organic top-10 placement normally
// comes with brand trust, content optimization, or accumulated reviews;
// missing all three is the signature this targets. New legitimate listings
// can false-positive.
const (
	abuseRankWindow    = 10
	abuseWeakSEO       = 40
	abuseThinSEO       = 50
	abuseFewReviews    = 10
	abuseNoSocialProof = 5
)

// ClassifyAbuse runs the ordered decision table; the first satisfied guard
// wins. Idempotent and pure.
func ClassifyAbuse(rank, reviewCount, seoScore int, isBrand, isBigMall bool) AbuseStatus {
	switch {
	case isBrand || isBigMall:
		return AbuseTrustedChannel
	case rank > abuseRankWindow:
		return AbuseNotEvaluated
	case seoScore < abuseWeakSEO && reviewCount < abuseFewReviews:
		return AbuseSlotTraffic
	case reviewCount < abuseNoSocialProof:
		return AbuseFakePurchase
	case seoScore < abuseThinSEO:
		return AbuseTraffic
	default:
		return AbuseNone
	}
}
