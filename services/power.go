package services

// Power score component caps.
const (
	powerRankCeiling   = 41 // rank contribution is 41-rank, zero at and beyond 41
	powerReviewCap     = 30
	powerChannelBonus  = 20
	powerReviewDivisor = 10
	powerSEODivisor    = 10
)

// PowerScore combines rank, social proof, channel trust, and content quality
// into one composite competitive-strength value. Never negative; component
// caps bound it near 91 for a rank-1 branded listing.
func PowerScore(rank, reviewCount int, isBrand, isBigMall bool, seoScore int) int {
	score := 0

	if rank < powerRankCeiling {
		score += powerRankCeiling - rank
	}

	reviews := reviewCount / powerReviewDivisor
	if reviews > powerReviewCap {
		reviews = powerReviewCap
	}
	score += reviews

	if isBrand || isBigMall {
		score += powerChannelBonus
	}

	score += seoScore / powerSEODivisor
	return score
}
