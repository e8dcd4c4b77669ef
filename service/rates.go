package service

import "mortgage-engine/domain"

// ficoRateAdjustment looks up the pricing hit for a score under a loan
// type. Scores below the lowest serviced band get RateNotOffered.
func ficoRateAdjustment(ficoScore int, loanType domain.LoanType) float64 {
	bands := conventionalFicoBands
	if loanType == domain.LoanTypeFHA {
		bands = fhaFicoBands
	}
	for _, band := range bands {
		if ficoScore >= band.MinScore {
			return band.Adjustment
		}
	}
	return RateNotOffered
}

// ltvRateAdjustment looks up the pricing adjustment for a loan-to-value
// ratio. Lower leverage is rewarded, very high leverage penalized.
func ltvRateAdjustment(ltv float64) float64 {
	for _, band := range ltvRateBands {
		if ltv <= band.MaxLTV {
			return band.Adjustment
		}
	}
	return ltvRateAboveTop
}

// AdjustedRate prices a loan: base market rate plus the FICO and LTV
// adjustments. No rounding here; display rounding is the caller's
// concern. A RateNotOffered FICO adjustment dominates the sum.
func AdjustedRate(baseRate float64, ficoScore int, ltv float64, loanType domain.LoanType) float64 {
	return baseRate + ficoRateAdjustment(ficoScore, loanType) + ltvRateAdjustment(ltv)
}

// rateOffered reports whether an adjusted rate is a real price rather
// than the not-offered sentinel.
func rateOffered(rate float64) bool {
	return rate < RateNotOffered
}

// nextFicoBand returns the lowest band threshold strictly above the
// current score for the loan type, or 0 if the score already sits in
// the top band.
func nextFicoBand(ficoScore int, loanType domain.LoanType) int {
	bands := conventionalFicoBands
	if loanType == domain.LoanTypeFHA {
		bands = fhaFicoBands
	}
	next := 0
	for _, band := range bands {
		if band.MinScore > ficoScore {
			next = band.MinScore
		}
	}
	return next
}

// nextLowerLTVTier snaps to the nearest predefined tier strictly below
// the current LTV, or 0 if already at or below the lowest tier.
func nextLowerLTVTier(ltv float64) float64 {
	for _, tier := range ltvTiers {
		if tier < ltv {
			return tier
		}
	}
	return 0
}
