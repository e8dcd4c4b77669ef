package service

import (
	"strings"

	"mortgage-engine/domain"
)

// MaxDTI computes the maximum allowable back-end debt-to-income ratio
// for a borrower, in percent. Compensating factors add percentage
// points on top of the loan type's base guideline, subject to a hard
// cap. The returned strong-factor count feeds the result details.
//
// The legacy flat-list factor shape is normalized here, at the engine
// boundary, into the older ceiling-bump scheme; everything past this
// function sees a single canonical outcome.
func MaxDTI(ficoScore int, ltv float64, loanType domain.LoanType, factors domain.CompensatingFactors, monthlyDebts, monthlyIncome float64) (float64, int) {
	if factors.IsLegacy() {
		return legacyMaxDTI(ficoScore, loanType, factors.Legacy), 0
	}

	base := BaseDTIConventional
	hardCap := MaxDTIConventional
	if loanType == domain.LoanTypeFHA {
		base = BaseDTIFHA
		hardCap = MaxDTIFHA
	}

	effective := effectiveFactors(factors, ficoScore, monthlyDebts, monthlyIncome)
	dtiIncrease, strongCount := sumFactorWeights(effective)

	dti := base + dtiIncrease

	// Conventional underwriting grants extra DTI room for low leverage
	// before the cap. FHA does not: its LTV effects live entirely in
	// rate adjustments and MIP.
	if loanType == domain.LoanTypeConventional {
		dti += conventionalLTVBonus(ltv)
	}

	if dti > hardCap {
		dti = hardCap
	}
	return dti, strongCount
}

func conventionalLTVBonus(ltv float64) float64 {
	switch {
	case ltv <= 75:
		return 3
	case ltv <= 80:
		return 2
	default:
		return 0
	}
}

// legacyMaxDTI handles the old input shape: a flat list of factor
// names with no tiers. The scheme is coarser — strong profiles bump
// straight to a warning ceiling instead of accruing points. Kept
// behavior-compatible for clients still sending the old shape.
func legacyMaxDTI(ficoScore int, loanType domain.LoanType, factors []string) float64 {
	base := BaseDTIConventional
	ceiling := LegacyCeilingConventional
	if loanType == domain.LoanTypeFHA {
		base = BaseDTIFHA
		ceiling = LegacyCeilingFHA
	}

	hasReserves := false
	for _, name := range factors {
		if strings.Contains(strings.ToLower(name), "reserves") {
			hasReserves = true
			break
		}
	}

	switch {
	case ficoScore >= 720:
		return ceiling
	case ficoScore >= 680 && len(factors) > 0:
		return ceiling
	case hasReserves:
		return ceiling
	case loanType == domain.LoanTypeFHA && len(factors) >= 2:
		return ceiling
	default:
		return base
	}
}
