package service

import (
	"log"

	"mortgage-engine/domain"
)

// creditHistoryTier derives the credit-history factor tier from the
// FICO score. Borrowers never pick this tier themselves.
func creditHistoryTier(ficoScore int) string {
	switch {
	case ficoScore >= 760:
		return "760+"
	case ficoScore >= 720:
		return "720-759"
	case ficoScore >= 680:
		return "680-719"
	case ficoScore >= 640:
		return "640-679"
	default:
		return "<640"
	}
}

// nonHousingDTITier derives the non-housing debt-to-income tier.
// Borrowers never pick this tier themselves.
func nonHousingDTITier(monthlyDebts, monthlyIncome float64) string {
	if monthlyIncome <= 0 {
		return ">10%"
	}
	ratio := monthlyDebts / monthlyIncome * 100
	switch {
	case ratio < 5:
		return "<5%"
	case ratio <= 10:
		return "5-10%"
	default:
		return ">10%"
	}
}

// effectiveFactors merges the two derived tiers into the borrower's
// structured selections, overriding any caller-supplied value for
// those keys. Legacy-shaped input is left untouched; the DTI engine
// routes it through the compatibility path instead.
func effectiveFactors(factors domain.CompensatingFactors, ficoScore int, monthlyDebts, monthlyIncome float64) map[domain.FactorKey]string {
	merged := make(map[domain.FactorKey]string, len(factors.Tiers)+2)
	for key, tier := range factors.Tiers {
		merged[key] = tier
	}
	merged[domain.FactorCreditHistory] = creditHistoryTier(ficoScore)
	merged[domain.FactorNonHousingDTI] = nonHousingDTITier(monthlyDebts, monthlyIncome)
	return merged
}

// factorWeight looks up the DTI bonus for one category/tier selection.
// An unrecognized tier contributes zero; it is logged for diagnostics
// so table drift against stale persisted data stays visible.
func factorWeight(key domain.FactorKey, tier string) float64 {
	tiers, ok := factorWeights[key]
	if !ok {
		return 0
	}
	weight, ok := tiers[tier]
	if !ok {
		if tier != domain.TierNone && tier != "" {
			log.Printf("Warning: unrecognized tier %q for factor %q, counting as zero", tier, key)
		}
		return 0
	}
	return weight
}

// sumFactorWeights totals the DTI bonus across every recognized
// category and counts the strong factors along the way.
func sumFactorWeights(factors map[domain.FactorKey]string) (total float64, strongCount int) {
	for key := range factorWeights {
		weight := factorWeight(key, factors[key])
		total += weight
		if weight >= StrongFactorWeight {
			strongCount++
		}
	}
	return total, strongCount
}
