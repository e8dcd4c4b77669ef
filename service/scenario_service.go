package service

import (
	"fmt"

	"mortgage-engine/domain"
)

// AlternativeScenarios produces up to three what-if outcomes by
// perturbing one input at a time: the alternate loan type, the next
// qualifying FICO band, and the next lower LTV tier, in that order.
// Only the alternate-loan-type scenario re-derives the DTI; the FICO
// and LTV scenarios reprice at the base result's DTI, recomputing the
// rate (and, for the LTV scenario, mortgage insurance) alone. A
// scenario whose precondition does not apply is omitted, not zeroed.
func (s *AffordabilityService) AlternativeScenarios(
	req domain.AffordabilityRequest,
	market domain.MarketData,
	baseDTI float64,
) []domain.Scenario {

	profile := req.Profile
	loan := req.Loan
	monthlyDebts := profile.TotalMonthlyDebts()

	scenarios := []domain.Scenario{}

	// Escenario A: alternate loan type, everything recomputed under
	// the other type's rules.
	otherType := loan.LoanType.Other()
	altOut := computeOutcome(profile.FicoScore, loan.LTV, otherType,
		profile.SelectedFactors, profile.AnnualIncome, monthlyDebts, market, loan)
	scenarios = append(scenarios, domain.Scenario{
		LoanType:       otherType,
		MaxHomePrice:   altOut.price,
		MonthlyPayment: altOut.payment,
		Description:    fmt.Sprintf("Switch to a %s loan", otherType),
	})

	// Escenario B: next qualifying FICO band for the current loan
	// type. Rate only; DTI and LTV held fixed. Omitted when the
	// borrower already sits in the top band.
	if nextBand := nextFicoBand(profile.FicoScore, loan.LoanType); nextBand > 0 {
		rate := AdjustedRate(market.RateFor(loan.LoanType), nextBand, loan.LTV, loan.LoanType)
		price, payment := priceAndPayment(baseDTI, rate, loan.LTV, loan.LoanType,
			profile.AnnualIncome, monthlyDebts, market, loan)
		scenarios = append(scenarios, domain.Scenario{
			LoanType:       loan.LoanType,
			FicoChange:     nextBand - profile.FicoScore,
			MaxHomePrice:   price,
			MonthlyPayment: payment,
			Description:    fmt.Sprintf("Raise your credit score to %d", nextBand),
		})
	}

	// Escenario C: next lower LTV tier (bigger down payment). Rate and
	// mortgage insurance follow the new LTV; DTI held fixed. Omitted
	// at or below the lowest tier.
	if lowerLTV := nextLowerLTVTier(loan.LTV); lowerLTV > 0 {
		rate := AdjustedRate(market.RateFor(loan.LoanType), profile.FicoScore, lowerLTV, loan.LoanType)
		price, payment := priceAndPayment(baseDTI, rate, lowerLTV, loan.LoanType,
			profile.AnnualIncome, monthlyDebts, market, loan)
		scenarios = append(scenarios, domain.Scenario{
			LoanType:       loan.LoanType,
			LtvChange:      lowerLTV - loan.LTV,
			MaxHomePrice:   price,
			MonthlyPayment: payment,
			Description:    fmt.Sprintf("Increase your down payment to %.1f%%", 100-lowerLTV),
		})
	}

	return scenarios
}
