package service

import "math"

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// mortgageConstant is the monthly payment per dollar financed for a
// fixed-rate loan: r(1+r)^n / ((1+r)^n - 1). At zero interest it
// degenerates to straight-line amortization, 1/n.
func mortgageConstant(annualRatePercent float64, termMonths int) float64 {
	n := float64(termMonths)
	if annualRatePercent == 0 {
		return 1 / n
	}
	r := annualRatePercent / 100 / 12
	pow := math.Pow(1+r, n)
	return r * pow / (pow - 1)
}

// MaxPurchasePrice inverts the amortization formula: it converts the
// DTI-implied monthly budget into a home-price ceiling. Tax and
// mortgage insurance scale with price, so they join the P&I factor in
// a composite per-dollar-of-price multiplier; the fixed monthly
// insurance premium comes off the budget first. upfrontFeePercent is
// a financed origination fee (FHA upfront MIP), zero for conventional.
// Returns whole dollars, floored so the implied payment never
// overshoots the budget. Degenerate budgets return 0.
func MaxPurchasePrice(annualIncome, monthlyDebts, dti, interestRate, propertyTaxRatePercent, annualInsurance, downPaymentPercent, pmiRatePercent float64, termYears int, upfrontFeePercent float64) float64 {
	budget := annualIncome/12*dti/100 - monthlyDebts - annualInsurance/12
	if budget <= 0 {
		return 0
	}

	ltvFraction := (100 - downPaymentPercent) / 100
	loanPerPrice := ltvFraction * (1 + upfrontFeePercent/100)

	perPrice := loanPerPrice*mortgageConstant(interestRate, termYears*12) +
		propertyTaxRatePercent/100/12 +
		pmiRatePercent/100*loanPerPrice/12

	if perPrice <= 0 {
		return 0
	}

	return math.Floor(budget / perPrice)
}

// MonthlyPayment is the fully loaded monthly cost for a given loan:
// principal and interest, plus monthly shares of property tax,
// insurance, and mortgage insurance. Rounded to whole dollars.
func MonthlyPayment(loanAmount, interestRate float64, termYears int, annualPropertyTax, annualInsurance, pmiRatePercent float64) float64 {
	if loanAmount <= 0 {
		return 0
	}

	pi := loanAmount * mortgageConstant(interestRate, termYears*12)
	total := pi + annualPropertyTax/12 + annualInsurance/12 + pmiRatePercent/100*loanAmount/12

	return math.Round(total)
}
