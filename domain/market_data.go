package domain

// MarketData is the externally supplied rate/tax snapshot the engine
// needs before it can run. All fields are required.
type MarketData struct {
	ConventionalInterestRate float64
	FHAInterestRate          float64
	PropertyTaxRate          float64 // annual % of home value
	PropertyInsuranceAnnual  float64
}

// RateFor picks the market rate matching the loan type.
func (m MarketData) RateFor(loanType LoanType) float64 {
	if loanType == LoanTypeFHA {
		return m.FHAInterestRate
	}
	return m.ConventionalInterestRate
}
