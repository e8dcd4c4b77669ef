package domain

type BorrowerProfile struct {
	AnnualIncome    float64
	MonthlyDebts    float64
	Debts           []DebtItem `json:",omitempty"`
	FicoScore       int
	SelectedFactors CompensatingFactors
}

// DebtItem is one recurring obligation. When the caller itemizes debts
// instead of supplying MonthlyDebts directly, the engine sums the
// monthly payments.
type DebtItem struct {
	Name           string
	MonthlyPayment float64
}

// TotalMonthlyDebts prefers the itemized list when present.
func (p BorrowerProfile) TotalMonthlyDebts() float64 {
	if len(p.Debts) == 0 {
		return p.MonthlyDebts
	}
	total := 0.0
	for _, d := range p.Debts {
		total += d.MonthlyPayment
	}
	return total
}

// MonthlyIncome returns gross monthly income.
func (p BorrowerProfile) MonthlyIncome() float64 {
	return p.AnnualIncome / 12
}
