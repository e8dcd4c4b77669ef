package domain

// FinancialDetails breaks down how the budget was derived.
type FinancialDetails struct {
	MonthlyIncome         float64
	MaxMonthlyDebtPayment float64
	AvailableForMortgage  float64
	StrongFactorCount     int
}

// Scenario is one "what-if" outcome. FicoChange and LtvChange report the
// delta against the borrower's current inputs so the UI can describe
// what changed; zero means that input was held fixed.
type Scenario struct {
	LoanType       LoanType
	FicoChange     int     `json:",omitempty"`
	LtvChange      float64 `json:",omitempty"`
	MaxHomePrice   float64
	MonthlyPayment float64
	Description    string
}

type EngineResult struct {
	MaxDTI               float64
	AdjustedInterestRate float64
	MaxHomePrice         float64
	MonthlyPayment       float64
	FinancialDetails     FinancialDetails
	Scenarios            []Scenario
}
