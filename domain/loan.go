package domain

type LoanType string

const (
	LoanTypeConventional LoanType = "conventional"
	LoanTypeFHA          LoanType = "fha"
)

// Other returns the alternate loan type.
func (t LoanType) Other() LoanType {
	if t == LoanTypeFHA {
		return LoanTypeConventional
	}
	return LoanTypeFHA
}

func (t LoanType) Valid() bool {
	return t == LoanTypeConventional || t == LoanTypeFHA
}

type LoanParameters struct {
	LoanType                LoanType
	LTV                     float64 // 100 - down payment percent
	BaseInterestRate        float64 // annual %, externally supplied
	PropertyTaxRate         float64 // annual % of home value
	PropertyInsuranceAnnual float64
	UpfrontMIP              *float64 `json:",omitempty"` // FHA only, % of loan
	OngoingMIP              *float64 `json:",omitempty"` // FHA only, annual % of loan
}

// DownPaymentPercent is derived from LTV.
func (l LoanParameters) DownPaymentPercent() float64 {
	return 100 - l.LTV
}

type Location struct {
	State string
	City  string `json:",omitempty"`
	Zip   string `json:",omitempty"`
}
