package domain

// AffordabilityRequest is the full engine input, built fresh from UI
// state on every recalculation. Market is optional; when absent the
// service resolves rates and tax for the location itself.
type AffordabilityRequest struct {
	Profile  BorrowerProfile
	Loan     LoanParameters
	Location Location
	Market   *MarketData `json:",omitempty"`
}
