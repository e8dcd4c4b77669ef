package service

import (
	"fmt"
	"log"

	"mortgage-engine/domain"
	"mortgage-engine/repository"
)

type AffordabilityService struct {
	repo   repository.SnapshotRepository
	market *MarketDataService
}

// NewAffordabilityService creates a new AffordabilityService with the
// given snapshot repository and market-data provider.
func NewAffordabilityService(repo repository.SnapshotRepository,
	market *MarketDataService,
) *AffordabilityService {
	return &AffordabilityService{repo: repo, market: market}
}

// Validate runs the pre-flight input checks, fail-fast in order:
// location, income, interest rate, property tax rate. Compensating
// factors never block; unknown tiers default to zero weight later.
func (s *AffordabilityService) Validate(req domain.AffordabilityRequest) error {
	if req.Location.State == "" {
		return domain.NewValidationError("location", "location is incomplete, select a state first")
	}
	if req.Profile.AnnualIncome <= 0 {
		return domain.NewValidationError("annualIncome", "annual income must be greater than zero")
	}
	if req.Profile.AnnualIncome > MaxAnnualIncome {
		return domain.NewValidationError("annualIncome", fmt.Sprintf("annual income exceeds the maximum of $%.2f", MaxAnnualIncome))
	}
	if req.Profile.TotalMonthlyDebts() < 0 {
		return domain.NewValidationError("monthlyDebts", "monthly debts cannot be negative")
	}
	if req.Profile.TotalMonthlyDebts() > MaxMonthlyDebts {
		return domain.NewValidationError("monthlyDebts", fmt.Sprintf("monthly debts exceed the maximum of $%.2f", MaxMonthlyDebts))
	}
	if req.Profile.FicoScore < 300 || req.Profile.FicoScore > 850 {
		return domain.NewValidationError("ficoScore", "fico score must be between 300 and 850")
	}
	if !req.Loan.LoanType.Valid() {
		return domain.NewValidationError("loanType", "loan type must be conventional or fha")
	}
	if req.Loan.BaseInterestRate <= 0 {
		return domain.NewValidationError("interestRate", "interest rate is missing, refresh market data first")
	}
	if req.Loan.PropertyTaxRate <= 0 {
		return domain.NewValidationError("propertyTaxRate", "property tax rate is missing, refresh market data first")
	}
	return nil
}

// Evaluate runs the full engine: validation, DTI, rate adjustment,
// price/payment solve, and what-if scenarios. It never fails on bad
// financial outcomes; a borrower who cannot afford anything gets a
// zero-price result, not an error.
func (s *AffordabilityService) Evaluate(
	req domain.AffordabilityRequest,
) (domain.EngineResult, error) {

	market := s.resolveMarket(&req)

	if err := s.Validate(req); err != nil {
		return domain.EngineResult{}, err
	}

	monthlyDebts := req.Profile.TotalMonthlyDebts()
	out := computeOutcome(
		req.Profile.FicoScore,
		req.Loan.LTV,
		req.Loan.LoanType,
		req.Profile.SelectedFactors,
		req.Profile.AnnualIncome,
		monthlyDebts,
		market,
		req.Loan,
	)

	monthlyIncome := req.Profile.MonthlyIncome()
	maxMonthlyDebt := monthlyIncome * out.dti / 100

	result := domain.EngineResult{
		MaxDTI:               out.dti,
		AdjustedInterestRate: out.rate,
		MaxHomePrice:         out.price,
		MonthlyPayment:       out.payment,
		FinancialDetails: domain.FinancialDetails{
			MonthlyIncome:         roundTo2Decimals(monthlyIncome),
			MaxMonthlyDebtPayment: roundTo2Decimals(maxMonthlyDebt),
			AvailableForMortgage:  roundTo2Decimals(maxMonthlyDebt - monthlyDebts),
			StrongFactorCount:     out.strongFactors,
		},
	}

	result.Scenarios = s.AlternativeScenarios(req, market, out.dti)

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(req, result); err != nil {
		log.Printf("Warning: failed to save affordability snapshot: %v", err)
	}

	return result, nil
}

// resolveMarket fills missing rate/tax inputs. Explicit request values
// win; otherwise the market-data provider supplies them for the
// location. The returned MarketData always carries a rate for both
// loan types so scenario generation can switch types.
func (s *AffordabilityService) resolveMarket(req *domain.AffordabilityRequest) domain.MarketData {
	var market domain.MarketData

	switch {
	case req.Market != nil:
		market = *req.Market
	case req.Loan.BaseInterestRate > 0:
		// Caller supplied a single rate with no per-type breakdown;
		// use it for both types.
		market = domain.MarketData{
			ConventionalInterestRate: req.Loan.BaseInterestRate,
			FHAInterestRate:          req.Loan.BaseInterestRate,
			PropertyTaxRate:          req.Loan.PropertyTaxRate,
			PropertyInsuranceAnnual:  req.Loan.PropertyInsuranceAnnual,
		}
	case s.market != nil:
		market = s.market.GetMarketData(req.Location.State)
	}

	if req.Loan.BaseInterestRate <= 0 {
		req.Loan.BaseInterestRate = market.RateFor(req.Loan.LoanType)
	}
	if req.Loan.PropertyTaxRate <= 0 {
		req.Loan.PropertyTaxRate = market.PropertyTaxRate
	}
	if req.Loan.PropertyInsuranceAnnual <= 0 {
		req.Loan.PropertyInsuranceAnnual = market.PropertyInsuranceAnnual
	}
	if market.PropertyTaxRate <= 0 {
		market.PropertyTaxRate = req.Loan.PropertyTaxRate
	}
	if market.PropertyInsuranceAnnual <= 0 {
		market.PropertyInsuranceAnnual = req.Loan.PropertyInsuranceAnnual
	}
	return market
}

// outcome bundles one full engine pass for a single input combination.
type outcome struct {
	dti           float64
	rate          float64
	price         float64
	payment       float64
	strongFactors int
}

// computeOutcome derives max DTI, adjusted rate, max price and payment
// for one (FICO, LTV, loan type) combination. Pure; scenarios call it
// repeatedly with perturbed inputs.
func computeOutcome(ficoScore int, ltv float64, loanType domain.LoanType, factors domain.CompensatingFactors, annualIncome, monthlyDebts float64, market domain.MarketData, loan domain.LoanParameters) outcome {
	dti, strongFactors := MaxDTI(ficoScore, ltv, loanType, factors, monthlyDebts, annualIncome/12)
	rate := AdjustedRate(market.RateFor(loanType), ficoScore, ltv, loanType)

	out := outcome{dti: dti, rate: rate, strongFactors: strongFactors}
	out.price, out.payment = priceAndPayment(dti, rate, ltv, loanType, annualIncome, monthlyDebts, market, loan)
	return out
}

// priceAndPayment solves max price and payment for an already-known
// DTI and adjusted rate. Scenarios that hold the DTI fixed call this
// directly instead of computeOutcome. Not-offered rates report zero
// affordability instead of a price computed from the sentinel.
func priceAndPayment(dti, rate, ltv float64, loanType domain.LoanType, annualIncome, monthlyDebts float64, market domain.MarketData, loan domain.LoanParameters) (float64, float64) {
	if !rateOffered(rate) {
		return 0, 0
	}

	ongoingMI, upfrontFee := mortgageInsuranceRates(loanType, ltv, loan)

	price := MaxPurchasePrice(
		annualIncome,
		monthlyDebts,
		dti,
		rate,
		market.PropertyTaxRate,
		market.PropertyInsuranceAnnual,
		100-ltv,
		ongoingMI,
		DefaultTermYears,
		upfrontFee,
	)

	loanAmount := price * ltv / 100 * (1 + upfrontFee/100)
	payment := MonthlyPayment(
		loanAmount,
		rate,
		DefaultTermYears,
		price*market.PropertyTaxRate/100,
		market.PropertyInsuranceAnnual,
		ongoingMI,
	)

	return price, payment
}

// mortgageInsuranceRates returns the ongoing annual MI rate and the
// financed upfront fee, both in percent of loan amount. Explicit FHA
// MIP overrides in the loan parameters apply only when the evaluated
// type matches the request's type.
func mortgageInsuranceRates(loanType domain.LoanType, ltv float64, loan domain.LoanParameters) (ongoing, upfront float64) {
	if loanType == domain.LoanTypeConventional {
		if ltv > 80 {
			return ConventionalPMIRate, 0
		}
		return 0, 0
	}

	ongoing = FHAOngoingMIPLow
	if ltv > 90 {
		ongoing = FHAOngoingMIPHigh
	}
	upfront = FHAUpfrontMIP

	if loan.LoanType == domain.LoanTypeFHA {
		if loan.OngoingMIP != nil {
			ongoing = *loan.OngoingMIP
		}
		if loan.UpfrontMIP != nil {
			upfront = *loan.UpfrontMIP
		}
	}
	return ongoing, upfront
}
