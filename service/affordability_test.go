package service

import (
	"math"
	"testing"

	"mortgage-engine/domain"
)

func TestMaxPurchasePrice_TypicalBorrower(t *testing.T) {

	price := MaxPurchasePrice(100000, 500, 40, 7.0, 1.25, 1200, 20, 0, 30, 0)

	if price < 250000 || price > 450000 {
		t.Errorf("expected price in a plausible range for this profile, got %.0f", price)
	}
}

func TestMaxPurchasePrice_ZeroInterest(t *testing.T) {

	// At zero interest the P&I factor degenerates to straight-line
	// amortization instead of dividing by zero.
	price := MaxPurchasePrice(100000, 500, 40, 0, 1.25, 1200, 20, 0, 30, 0)

	if math.IsNaN(price) || math.IsInf(price, 0) {
		t.Fatalf("expected finite price at zero interest, got %v", price)
	}
	if price <= 0 {
		t.Errorf("expected positive price at zero interest, got %.0f", price)
	}
}

func TestMaxPurchasePrice_DebtsConsumeBudget(t *testing.T) {

	price := MaxPurchasePrice(24000, 1500, 40, 7.0, 1.25, 1200, 20, 0, 30, 0)

	if price != 0 {
		t.Errorf("expected zero affordability, got %.0f", price)
	}
}

func TestMonthlyPayment_NonNegative(t *testing.T) {

	if p := MonthlyPayment(0, 7.0, 30, 4000, 1200, 0.5); p != 0 {
		t.Errorf("expected 0 payment for zero loan, got %.0f", p)
	}
	if p := MonthlyPayment(-100, 7.0, 30, 4000, 1200, 0.5); p != 0 {
		t.Errorf("expected 0 payment for negative loan, got %.0f", p)
	}
	if p := MonthlyPayment(300000, 7.0, 30, 4000, 1200, 0.5); p <= 0 {
		t.Errorf("expected positive payment, got %.0f", p)
	}
}

func TestMonthlyPayment_KnownAmortization(t *testing.T) {

	// $100,000 at 12% over 24 months is a standard fixture:
	// P&I comes to about $4,707.35/month.
	got := MonthlyPayment(100000, 12, 2, 0, 0, 0)

	if math.Abs(got-4707) > 1 {
		t.Errorf("expected payment near 4707, got %.0f", got)
	}
}

func TestPriceAndPaymentConsistency(t *testing.T) {

	annualIncome := 100000.0
	monthlyDebts := 500.0
	dti := 40.0
	rate := 7.0
	taxRate := 1.25
	insurance := 1200.0
	downPayment := 20.0

	price := MaxPurchasePrice(annualIncome, monthlyDebts, dti, rate, taxRate, insurance, downPayment, 0, 30, 0)
	loanAmount := price * (100 - downPayment) / 100
	payment := MonthlyPayment(loanAmount, rate, 30, price*taxRate/100, insurance, 0)

	budget := annualIncome / 12 * dti / 100
	if payment+monthlyDebts > budget+1 {
		t.Errorf("implied payment %.2f + debts %.2f exceeds DTI budget %.2f", payment, monthlyDebts, budget)
	}
	// The floor on price should not leave meaningful budget unused.
	if payment+monthlyDebts < budget-5 {
		t.Errorf("implied payment %.2f + debts %.2f falls well short of budget %.2f", payment, monthlyDebts, budget)
	}
}

func TestComputeOutcome_FicoMonotonicity(t *testing.T) {

	market := domain.MarketData{
		ConventionalInterestRate: 6.75,
		FHAInterestRate:          6.25,
		PropertyTaxRate:          1.25,
		PropertyInsuranceAnnual:  1200,
	}
	loan := domain.LoanParameters{LoanType: domain.LoanTypeConventional, LTV: 80}

	prev := -1.0
	for _, fico := range []int{620, 640, 660, 680, 700, 720, 740, 780} {
		out := computeOutcome(fico, 80, domain.LoanTypeConventional,
			domain.CompensatingFactors{}, 100000, 500, market, loan)
		if out.price < prev {
			t.Errorf("price decreased when FICO rose to %d: %.0f < %.0f", fico, out.price, prev)
		}
		prev = out.price
	}
}

func TestComputeOutcome_LowerLTVLowersPayment(t *testing.T) {

	market := domain.MarketData{
		ConventionalInterestRate: 6.75,
		FHAInterestRate:          6.25,
		PropertyTaxRate:          1.25,
		PropertyInsuranceAnnual:  1200,
	}
	loan := domain.LoanParameters{LoanType: domain.LoanTypeConventional, LTV: 95}

	price := 400000.0
	prevPayment := math.Inf(1)
	for _, ltv := range []float64{95, 90, 85, 80} {
		rate := AdjustedRate(market.ConventionalInterestRate, 720, ltv, domain.LoanTypeConventional)
		ongoing, _ := mortgageInsuranceRates(domain.LoanTypeConventional, ltv, loan)
		payment := MonthlyPayment(price*ltv/100, rate, 30, price*1.25/100, 1200, ongoing)
		if payment > prevPayment {
			t.Errorf("payment increased at lower LTV %.0f: %.0f > %.0f", ltv, payment, prevPayment)
		}
		prevPayment = payment
	}
}

func TestComputeOutcome_NotOfferedReturnsZero(t *testing.T) {

	market := domain.MarketData{
		ConventionalInterestRate: 6.75,
		FHAInterestRate:          6.25,
		PropertyTaxRate:          1.25,
		PropertyInsuranceAnnual:  1200,
	}
	loan := domain.LoanParameters{LoanType: domain.LoanTypeConventional, LTV: 95}

	// Conventional is not offered below FICO 620.
	out := computeOutcome(580, 95, domain.LoanTypeConventional,
		domain.CompensatingFactors{}, 100000, 500, market, loan)

	if out.price != 0 || out.payment != 0 {
		t.Errorf("expected zero affordability for not-offered combination, got price %.0f payment %.0f", out.price, out.payment)
	}
	if rateOffered(out.rate) {
		t.Errorf("expected sentinel rate, got %.2f", out.rate)
	}
}
