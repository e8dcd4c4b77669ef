package service

import "mortgage-engine/domain"

const (
	// Underwriting DTI parameters, back-end ratios in percent.
	BaseDTIConventional = 36.0
	BaseDTIFHA          = 43.0
	MaxDTIConventional  = 50.0
	MaxDTIFHA           = 57.0

	// Ceilings for the legacy flat-list factor shape.
	LegacyCeilingConventional = 45.0
	LegacyCeilingFHA          = 50.0

	// RateNotOffered flags a (loan type, FICO) combination the lender
	// does not service. Callers gate eligibility upstream; the table
	// still returns a number so the math never divides by surprise.
	RateNotOffered = 999.0

	DefaultTermYears = 30

	// Mortgage insurance, annual % of loan amount.
	ConventionalPMIRate = 0.5  // charged when LTV > 80
	FHAOngoingMIPLow    = 0.50 // LTV <= 90
	FHAOngoingMIPHigh   = 0.55 // LTV > 90
	FHAUpfrontMIP       = 1.75 // financed into the loan

	// A factor tier carrying at least this much DTI weight counts as
	// "strong" in the reported factor count.
	StrongFactorWeight = 2.0

	MaxAnnualIncome = 100_000_000.0
	MaxMonthlyDebts = 1_000_000.0
)

// ficoBand maps a minimum score to an additive rate adjustment in
// percentage points. Bands are checked high to low; first match wins.
type ficoBand struct {
	MinScore   int
	Adjustment float64
}

// Conventional pricing stops at 620. FHA services down to 500 with
// milder hits, mirroring agency pricing grids.
var conventionalFicoBands = []ficoBand{
	{740, 0},
	{720, 0.25},
	{700, 0.50},
	{680, 0.625},
	{660, 0.75},
	{640, 0.875},
	{620, 1.00},
}

var fhaFicoBands = []ficoBand{
	{740, 0},
	{720, 0},
	{680, 0.125},
	{640, 0.25},
	{620, 0.25},
	{580, 0.50},
	{500, 0.75},
}

// ltvBand maps a maximum LTV to an additive rate adjustment,
// independent of loan type. Checked low to high; first match wins.
type ltvBand struct {
	MaxLTV     float64
	Adjustment float64
}

var ltvRateBands = []ltvBand{
	{60, -0.25},
	{70, -0.125},
	{80, 0},
	{85, 0.125},
	{90, 0.25},
	{95, 0.375},
	{97, 0.50},
}

// ltvRateAboveTop applies beyond the highest defined band.
const ltvRateAboveTop = 0.75

// Scenario generation snaps to these predefined LTV tiers, descending.
var ltvTiers = []float64{97, 95, 90, 85, 80, 75, 70, 60}

// factorWeights maps each compensating-factor category and tier to an
// additive DTI bonus in percentage points. A tier string missing from
// its category table contributes 0, never an error, so stale persisted
// selections survive table changes.
var factorWeights = map[domain.FactorKey]map[string]float64{
	domain.FactorCashReserves: {
		"1-2 months": 1,
		"3-5 months": 2,
		"3-6 months": 2, // older clients send this label for the same tier
		"6+ months":  3,
	},
	domain.FactorResidualIncome: {
		"meets guidelines":   2,
		"exceeds guidelines": 3,
	},
	domain.FactorCreditHistory: {
		"760+":    3,
		"720-759": 2,
		"680-719": 1,
		"640-679": 0,
		"<640":    0,
	},
	domain.FactorHousingIncrease: {
		"minimal":     2,
		"moderate":    1,
		"significant": 0,
	},
	domain.FactorEmployment: {
		"5+ years":  2,
		"2-5 years": 1,
		"<2 years":  0,
	},
	domain.FactorUtilization: {
		"<10%":   2,
		"10-30%": 1,
		">30%":   0,
	},
	domain.FactorDownPayment: {
		"20%+":   2,
		"10-20%": 1,
		"<10%":   0,
	},
	domain.FactorNonHousingDTI: {
		"<5%":   2,
		"5-10%": 0,
		">10%":  0,
	},
}
