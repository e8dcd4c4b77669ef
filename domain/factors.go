package domain

import (
	"encoding/json"
	"errors"
)

// FactorKey identifies a compensating-factor category.
type FactorKey string

const (
	FactorCashReserves     FactorKey = "cashReserves"
	FactorResidualIncome   FactorKey = "residualIncome"
	FactorCreditHistory    FactorKey = "creditHistory"
	FactorHousingIncrease  FactorKey = "housingPaymentIncrease"
	FactorEmployment       FactorKey = "employmentHistory"
	FactorUtilization      FactorKey = "creditUtilization"
	FactorDownPayment      FactorKey = "downPayment"
	FactorNonHousingDTI    FactorKey = "nonHousingDTI"
)

// TierNone is the default tier for any unselected category.
const TierNone = "none"

// CompensatingFactors accepts two wire shapes: the structured
// category→tier map, and the legacy flat list of factor names still
// sent by older clients. Exactly one of Tiers/Legacy is populated.
type CompensatingFactors struct {
	Tiers  map[FactorKey]string
	Legacy []string
}

// IsLegacy reports whether the factors arrived in the old list shape.
func (f CompensatingFactors) IsLegacy() bool {
	return f.Tiers == nil && f.Legacy != nil
}

func (f *CompensatingFactors) UnmarshalJSON(data []byte) error {
	var tiers map[FactorKey]string
	if err := json.Unmarshal(data, &tiers); err == nil {
		f.Tiers = tiers
		f.Legacy = nil
		return nil
	}

	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		f.Tiers = nil
		f.Legacy = legacy
		return nil
	}

	return errors.New("selected factors must be a tier map or a list of factor names")
}

func (f CompensatingFactors) MarshalJSON() ([]byte, error) {
	if f.IsLegacy() {
		return json.Marshal(f.Legacy)
	}
	if f.Tiers == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f.Tiers)
}

// Tier returns the selected tier for a category, defaulting to TierNone.
func (f CompensatingFactors) Tier(key FactorKey) string {
	if f.Tiers == nil {
		return TierNone
	}
	tier, ok := f.Tiers[key]
	if !ok || tier == "" {
		return TierNone
	}
	return tier
}
