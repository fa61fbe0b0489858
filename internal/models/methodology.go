package models

import (
	"github.com/shopspring/decimal"
)

// MethodologyID identifies a supported zakat methodology.
type MethodologyID string

const (
	MethodologyStandard MethodologyID = "standard"
	MethodologyHanafi   MethodologyID = "hanafi"
	MethodologyShafii   MethodologyID = "shafii"
	MethodologyMaliki   MethodologyID = "maliki"
	MethodologyCustom   MethodologyID = "custom"
)

// ValidMethodologyIDs returns all supported methodology identifiers.
func ValidMethodologyIDs() []MethodologyID {
	return []MethodologyID{
		MethodologyStandard,
		MethodologyHanafi,
		MethodologyShafii,
		MethodologyMaliki,
		MethodologyCustom,
	}
}

// IsValid checks if the methodology identifier is supported.
func (id MethodologyID) IsValid() bool {
	for _, valid := range ValidMethodologyIDs() {
		if id == valid {
			return true
		}
	}
	return false
}

// NisabBasisPolicy determines which metal threshold sets the nisab.
type NisabBasisPolicy string

const (
	NisabBasisGoldOnly    NisabBasisPolicy = "gold-only"
	NisabBasisSilverOnly  NisabBasisPolicy = "silver-only"
	NisabBasisDualMinimum NisabBasisPolicy = "dual-minimum"
)

// BusinessAssetPolicy determines how business-category assets are valued.
type BusinessAssetPolicy string

const (
	BusinessPolicyComprehensive BusinessAssetPolicy = "comprehensive"
	BusinessPolicyMarketValue   BusinessAssetPolicy = "market-value"
	BusinessPolicyCategorized   BusinessAssetPolicy = "categorized"
)

// DebtPolicy determines which liabilities are deductible.
type DebtPolicy string

const (
	DebtPolicyComprehensive DebtPolicy = "comprehensive"
	DebtPolicyConservative  DebtPolicy = "conservative"
	DebtPolicyImmediateOnly DebtPolicy = "immediate-only"
)

// MethodologyDefinition is a named, versioned rule set. Definitions are
// configuration data: built once at process start and never mutated.
type MethodologyDefinition struct {
	ID               MethodologyID       `json:"id"`
	Name             string              `json:"name"`
	NisabBasis       NisabBasisPolicy    `json:"nisab_basis"`
	GoldNisabGrams   decimal.Decimal     `json:"gold_nisab_grams"`
	SilverNisabGrams decimal.Decimal     `json:"silver_nisab_grams"`
	BusinessPolicy   BusinessAssetPolicy `json:"business_policy"`
	DebtPolicy       DebtPolicy          `json:"debt_policy"`
	Rate             decimal.Decimal     `json:"rate"`
	Sources          []string            `json:"sources"`
}
