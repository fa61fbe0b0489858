package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NisabBasis identifies which threshold produced the effective nisab.
type NisabBasis string

const (
	NisabBasisUsedGold        NisabBasis = "gold"
	NisabBasisUsedSilver      NisabBasis = "silver"
	NisabBasisUsedDualMinimum NisabBasis = "dual_minimum"
	NisabBasisUsedCustom      NisabBasis = "custom"
)

// CalculationRequest carries the caller-supplied parameters of one calculation.
// Metal prices are plain inputs; the engine never fetches them itself.
type CalculationRequest struct {
	CalculationDate    time.Time        `json:"calculation_date"`
	MethodologyID      MethodologyID    `json:"methodology_id"`
	Currency           string           `json:"currency"`
	GoldPricePerGram   decimal.Decimal  `json:"gold_price_per_gram"`
	SilverPricePerGram decimal.Decimal  `json:"silver_price_per_gram"`
	IncludeAssetIDs    []string         `json:"include_asset_ids"`
	CustomNisab        *decimal.Decimal `json:"custom_nisab,omitempty"`
}

// NisabResult is the output of the nisab calculator.
type NisabResult struct {
	GoldThreshold   decimal.Decimal `json:"gold_threshold"`
	SilverThreshold decimal.Decimal `json:"silver_threshold"`
	EffectiveNisab  decimal.Decimal `json:"effective_nisab"`
	Basis           NisabBasis      `json:"basis"`
	MethodologyID   MethodologyID   `json:"methodology_id"`
	CustomOverride  bool            `json:"custom_override"`
}

// AssetCalculation is one per-asset line item of a calculation result.
// ZakatDue is a derived display value; totals are summed from the
// full-precision ZakatableAmount, never from rounded line items.
type AssetCalculation struct {
	AssetID         string          `json:"asset_id"`
	Category        AssetCategory   `json:"category"`
	Value           decimal.Decimal `json:"value"`
	ZakatableAmount decimal.Decimal `json:"zakatable_amount"`
	ZakatDue        decimal.Decimal `json:"zakat_due"`
	RulesApplied    []string        `json:"rules_applied"`
}

// LiabilityReduction is the output of the debt reducer.
type LiabilityReduction struct {
	DeductibleTotal decimal.Decimal `json:"deductible_total"`
	AppliedRule     string          `json:"applied_rule"`
	ExclusionNotes  []string        `json:"exclusion_notes,omitempty"`
}

// CalculationBreakdown carries the audit trail of a calculation: which rules
// fired, why items were excluded, and the scholarly citations behind them.
type CalculationBreakdown struct {
	DeductionRule   string   `json:"deduction_rule"`
	LiabilityNotes  []string `json:"liability_notes,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	SourceCitations []string `json:"source_citations"`
}

// ZakatCalculationResult is the top-level output of one calculation. It is a
// pure value: produced once per call and never updated in place.
type ZakatCalculationResult struct {
	CalculationDate       time.Time            `json:"calculation_date"`
	MethodologyID         MethodologyID        `json:"methodology_id"`
	Currency              string               `json:"currency"`
	Nisab                 NisabResult          `json:"nisab"`
	Assets                []AssetCalculation   `json:"assets"`
	TotalAssetsValue      decimal.Decimal      `json:"total_assets_value"`
	TotalZakatableAmount  decimal.Decimal      `json:"total_zakatable_amount"`
	DeductibleLiabilities decimal.Decimal      `json:"deductible_liabilities"`
	NetZakatableAmount    decimal.Decimal      `json:"net_zakatable_amount"`
	MeetsNisab            bool                 `json:"meets_nisab"`
	TotalZakatDue         decimal.Decimal      `json:"total_zakat_due"`
	Breakdown             CalculationBreakdown `json:"breakdown"`
}

// CalculationSnapshot is a persisted historical calculation.
type CalculationSnapshot struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Result    ZakatCalculationResult `json:"result"`
}

// Payment records an amount paid against a calculated obligation.
type Payment struct {
	ID            string          `json:"id"`
	CalculationID string          `json:"calculation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaidAt        time.Time       `json:"paid_at"`
	Note          string          `json:"note,omitempty"`
}

// PaymentProgress summarizes payments recorded against one snapshot.
type PaymentProgress struct {
	CalculationID string          `json:"calculation_id"`
	TotalDue      decimal.Decimal `json:"total_due"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Remaining     decimal.Decimal `json:"remaining"`
	Payments      []Payment       `json:"payments"`
}
