// Package calculator implements the zakat calculation pipeline.
package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"zakat-engine/internal/methodology"
	"zakat-engine/internal/models"
	"zakat-engine/internal/services/classifier"
	"zakat-engine/internal/services/liability"
	"zakat-engine/internal/services/nisab"
)

// Service orchestrates one zakat calculation: resolve methodology, compute
// nisab, classify assets, reduce liabilities, aggregate. It holds only the
// injected rule registry; every call is stateless and reproducible.
type Service struct {
	registry *methodology.Registry
}

// NewService creates a calculator backed by the given methodology registry.
func NewService(registry *methodology.Registry) *Service {
	return &Service{registry: registry}
}

// Calculate runs the full pipeline for one request. Structural problems with
// the request (unknown methodology, non-positive prices, bad currency) fail
// the call; problems with individual records exclude that record with a
// warning in the breakdown.
func (s *Service) Calculate(req models.CalculationRequest, assets []models.AssetRecord, liabilities []models.LiabilityRecord) (*models.ZakatCalculationResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	m, err := s.registry.Resolve(req.MethodologyID)
	if err != nil {
		return nil, err
	}
	if m.ID == models.MethodologyCustom && req.CustomNisab == nil {
		return nil, models.ErrMissingCustomNisab
	}

	nisabResult, err := nisab.Calculate(req.GoldPricePerGram, req.SilverPricePerGram, m, req.CustomNisab)
	if err != nil {
		return nil, fmt.Errorf("nisab calculation: %w", err)
	}

	currency := strings.ToUpper(req.Currency)
	var warnings []string

	included := filterAssets(assets, req.IncludeAssetIDs)

	lines := make([]models.AssetCalculation, 0, len(included))
	totalAssets := decimal.Zero
	totalZakatable := decimal.Zero

	for _, asset := range included {
		if err := asset.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Asset %s excluded: %v", asset.ID, err))
			continue
		}
		if strings.ToUpper(asset.Currency) != currency {
			warnings = append(warnings, fmt.Sprintf("Asset %s excluded: currency %s does not match calculation currency %s", asset.ID, asset.Currency, currency))
			continue
		}

		line := classifier.Classify(asset, m)
		lines = append(lines, line)
		totalAssets = totalAssets.Add(line.Value)
		totalZakatable = totalZakatable.Add(line.ZakatableAmount)
	}

	deductible := s.reduce(liabilities, m, req, currency)

	netZakatable := totalZakatable.Sub(deductible.DeductibleTotal)
	if netZakatable.IsNegative() {
		netZakatable = decimal.Zero
	}

	// Inclusive boundary: wealth exactly at the nisab triggers the obligation.
	meetsNisab := netZakatable.GreaterThanOrEqual(nisabResult.EffectiveNisab)

	// The single rounding step of the whole pipeline. Intermediate amounts
	// keep full precision so summed totals are exact.
	totalZakatDue := decimal.Zero
	if meetsNisab {
		totalZakatDue = netZakatable.Mul(m.Rate).Round(2)
	}

	return &models.ZakatCalculationResult{
		CalculationDate:       req.CalculationDate,
		MethodologyID:         m.ID,
		Currency:              currency,
		Nisab:                 nisabResult,
		Assets:                lines,
		TotalAssetsValue:      totalAssets,
		TotalZakatableAmount:  totalZakatable,
		DeductibleLiabilities: deductible.DeductibleTotal,
		NetZakatableAmount:    netZakatable,
		MeetsNisab:            meetsNisab,
		TotalZakatDue:         totalZakatDue,
		Breakdown: models.CalculationBreakdown{
			DeductionRule:   deductible.AppliedRule,
			LiabilityNotes:  deductible.ExclusionNotes,
			Warnings:        warnings,
			SourceCitations: m.Sources,
		},
	}, nil
}

// reduce pre-filters liabilities in a different currency, then applies the
// methodology's deduction policy. Currency-mismatch notes ride along with the
// policy's own exclusion notes.
func (s *Service) reduce(liabilities []models.LiabilityRecord, m models.MethodologyDefinition, req models.CalculationRequest, currency string) models.LiabilityReduction {
	matched := make([]models.LiabilityRecord, 0, len(liabilities))
	var notes []string

	for _, l := range liabilities {
		if strings.ToUpper(l.Currency) != currency {
			notes = append(notes, fmt.Sprintf("Liability %s excluded: currency %s does not match calculation currency %s", l.ID, l.Currency, currency))
			continue
		}
		matched = append(matched, l)
	}

	reduction := liability.Reduce(matched, m, req.CalculationDate)
	reduction.ExclusionNotes = append(notes, reduction.ExclusionNotes...)
	return reduction
}

func validateRequest(req models.CalculationRequest) error {
	if !models.IsValidCurrency(strings.ToUpper(req.Currency)) {
		return models.ErrInvalidCurrency
	}
	if !req.GoldPricePerGram.IsPositive() {
		return models.ErrInvalidGoldPrice
	}
	if !req.SilverPricePerGram.IsPositive() {
		return models.ErrInvalidSilverPrice
	}
	if req.CustomNisab != nil && !req.CustomNisab.IsPositive() {
		return models.ErrInvalidCustomNisab
	}
	return nil
}

// filterAssets keeps the assets whose ids appear in includeIDs, preserving
// input order. Excluding an id is equivalent to removing the record from the
// input list entirely.
func filterAssets(assets []models.AssetRecord, includeIDs []string) []models.AssetRecord {
	include := make(map[string]bool, len(includeIDs))
	for _, id := range includeIDs {
		include[id] = true
	}

	filtered := make([]models.AssetRecord, 0, len(assets))
	for _, a := range assets {
		if include[a.ID] {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
