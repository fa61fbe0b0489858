// Package nisab computes the minimum-wealth threshold above which zakat
// becomes obligatory.
package nisab

import (
	"fmt"

	"github.com/shopspring/decimal"

	"zakat-engine/internal/models"
)

// Calculate computes the gold and silver thresholds from per-gram prices and
// resolves the effective nisab per the methodology's basis policy. A non-nil
// override short-circuits the price computation entirely; the result records
// that the override was used.
//
// Pure function: no side effects, deterministic in its inputs.
func Calculate(goldPricePerGram, silverPricePerGram decimal.Decimal, m models.MethodologyDefinition, override *decimal.Decimal) (models.NisabResult, error) {
	if override != nil {
		if !override.IsPositive() {
			return models.NisabResult{}, models.ErrInvalidCustomNisab
		}
		return models.NisabResult{
			EffectiveNisab: *override,
			Basis:          models.NisabBasisUsedCustom,
			MethodologyID:  m.ID,
			CustomOverride: true,
		}, nil
	}

	if !goldPricePerGram.IsPositive() {
		return models.NisabResult{}, models.ErrInvalidGoldPrice
	}
	if !silverPricePerGram.IsPositive() {
		return models.NisabResult{}, models.ErrInvalidSilverPrice
	}

	goldThreshold := m.GoldNisabGrams.Mul(goldPricePerGram)
	silverThreshold := m.SilverNisabGrams.Mul(silverPricePerGram)

	result := models.NisabResult{
		GoldThreshold:   goldThreshold,
		SilverThreshold: silverThreshold,
		MethodologyID:   m.ID,
	}

	switch m.NisabBasis {
	case models.NisabBasisGoldOnly:
		result.EffectiveNisab = goldThreshold
		result.Basis = models.NisabBasisUsedGold
	case models.NisabBasisSilverOnly:
		result.EffectiveNisab = silverThreshold
		result.Basis = models.NisabBasisUsedSilver
	case models.NisabBasisDualMinimum:
		// Ties report silver: the lower-or-equal threshold is the one that
		// brings more payers (and recipients) into scope.
		if silverThreshold.LessThanOrEqual(goldThreshold) {
			result.EffectiveNisab = silverThreshold
			result.Basis = models.NisabBasisUsedSilver
		} else {
			result.EffectiveNisab = goldThreshold
			result.Basis = models.NisabBasisUsedGold
		}
	default:
		return models.NisabResult{}, fmt.Errorf("methodology %q has unsupported nisab basis %q: %w",
			m.ID, m.NisabBasis, models.ErrUnknownMethodology)
	}

	return result, nil
}
