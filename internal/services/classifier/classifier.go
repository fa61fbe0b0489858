// Package classifier determines what fraction of an asset's value is
// zakatable under a given methodology, with a human-readable rule trail.
package classifier

import (
	"strings"

	"github.com/shopspring/decimal"

	"zakat-engine/internal/models"
)

// Classify produces the per-asset line item for one asset record. It never
// errors: an odd category or sub-category yields a zero fraction with an
// explanatory rule string, so a stray data point cannot abort a calculation
// or silently move the total.
func Classify(asset models.AssetRecord, m models.MethodologyDefinition) models.AssetCalculation {
	fraction, rules := zakatableFraction(asset, m)

	zakatable := asset.Value.Mul(fraction)

	return models.AssetCalculation{
		AssetID:         asset.ID,
		Category:        asset.Category,
		Value:           asset.Value,
		ZakatableAmount: zakatable,
		ZakatDue:        zakatable.Mul(m.Rate).Round(2),
		RulesApplied:    rules,
	}
}

func zakatableFraction(asset models.AssetRecord, m models.MethodologyDefinition) (decimal.Decimal, []string) {
	one := decimal.NewFromInt(1)
	zero := decimal.Zero

	switch asset.Category {
	case models.AssetCategoryCash:
		return one, []string{"Cash and equivalents fully zakatable (scholarly consensus)"}
	case models.AssetCategoryGold:
		return one, []string{"Gold holdings fully zakatable (scholarly consensus)"}
	case models.AssetCategorySilver:
		return one, []string{"Silver holdings fully zakatable (scholarly consensus)"}
	case models.AssetCategoryCrypto:
		return one, []string{"Cryptocurrency treated as liquid monetary wealth, fully zakatable"}
	case models.AssetCategoryInvestment:
		return one, []string{"Tradeable investments fully zakatable (scholarly consensus)"}
	case models.AssetCategoryRealEstate:
		// Property value is never zakatable directly; realized rental income
		// enters the calculation as a separate cash asset.
		return zero, []string{"Real estate exempt; only realized rental income (declared as cash) is zakatable"}
	case models.AssetCategoryBusiness:
		return businessFraction(asset, m)
	case models.AssetCategoryOther:
		return zero, []string{"Unrecognized category treated as non-zakatable"}
	}

	// Unreachable for normalized records; kept for assets constructed directly.
	return zero, []string{"Unrecognized category treated as non-zakatable"}
}

func businessFraction(asset models.AssetRecord, m models.MethodologyDefinition) (decimal.Decimal, []string) {
	one := decimal.NewFromInt(1)

	switch m.BusinessPolicy {
	case models.BusinessPolicyComprehensive:
		return one, []string{"Comprehensive business asset inclusion (inventory, receivables, trade goods)"}
	case models.BusinessPolicyMarketValue:
		// Valuation freshness is an upstream concern; the declared value is
		// assumed to already be current market value.
		return one, []string{"Business assets included at current market value"}
	case models.BusinessPolicyCategorized:
		if isFixedAsset(asset.SubCategory) {
			return decimal.Zero, []string{"Business fixed assets and equipment excluded under categorized policy"}
		}
		return one, []string{"Categorized business inclusion: inventory and receivables zakatable, equipment excluded"}
	}

	return decimal.Zero, []string{"Unrecognized business policy treated as non-zakatable"}
}

// fixedAssetMarkers identify sub-categories that denote productive equipment
// rather than trade goods. Matching is substring-based so "office equipment"
// or "delivery-vehicle" are caught.
var fixedAssetMarkers = []string{
	"equipment",
	"fixed",
	"machinery",
	"furniture",
	"fixture",
	"vehicle",
	"tool",
}

func isFixedAsset(subCategory string) bool {
	normalized := strings.ToLower(strings.TrimSpace(subCategory))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")

	for _, marker := range fixedAssetMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}
