// Package models defines the data structures for the zakat calculation engine.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AssetCategory represents the category of a declared asset.
type AssetCategory string

const (
	AssetCategoryCash       AssetCategory = "cash"
	AssetCategoryGold       AssetCategory = "gold"
	AssetCategorySilver     AssetCategory = "silver"
	AssetCategoryCrypto     AssetCategory = "crypto"
	AssetCategoryBusiness   AssetCategory = "business"
	AssetCategoryInvestment AssetCategory = "investment"
	AssetCategoryRealEstate AssetCategory = "real_estate"
	AssetCategoryOther      AssetCategory = "other"
)

// ValidAssetCategories returns all valid asset category values.
func ValidAssetCategories() []AssetCategory {
	return []AssetCategory{
		AssetCategoryCash,
		AssetCategoryGold,
		AssetCategorySilver,
		AssetCategoryCrypto,
		AssetCategoryBusiness,
		AssetCategoryInvestment,
		AssetCategoryRealEstate,
		AssetCategoryOther,
	}
}

// IsValid checks if the asset category is valid.
func (c AssetCategory) IsValid() bool {
	for _, valid := range ValidAssetCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// NormalizeAssetCategory converts various category formats to standard values.
// Unknown categories map to AssetCategoryOther so the asset is retained and
// annotated rather than silently dropped.
func NormalizeAssetCategory(category string) AssetCategory {
	normalized := strings.ToLower(strings.TrimSpace(category))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	categoryMap := map[string]AssetCategory{
		"cash":           AssetCategoryCash,
		"savings":        AssetCategoryCash,
		"bank":           AssetCategoryCash,
		"gold":           AssetCategoryGold,
		"silver":         AssetCategorySilver,
		"crypto":         AssetCategoryCrypto,
		"cryptocurrency": AssetCategoryCrypto,
		"business":       AssetCategoryBusiness,
		"investment":     AssetCategoryInvestment,
		"investments":    AssetCategoryInvestment,
		"stocks":         AssetCategoryInvestment,
		"shares":         AssetCategoryInvestment,
		"real_estate":    AssetCategoryRealEstate,
		"realestate":     AssetCategoryRealEstate,
		"property":       AssetCategoryRealEstate,
		"other":          AssetCategoryOther,
	}

	if mapped, ok := categoryMap[normalized]; ok {
		return mapped
	}

	return AssetCategoryOther
}

// AssetRecord represents one declared holding. Records are created by the
// asset-management subsystem and are read-only inputs to a calculation.
type AssetRecord struct {
	ID          string          `json:"id"`
	Category    AssetCategory   `json:"category"`
	SubCategory string          `json:"sub_category,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
}

// Validate checks structural invariants of the record. A failing record is
// excluded from a calculation with a warning rather than failing the request.
func (a *AssetRecord) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrEmptyAssetID
	}
	if a.Value.IsNegative() {
		return ErrNegativeAssetValue
	}
	if !IsValidCurrency(a.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}

// IsValidCurrency reports whether code looks like an ISO 4217 currency code.
func IsValidCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
