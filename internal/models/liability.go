package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LiabilityType represents the category of a declared debt.
type LiabilityType string

const (
	LiabilityTypePersonalDebt LiabilityType = "personal_debt"
	LiabilityTypeBusinessLoan LiabilityType = "business_loan"
	LiabilityTypeMortgage     LiabilityType = "mortgage"
	LiabilityTypeCreditCard   LiabilityType = "credit_card"
	LiabilityTypeStudentLoan  LiabilityType = "student_loan"
	LiabilityTypeOther        LiabilityType = "other"
)

// ValidLiabilityTypes returns all valid liability type values.
func ValidLiabilityTypes() []LiabilityType {
	return []LiabilityType{
		LiabilityTypePersonalDebt,
		LiabilityTypeBusinessLoan,
		LiabilityTypeMortgage,
		LiabilityTypeCreditCard,
		LiabilityTypeStudentLoan,
		LiabilityTypeOther,
	}
}

// IsValid checks if the liability type is valid.
func (t LiabilityType) IsValid() bool {
	for _, valid := range ValidLiabilityTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// NormalizeLiabilityType converts various liability type formats to standard values.
func NormalizeLiabilityType(liabilityType string) LiabilityType {
	normalized := strings.ToLower(strings.TrimSpace(liabilityType))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	typeMap := map[string]LiabilityType{
		"personal_debt": LiabilityTypePersonalDebt,
		"personal":      LiabilityTypePersonalDebt,
		"personal_loan": LiabilityTypePersonalDebt,
		"business_loan": LiabilityTypeBusinessLoan,
		"business":      LiabilityTypeBusinessLoan,
		"mortgage":      LiabilityTypeMortgage,
		"home_loan":     LiabilityTypeMortgage,
		"credit_card":   LiabilityTypeCreditCard,
		"creditcard":    LiabilityTypeCreditCard,
		"student_loan":  LiabilityTypeStudentLoan,
		"other":         LiabilityTypeOther,
	}

	if mapped, ok := typeMap[normalized]; ok {
		return mapped
	}

	return LiabilityTypeOther
}

// LiabilityRecord represents one declared debt. Like assets, liabilities are
// read-only inputs to a calculation.
type LiabilityRecord struct {
	ID          string          `json:"id"`
	Type        LiabilityType   `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Description string          `json:"description,omitempty"`
}

// Validate checks structural invariants of the record.
func (l *LiabilityRecord) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return ErrEmptyLiabilityID
	}
	if l.Amount.IsNegative() {
		return ErrNegativeLiabilityAmount
	}
	if !IsValidCurrency(l.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}
