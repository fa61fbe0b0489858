// Package liability applies a methodology's debt-deduction policy to the
// user's declared liabilities.
package liability

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"zakat-engine/internal/models"
)

// lunarYear approximates one zakat (lunar) year. Calendar conversion is
// outside the engine; a fixed 354-day span is used for due-date windows.
const lunarYear = 354 * 24 * time.Hour

// Reduce computes the total deductible amount under the methodology's debt
// policy. The applied rule and per-item exclusion notes are always reported,
// even when the total is zero, so a caller can audit why each liability was
// or was not deducted.
func Reduce(liabilities []models.LiabilityRecord, m models.MethodologyDefinition, asOf time.Time) models.LiabilityReduction {
	switch m.DebtPolicy {
	case models.DebtPolicyComprehensive:
		return reduceComprehensive(liabilities)
	case models.DebtPolicyConservative:
		return reduceConservative(liabilities)
	case models.DebtPolicyImmediateOnly:
		return reduceImmediateOnly(liabilities, asOf)
	}

	return models.LiabilityReduction{
		DeductibleTotal: decimal.Zero,
		AppliedRule:     fmt.Sprintf("Unrecognized debt policy %q: no liabilities deducted", m.DebtPolicy),
	}
}

func reduceComprehensive(liabilities []models.LiabilityRecord) models.LiabilityReduction {
	total := decimal.Zero
	var notes []string

	for _, l := range liabilities {
		if err := l.Validate(); err != nil {
			notes = append(notes, fmt.Sprintf("Liability %s excluded: %v", l.ID, err))
			continue
		}
		total = total.Add(l.Amount)
	}

	return models.LiabilityReduction{
		DeductibleTotal: total,
		AppliedRule:     "Comprehensive deduction: all declared liabilities deducted",
		ExclusionNotes:  notes,
	}
}

// shortHorizonTypes are the liability types the conservative policy treats as
// immediately pressing debt. Long-horizon debt (mortgages, student loans) is
// excluded even though it is real debt.
var shortHorizonTypes = map[models.LiabilityType]bool{
	models.LiabilityTypePersonalDebt: true,
	models.LiabilityTypeBusinessLoan: true,
	models.LiabilityTypeCreditCard:   true,
}

func reduceConservative(liabilities []models.LiabilityRecord) models.LiabilityReduction {
	total := decimal.Zero
	var notes []string

	for _, l := range liabilities {
		if err := l.Validate(); err != nil {
			notes = append(notes, fmt.Sprintf("Liability %s excluded: %v", l.ID, err))
			continue
		}
		if !shortHorizonTypes[l.Type] {
			notes = append(notes, fmt.Sprintf("Liability %s (%s) excluded: long-horizon debt not deductible under conservative policy", l.ID, l.Type))
			continue
		}
		total = total.Add(l.Amount)
	}

	return models.LiabilityReduction{
		DeductibleTotal: total,
		AppliedRule:     "Conservative deduction: only short-term personal and business debt deducted",
		ExclusionNotes:  notes,
	}
}

func reduceImmediateOnly(liabilities []models.LiabilityRecord, asOf time.Time) models.LiabilityReduction {
	total := decimal.Zero
	var notes []string
	horizon := asOf.Add(lunarYear)

	for _, l := range liabilities {
		if err := l.Validate(); err != nil {
			notes = append(notes, fmt.Sprintf("Liability %s excluded: %v", l.ID, err))
			continue
		}
		if l.DueDate == nil {
			notes = append(notes, fmt.Sprintf("Liability %s excluded: no due date, cannot fall within the current zakat year", l.ID))
			continue
		}
		if l.DueDate.After(horizon) {
			notes = append(notes, fmt.Sprintf("Liability %s excluded: due after the current zakat year", l.ID))
			continue
		}
		total = total.Add(l.Amount)
	}

	return models.LiabilityReduction{
		DeductibleTotal: total,
		AppliedRule:     "Immediate-only deduction: liabilities due within the current zakat year deducted",
		ExclusionNotes:  notes,
	}
}
