// Package methodology holds the declarative registry of supported zakat
// methodologies. The registry is configuration data: built once at process
// start, injected into the calculator, and never mutated afterward.
package methodology

import (
	"fmt"

	"github.com/shopspring/decimal"

	"zakat-engine/internal/models"
)

// Nisab mass constants shared by the currently defined methodologies.
// 87.48g of gold is 20 mithqal; 612.36g of silver is 200 dirhams. The masses
// live on each definition so a variant (e.g. the 85g gold opinion) is a data
// change, not a code change.
var (
	goldNisabGrams   = decimal.RequireFromString("87.48")
	silverNisabGrams = decimal.RequireFromString("612.36")
	standardRate     = decimal.RequireFromString("0.025")
)

// Registry resolves methodology identifiers to their immutable definitions.
type Registry struct {
	definitions map[models.MethodologyID]models.MethodologyDefinition
	order       []models.MethodologyID
}

// NewRegistry builds the registry of all supported methodologies.
func NewRegistry() *Registry {
	r := &Registry{definitions: make(map[models.MethodologyID]models.MethodologyDefinition)}

	r.add(models.MethodologyDefinition{
		ID:               models.MethodologyStandard,
		Name:             "Standard (AAOIFI)",
		NisabBasis:       models.NisabBasisDualMinimum,
		GoldNisabGrams:   goldNisabGrams,
		SilverNisabGrams: silverNisabGrams,
		BusinessPolicy:   models.BusinessPolicyComprehensive,
		DebtPolicy:       models.DebtPolicyConservative,
		Rate:             standardRate,
		Sources: []string{
			"AAOIFI Shari'ah Standard No. 35 (Zakah)",
			"Sahih al-Bukhari 1454 (nisab of 200 dirhams)",
			"Contemporary consensus: lower of the two thresholds benefits recipients",
		},
	})

	r.add(models.MethodologyDefinition{
		ID:               models.MethodologyHanafi,
		Name:             "Hanafi",
		NisabBasis:       models.NisabBasisSilverOnly,
		GoldNisabGrams:   goldNisabGrams,
		SilverNisabGrams: silverNisabGrams,
		BusinessPolicy:   models.BusinessPolicyComprehensive,
		DebtPolicy:       models.DebtPolicyComprehensive,
		Rate:             standardRate,
		Sources: []string{
			"Al-Hidayah, Kitab al-Zakat (silver basis preferred as more beneficial to the poor)",
			"Bada'i al-Sana'i, vol. 2 (deduction of debts from zakatable wealth)",
		},
	})

	r.add(models.MethodologyDefinition{
		ID:               models.MethodologyShafii,
		Name:             "Shafi'i",
		NisabBasis:       models.NisabBasisGoldOnly,
		GoldNisabGrams:   goldNisabGrams,
		SilverNisabGrams: silverNisabGrams,
		BusinessPolicy:   models.BusinessPolicyCategorized,
		DebtPolicy:       models.DebtPolicyImmediateOnly,
		Rate:             standardRate,
		Sources: []string{
			"Minhaj al-Talibin, Kitab al-Zakat",
			"Al-Majmu' of al-Nawawi (trade goods valued; fixed assets of a trade exempt)",
		},
	})

	r.add(models.MethodologyDefinition{
		ID:               models.MethodologyMaliki,
		Name:             "Maliki",
		NisabBasis:       models.NisabBasisDualMinimum,
		GoldNisabGrams:   goldNisabGrams,
		SilverNisabGrams: silverNisabGrams,
		BusinessPolicy:   models.BusinessPolicyMarketValue,
		DebtPolicy:       models.DebtPolicyConservative,
		Rate:             standardRate,
		Sources: []string{
			"Mukhtasar Khalil, Kitab al-Zakat",
			"Al-Mudawwana (market valuation of trade goods at the hawl)",
		},
	})

	r.add(models.MethodologyDefinition{
		ID:               models.MethodologyCustom,
		Name:             "Custom",
		NisabBasis:       models.NisabBasisDualMinimum,
		GoldNisabGrams:   goldNisabGrams,
		SilverNisabGrams: silverNisabGrams,
		BusinessPolicy:   models.BusinessPolicyComprehensive,
		DebtPolicy:       models.DebtPolicyComprehensive,
		Rate:             standardRate,
		Sources: []string{
			"User-supplied nisab override; other parameters follow the contemporary standard",
		},
	})

	return r
}

func (r *Registry) add(def models.MethodologyDefinition) {
	r.definitions[def.ID] = def
	r.order = append(r.order, def.ID)
}

// Resolve returns the definition for id. Unrecognized identifiers fail with
// ErrUnknownMethodology; there is deliberately no default fallback, since a
// silent substitution would misattribute a scholarly ruling the user did not
// select.
func (r *Registry) Resolve(id models.MethodologyID) (models.MethodologyDefinition, error) {
	def, ok := r.definitions[id]
	if !ok {
		return models.MethodologyDefinition{}, fmt.Errorf("resolve %q: %w", id, models.ErrUnknownMethodology)
	}
	return def, nil
}

// All returns every definition in registration order. The returned slice is a
// copy; callers cannot mutate registry state through it.
func (r *Registry) All() []models.MethodologyDefinition {
	defs := make([]models.MethodologyDefinition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.definitions[id])
	}
	return defs
}
