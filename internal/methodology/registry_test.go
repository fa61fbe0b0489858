package methodology

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zakat-engine/internal/models"
)

func TestResolveKnownMethodologies(t *testing.T) {
	r := NewRegistry()

	for _, id := range models.ValidMethodologyIDs() {
		def, err := r.Resolve(id)
		require.NoError(t, err, "methodology %s should resolve", id)
		assert.Equal(t, id, def.ID)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Sources, "methodology %s must carry citations", id)
		assert.True(t, def.Rate.Equal(decimal.RequireFromString("0.025")))
		assert.True(t, def.GoldNisabGrams.Equal(decimal.RequireFromString("87.48")))
		assert.True(t, def.SilverNisabGrams.Equal(decimal.RequireFromString("612.36")))
	}
}

func TestResolveUnknownMethodologyFails(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("hanbali")
	assert.ErrorIs(t, err, models.ErrUnknownMethodology)

	_, err = r.Resolve("")
	assert.ErrorIs(t, err, models.ErrUnknownMethodology)
}

func TestRegistryPolicies(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		id       models.MethodologyID
		nisab    models.NisabBasisPolicy
		business models.BusinessAssetPolicy
		debt     models.DebtPolicy
	}{
		{models.MethodologyStandard, models.NisabBasisDualMinimum, models.BusinessPolicyComprehensive, models.DebtPolicyConservative},
		{models.MethodologyHanafi, models.NisabBasisSilverOnly, models.BusinessPolicyComprehensive, models.DebtPolicyComprehensive},
		{models.MethodologyShafii, models.NisabBasisGoldOnly, models.BusinessPolicyCategorized, models.DebtPolicyImmediateOnly},
		{models.MethodologyMaliki, models.NisabBasisDualMinimum, models.BusinessPolicyMarketValue, models.DebtPolicyConservative},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			def, err := r.Resolve(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.nisab, def.NisabBasis)
			assert.Equal(t, tt.business, def.BusinessPolicy)
			assert.Equal(t, tt.debt, def.DebtPolicy)
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r := NewRegistry()

	defs := r.All()
	require.Len(t, defs, len(models.ValidMethodologyIDs()))

	// Mutating the returned slice must not affect later reads.
	defs[0].Name = "tampered"
	fresh, err := r.Resolve(defs[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", fresh.Name)
}
