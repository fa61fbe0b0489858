package nisab

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zakat-engine/internal/methodology"
	"zakat-engine/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func resolve(t *testing.T, id models.MethodologyID) models.MethodologyDefinition {
	t.Helper()
	def, err := methodology.NewRegistry().Resolve(id)
	require.NoError(t, err)
	return def
}

func TestDualMinimumSelectsLowerThreshold(t *testing.T) {
	m := resolve(t, models.MethodologyStandard)

	result, err := Calculate(dec("60"), dec("0.80"), m, nil)
	require.NoError(t, err)

	assert.True(t, result.GoldThreshold.Equal(dec("5248.80")), "gold threshold = %s", result.GoldThreshold)
	assert.True(t, result.SilverThreshold.Equal(dec("489.888")), "silver threshold = %s", result.SilverThreshold)
	assert.True(t, result.EffectiveNisab.Equal(dec("489.888")))
	assert.Equal(t, models.NisabBasisUsedSilver, result.Basis)
	assert.False(t, result.CustomOverride)
}

func TestDualMinimumGoldLower(t *testing.T) {
	m := resolve(t, models.MethodologyStandard)

	// Absurd silver price just to flip the minimum.
	result, err := Calculate(dec("1"), dec("50"), m, nil)
	require.NoError(t, err)

	assert.True(t, result.EffectiveNisab.Equal(dec("87.48")))
	assert.Equal(t, models.NisabBasisUsedGold, result.Basis)
}

func TestDualMinimumTiePrefersSilver(t *testing.T) {
	m := resolve(t, models.MethodologyStandard)

	// 612.36 * g == 87.48 * s when s/g = 7. Gold 7, silver 1 gives
	// thresholds 612.36 on both sides.
	result, err := Calculate(dec("7"), dec("1"), m, nil)
	require.NoError(t, err)

	require.True(t, result.GoldThreshold.Equal(result.SilverThreshold))
	assert.Equal(t, models.NisabBasisUsedSilver, result.Basis)
}

func TestSilverOnlyBasis(t *testing.T) {
	m := resolve(t, models.MethodologyHanafi)

	result, err := Calculate(dec("60"), dec("0.80"), m, nil)
	require.NoError(t, err)

	assert.True(t, result.EffectiveNisab.Equal(dec("489.888")))
	assert.Equal(t, models.NisabBasisUsedSilver, result.Basis)
}

func TestSilverOnlyIgnoresCheaperGold(t *testing.T) {
	m := resolve(t, models.MethodologyHanafi)

	// Even when the gold threshold is lower, silver-only sticks with silver.
	result, err := Calculate(dec("0.01"), dec("100"), m, nil)
	require.NoError(t, err)

	assert.True(t, result.EffectiveNisab.Equal(result.SilverThreshold))
	assert.Equal(t, models.NisabBasisUsedSilver, result.Basis)
}

func TestGoldOnlyBasis(t *testing.T) {
	m := resolve(t, models.MethodologyShafii)

	result, err := Calculate(dec("60"), dec("0.80"), m, nil)
	require.NoError(t, err)

	assert.True(t, result.EffectiveNisab.Equal(dec("5248.80")))
	assert.Equal(t, models.NisabBasisUsedGold, result.Basis)
}

func TestCustomOverrideShortCircuits(t *testing.T) {
	m := resolve(t, models.MethodologyCustom)
	override := dec("3000")

	result, err := Calculate(dec("60"), dec("0.80"), m, &override)
	require.NoError(t, err)

	assert.True(t, result.EffectiveNisab.Equal(override))
	assert.Equal(t, models.NisabBasisUsedCustom, result.Basis)
	assert.True(t, result.CustomOverride)
	assert.True(t, result.GoldThreshold.IsZero(), "override must skip price computation")
	assert.True(t, result.SilverThreshold.IsZero())
}

func TestNonPositiveOverrideFails(t *testing.T) {
	m := resolve(t, models.MethodologyCustom)
	override := decimal.Zero

	_, err := Calculate(dec("60"), dec("0.80"), m, &override)
	assert.ErrorIs(t, err, models.ErrInvalidCustomNisab)
}

func TestNonPositivePricesFail(t *testing.T) {
	m := resolve(t, models.MethodologyStandard)

	_, err := Calculate(decimal.Zero, dec("0.80"), m, nil)
	assert.ErrorIs(t, err, models.ErrInvalidGoldPrice)

	_, err = Calculate(dec("60"), dec("-1"), m, nil)
	assert.ErrorIs(t, err, models.ErrInvalidSilverPrice)
}

func TestThresholdMonotonicity(t *testing.T) {
	m := resolve(t, models.MethodologyStandard)

	low, err := Calculate(dec("50"), dec("0.70"), m, nil)
	require.NoError(t, err)
	high, err := Calculate(dec("55"), dec("0.75"), m, nil)
	require.NoError(t, err)

	assert.True(t, high.GoldThreshold.GreaterThan(low.GoldThreshold))
	assert.True(t, high.SilverThreshold.GreaterThan(low.SilverThreshold))
	assert.True(t, high.EffectiveNisab.LessThanOrEqual(high.GoldThreshold))
	assert.True(t, high.EffectiveNisab.LessThanOrEqual(high.SilverThreshold))
}
