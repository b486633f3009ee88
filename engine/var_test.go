package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
)

func TestZScore_Table(t *testing.T) {
	for level, want := range map[float64]float64{90: 1.282, 95: 1.645, 99: 2.326} {
		z, fallback := ZScore(level)
		assert.Equal(t, want, z)
		assert.False(t, fallback)
	}
}

func TestZScore_FallsBackTo95(t *testing.T) {
	for _, level := range []float64{0, 50, 97.5, 99.9, 100} {
		z, fallback := ZScore(level)
		assert.Equal(t, FallbackZScore, z)
		assert.True(t, fallback)
	}
}

func TestParametricVaR(t *testing.T) {
	res, err := ParametricVaR(domain.VaRParameters{
		PortfolioValue:         1_000_000,
		ConfidenceLevelPercent: 99,
		HorizonPeriods:         4,
		VolatilityPercent:      2,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1_000_000*2.326*0.02*2, res.VaRAmount, 1e-6)
	assert.Equal(t, 2.326, res.ZScore)
	assert.False(t, res.ConfidenceFallback)
}

func TestParametricVaR_UnknownConfidence(t *testing.T) {
	res, err := ParametricVaR(domain.VaRParameters{
		PortfolioValue:         1000,
		ConfidenceLevelPercent: 97,
		HorizonPeriods:         1,
		VolatilityPercent:      10,
	})
	require.NoError(t, err)

	assert.True(t, res.ConfidenceFallback)
	assert.InDelta(t, 164.5, res.VaRAmount, 1e-9)
}

func TestParametricVaR_Monotonic(t *testing.T) {
	base := domain.VaRParameters{PortfolioValue: 50000, ConfidenceLevelPercent: 95, HorizonPeriods: 10, VolatilityPercent: 15}
	baseRes, err := ParametricVaR(base)
	require.NoError(t, err)

	bumps := map[string]func(p *domain.VaRParameters){
		"portfolio":  func(p *domain.VaRParameters) { p.PortfolioValue *= 1.01 },
		"volatility": func(p *domain.VaRParameters) { p.VolatilityPercent += 0.5 },
		"horizon":    func(p *domain.VaRParameters) { p.HorizonPeriods++ },
	}
	for name, bump := range bumps {
		p := base
		bump(&p)
		res, err := ParametricVaR(p)
		require.NoError(t, err)
		assert.Greater(t, res.VaRAmount, baseRes.VaRAmount, name)
	}
}

func TestParametricVaR_InvalidInput(t *testing.T) {
	cases := []domain.VaRParameters{
		{PortfolioValue: 0, ConfidenceLevelPercent: 95, HorizonPeriods: 1, VolatilityPercent: 10},
		{PortfolioValue: 100, ConfidenceLevelPercent: 95, HorizonPeriods: 1, VolatilityPercent: 0},
		{PortfolioValue: 100, ConfidenceLevelPercent: 95, HorizonPeriods: 0, VolatilityPercent: 10},
		{PortfolioValue: 100, ConfidenceLevelPercent: math.NaN(), HorizonPeriods: 1, VolatilityPercent: 10},
	}
	for _, p := range cases {
		_, err := ParametricVaR(p)
		assert.ErrorIs(t, err, ErrInvalidInput, "params=%+v", p)
	}
}
