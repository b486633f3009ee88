package engine

import (
	"math"

	"fincalc/domain"
)

// FallbackZScore is used for confidence levels missing from the table.
const FallbackZScore = 1.645

var zScores = map[float64]float64{
	90: 1.282,
	95: 1.645,
	99: 2.326,
}

// ZScore looks up the one-tailed z-score of a confidence level in percent.
// Levels outside {90, 95, 99} return FallbackZScore with fallback set;
// this is a default, not an error.
func ZScore(confidencePercent float64) (z float64, fallback bool) {
	if z, ok := zScores[confidencePercent]; ok {
		return z, false
	}
	return FallbackZScore, true
}

// ParametricVaR computes V · z · σ · √h.
func ParametricVaR(p domain.VaRParameters) (domain.VaRResult, error) {
	if err := check("parametric var", p); err != nil {
		return domain.VaRResult{}, err
	}

	z, fallback := ZScore(p.ConfidenceLevelPercent)
	amount := p.PortfolioValue * z * (p.VolatilityPercent / 100) * math.Sqrt(p.HorizonPeriods)

	return domain.VaRResult{
		VaRAmount:          amount,
		ZScore:             z,
		ConfidenceFallback: fallback,
	}, nil
}
