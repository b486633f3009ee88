package engine

import "math"

// Abramowitz & Stegun 7.1.26 coefficients.
const (
	asA1 = 0.254829592
	asA2 = -0.284496736
	asA3 = 1.421413741
	asA4 = -1.453152027
	asA5 = 1.061405429
	asP  = 0.3275911
)

// NormalCDF approximates the standard normal cumulative distribution.
// The polynomial is evaluated on |x| and mirrored, so
// NormalCDF(-x) == 1 - NormalCDF(x).
func NormalCDF(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	z := math.Abs(x) / math.Sqrt2

	t := 1.0 / (1.0 + asP*z)
	poly := ((((asA5*t+asA4)*t+asA3)*t+asA2)*t + asA1) * t
	erf := 1.0 - poly*math.Exp(-z*z)

	return 0.5 * (1.0 + sign*erf)
}

// NormalPDF is the standard normal density.
func NormalPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}

// growth returns (1+r)^periods.
func growth(r, periods float64) float64 {
	return math.Pow(1+r, periods)
}
