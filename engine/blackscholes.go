package engine

import (
	"math"

	"fincalc/domain"
)

// BlackScholesPrice prices European call and put options.
//
//	d1 = (ln(S/K) + (r + σ²/2)T) / (σ√T)
//	d2 = d1 - σ√T
//	C  = S·N(d1) - K·e^(-rT)·N(d2)
//	P  = K·e^(-rT)·N(-d2) - S·N(-d1)
func BlackScholesPrice(p domain.OptionParameters) (domain.OptionPrice, error) {
	if err := check("black-scholes price", p); err != nil {
		return domain.OptionPrice{}, err
	}

	d := newD(p)
	call := p.SpotPrice*NormalCDF(d.d1) - d.discountedStrike*NormalCDF(d.d2)
	put := d.discountedStrike*NormalCDF(-d.d2) - p.SpotPrice*NormalCDF(-d.d1)

	selected := call
	if p.OptionType == domain.OptionPut {
		selected = put
	}

	return domain.OptionPrice{
		CallPrice:     call,
		PutPrice:      put,
		SelectedPrice: selected,
		OptionType:    p.OptionType,
		D1:            d.d1,
		D2:            d.d2,
	}, nil
}

// OptionGreeks returns the sensitivities of the option selected by p.OptionType.
func OptionGreeks(p domain.OptionParameters) (domain.Greeks, error) {
	if err := check("option greeks", p); err != nil {
		return domain.Greeks{}, err
	}

	d := newD(p)
	pdf := NormalPDF(d.d1)
	r := p.RiskFreeRatePercent / 100
	t := p.TimeToMaturityYears

	g := domain.Greeks{
		Gamma: pdf / (p.SpotPrice * d.sigma * d.sqrtT),
		Vega:  p.SpotPrice * pdf * d.sqrtT / 100,
	}

	decay := -(p.SpotPrice * pdf * d.sigma) / (2 * d.sqrtT)
	if p.OptionType == domain.OptionPut {
		g.Delta = NormalCDF(d.d1) - 1
		g.Theta = (decay + r*d.discountedStrike*NormalCDF(-d.d2)) / 365
		g.Rho = -t * d.discountedStrike * NormalCDF(-d.d2) / 100
	} else {
		g.Delta = NormalCDF(d.d1)
		g.Theta = (decay - r*d.discountedStrike*NormalCDF(d.d2)) / 365
		g.Rho = t * d.discountedStrike * NormalCDF(d.d2) / 100
	}
	return g, nil
}

type dTerms struct {
	d1, d2           float64
	sigma, sqrtT     float64
	discountedStrike float64
}

func newD(p domain.OptionParameters) dTerms {
	sigma := p.VolatilityPercent / 100
	r := p.RiskFreeRatePercent / 100
	sqrtT := math.Sqrt(p.TimeToMaturityYears)

	d1 := (math.Log(p.SpotPrice/p.StrikePrice) + (r+0.5*sigma*sigma)*p.TimeToMaturityYears) / (sigma * sqrtT)
	return dTerms{
		d1:               d1,
		d2:               d1 - sigma*sqrtT,
		sigma:            sigma,
		sqrtT:            sqrtT,
		discountedStrike: p.StrikePrice * math.Exp(-r*p.TimeToMaturityYears),
	}
}
