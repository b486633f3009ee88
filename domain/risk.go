package domain

type VaRParameters struct {
	PortfolioValue         float64 `json:"portfolio_value" validate:"finite,gt=0"`
	ConfidenceLevelPercent float64 `json:"confidence_level_percent" validate:"finite"`
	HorizonPeriods         float64 `json:"horizon_periods" validate:"finite,gt=0"`
	VolatilityPercent      float64 `json:"volatility_percent" validate:"finite,gt=0"`
}

type VaRResult struct {
	VaRAmount float64 `json:"var_amount"`
	ZScore    float64 `json:"z_score"`
	// ConfidenceFallback is set when the confidence level is not tabulated
	// and the 95% z-score was used instead.
	ConfidenceFallback bool `json:"confidence_fallback"`
}
