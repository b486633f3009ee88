package domain

type OptionType string

const (
	OptionCall OptionType = "call"
	OptionPut  OptionType = "put"
)

type OptionParameters struct {
	SpotPrice           float64    `json:"spot_price" validate:"finite,gt=0"`
	StrikePrice         float64    `json:"strike_price" validate:"finite,gt=0"`
	TimeToMaturityYears float64    `json:"time_to_maturity_years" validate:"finite,gt=0"`
	RiskFreeRatePercent float64    `json:"risk_free_rate_percent" validate:"finite"`
	VolatilityPercent   float64    `json:"volatility_percent" validate:"finite,gt=0"`
	OptionType          OptionType `json:"option_type" validate:"oneof=call put"`
}

type OptionPrice struct {
	CallPrice     float64    `json:"call_price"`
	PutPrice      float64    `json:"put_price"`
	SelectedPrice float64    `json:"selected_price"`
	OptionType    OptionType `json:"option_type"`
	D1            float64    `json:"d1"`
	D2            float64    `json:"d2"`
}

// Greeks are the sensitivities of the selected option.
// Vega and Rho are per percentage point, Theta is per calendar day.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

type OptionResult struct {
	Price  OptionPrice `json:"price"`
	Greeks Greeks      `json:"greeks"`
}
