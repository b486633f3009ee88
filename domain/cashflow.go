package domain

// CashFlowSeries holds signed amounts for periods 0..N.
// Period 0 is usually the (negative) initial outlay.
type CashFlowSeries []float64

type IRRInput struct {
	CashFlows CashFlowSeries `json:"cash_flows" validate:"min=2,dive,finite"`
}

type IRRResult struct {
	// IRR is a decimal rate, 0.1283 means 12.83% per period.
	IRR        float64 `json:"irr"`
	Iterations int     `json:"iterations"`
}

type NPVInput struct {
	RatePercent float64        `json:"rate_percent" validate:"finite,gt=-100"`
	CashFlows   CashFlowSeries `json:"cash_flows" validate:"min=1,dive,finite"`
}

type NPVResult struct {
	NPV float64 `json:"npv"`
}
