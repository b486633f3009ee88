package domain

// LoanTerms describes a fixed-rate amortizing loan.
type LoanTerms struct {
	Principal         float64 `json:"principal" validate:"finite,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"finite,gte=0"`
	TermYears         float64 `json:"term_years" validate:"finite,gt=0"`
}

// Months is the number of monthly payments, rounded to the nearest month.
func (t LoanTerms) Months() int {
	return int(t.TermYears*12 + 0.5)
}

type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
	Months         int     `json:"months"`
}

type AmortizationRow struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principal_portion"`
	InterestPortion  float64 `json:"interest_portion"`
	RemainingBalance float64 `json:"remaining_balance"`
}
