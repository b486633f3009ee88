package domain

// RatePeriod is a nominal annual rate together with its compounding frequency.
type RatePeriod struct {
	AnnualRatePercent         float64 `json:"annual_rate_percent" validate:"finite"`
	CompoundingPeriodsPerYear int     `json:"compounding_periods_per_year" validate:"gt=0"`
}

// PeriodicRate returns the decimal rate applied at each compounding period.
func (r RatePeriod) PeriodicRate() float64 {
	return r.AnnualRatePercent / 100 / float64(r.CompoundingPeriodsPerYear)
}

type CompoundInput struct {
	Principal float64    `json:"principal" validate:"finite,gte=0"`
	Rate      RatePeriod `json:"rate"`
	Years     float64    `json:"years" validate:"finite,gte=0"`
}

type CompoundResult struct {
	FinalAmount   float64 `json:"final_amount"`
	TotalInterest float64 `json:"total_interest"`
}

type ContributionInput struct {
	InitialPrincipal    float64    `json:"initial_principal" validate:"finite,gte=0"`
	MonthlyContribution float64    `json:"monthly_contribution" validate:"finite,gte=0"`
	Rate                RatePeriod `json:"rate"`
	Years               float64    `json:"years" validate:"finite,gte=0"`
}

type ContributionResult struct {
	FinalAmount        float64 `json:"final_amount"`
	PrincipalValue     float64 `json:"principal_value"`
	ContributionsValue float64 `json:"contributions_value"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
}

type ProjectionInput struct {
	InitialInvestment   float64    `json:"initial_investment" validate:"finite,gte=0"`
	MonthlyContribution float64    `json:"monthly_contribution" validate:"finite,gte=0"`
	Rate                RatePeriod `json:"rate"`
	Years               int        `json:"years" validate:"gt=0"`
}

// ProjectionYear is the state of a projection at the end of a year.
type ProjectionYear struct {
	Year               int     `json:"year"`
	Balance            float64 `json:"balance"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
}

type ProjectionResult struct {
	FinalAmount        float64          `json:"final_amount"`
	TotalContributions float64          `json:"total_contributions"`
	TotalInterest      float64          `json:"total_interest"`
	Years              []ProjectionYear `json:"years"`
}

type RetirementInput struct {
	CurrentAge          int     `json:"current_age" validate:"gte=0"`
	RetirementAge       int     `json:"retirement_age" validate:"gtfield=CurrentAge"`
	CurrentSavings      float64 `json:"current_savings" validate:"finite,gte=0"`
	MonthlyContribution float64 `json:"monthly_contribution" validate:"finite,gte=0"`
	AnnualRatePercent   float64 `json:"annual_rate_percent" validate:"finite"`
	// WithdrawalRatePercent is the annual share of the fund paid out as income.
	WithdrawalRatePercent float64 `json:"withdrawal_rate_percent" validate:"finite,gt=0"`
}

type RetirementResult struct {
	MonthsToRetirement int     `json:"months_to_retirement"`
	FinalAmount        float64 `json:"final_amount"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
	MonthlyIncome      float64 `json:"monthly_income"`
}
