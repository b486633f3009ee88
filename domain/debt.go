package domain

type PayoffStrategy string

const (
	// StrategySnowball pays the smallest balance first.
	StrategySnowball PayoffStrategy = "snowball"
	// StrategyAvalanche pays the highest rate first.
	StrategyAvalanche PayoffStrategy = "avalanche"
	// StrategyCompare runs both and reports the cheaper one.
	StrategyCompare PayoffStrategy = "compare"
)

type Debt struct {
	Name              string  `json:"name" validate:"required"`
	Balance           float64 `json:"balance" validate:"finite,gt=0"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"finite,gte=0"`
	MinimumPayment    float64 `json:"minimum_payment" validate:"finite,gt=0"`
}

type PayoffInput struct {
	Debts         []Debt         `json:"debts" validate:"min=1,unique=Name,dive"`
	MonthlyBudget float64        `json:"monthly_budget" validate:"finite,gt=0"`
	Strategy      PayoffStrategy `json:"strategy" validate:"oneof=snowball avalanche compare"`
}

type DebtPayment struct {
	DebtName         string  `json:"debt_name"`
	Payment          float64 `json:"payment"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type PayoffMonth struct {
	Month     int           `json:"month"`
	Payments  []DebtPayment `json:"payments"`
	TotalPaid float64       `json:"total_paid"`
}

type StrategySummary struct {
	TotalInterestPaid float64 `json:"total_interest_paid"`
	MonthsToPayoff    int     `json:"months_to_payoff"`
}

type PayoffComparison struct {
	Snowball      StrategySummary `json:"snowball"`
	Avalanche     StrategySummary `json:"avalanche"`
	InterestSaved float64         `json:"interest_saved"`
	MonthsSaved   int             `json:"months_saved"`
}

// PayoffPlan is the month-by-month repayment of a set of debts under one strategy.
type PayoffPlan struct {
	Strategy          PayoffStrategy    `json:"strategy"`
	TotalDebt         float64           `json:"total_debt"`
	TotalInterestPaid float64           `json:"total_interest_paid"`
	MonthsToPayoff    int               `json:"months_to_payoff"`
	Months            []PayoffMonth     `json:"months"`
	Comparison        *PayoffComparison `json:"comparison,omitempty"`
}
