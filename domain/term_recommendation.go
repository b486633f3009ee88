package domain

type TermPreference string

const (
	PreferMinimizeInterest TermPreference = "minimize_interest"
	PreferMinimizePayment  TermPreference = "minimize_payment"
	PreferBalanced         TermPreference = "balanced"
)

type TermRecommendationInput struct {
	Principal         float64        `json:"principal" validate:"finite,gt=0"`
	AnnualRatePercent float64        `json:"annual_rate_percent" validate:"finite,gte=0"`
	MinTermMonths     int            `json:"min_term_months" validate:"gt=0"`
	MaxTermMonths     int            `json:"max_term_months" validate:"gtefield=MinTermMonths"`
	MaxMonthlyPayment float64        `json:"max_monthly_payment" validate:"finite,gt=0"`
	Preference        TermPreference `json:"preference" validate:"oneof=minimize_interest minimize_payment balanced"`
}

type TermRecommendation struct {
	TermMonths     int     `json:"term_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermRecommendationResult struct {
	RecommendedTerm int                  `json:"recommended_term"`
	Recommendations []TermRecommendation `json:"recommendations"`
}
