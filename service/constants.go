package service

const (
	MaxPrincipal       = 1_000_000_000.0 // 1 billion
	MaxInterestRate    = 1000.0          // 1000% per year
	MaxTermYears       = 50.0
	MaxTermMonths      = 600 // 50 years
	MaxProjectionYears = 100
	MaxCashFlows       = 1000
	MaxPortfolioValue  = 1_000_000_000_000.0
	MaxDebtAmount      = 100_000_000.0 // 100 million
	MaxDebtsPerRequest = 50

	// Range of terms evaluated by a single recommendation request (10 years).
	MaxTermRangeMonths = 120

	MoneyDecimals = 2
	PriceDecimals = 4
	RateDecimals  = 6
)
