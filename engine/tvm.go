package engine

import (
	"math"

	"fincalc/domain"
)

// CompoundInterest grows a lump sum: P(1 + r/n)^(n*t).
func CompoundInterest(principal float64, rate domain.RatePeriod, years float64) (domain.CompoundResult, error) {
	in := domain.CompoundInput{Principal: principal, Rate: rate, Years: years}
	if err := check("compound interest", in); err != nil {
		return domain.CompoundResult{}, err
	}
	if err := checkRate("compound interest", rate); err != nil {
		return domain.CompoundResult{}, err
	}

	periods := float64(rate.CompoundingPeriodsPerYear) * years
	final := principal * growth(rate.PeriodicRate(), periods)

	return domain.CompoundResult{
		FinalAmount:   final,
		TotalInterest: final - principal,
	}, nil
}

// CompoundInterestWithContributions adds the future value of monthly
// contributions (an ordinary annuity) to the grown lump sum.
//
// Contributions are made monthly; with a compounding frequency other than
// monthly the monthly amount is spread evenly over each compounding period
// (contribution * 12/n per period).
func CompoundInterestWithContributions(initial, monthlyContribution float64, rate domain.RatePeriod, years float64) (domain.ContributionResult, error) {
	in := domain.ContributionInput{
		InitialPrincipal:    initial,
		MonthlyContribution: monthlyContribution,
		Rate:                rate,
		Years:               years,
	}
	if err := check("compound interest with contributions", in); err != nil {
		return domain.ContributionResult{}, err
	}
	if err := checkRate("compound interest with contributions", rate); err != nil {
		return domain.ContributionResult{}, err
	}

	n := float64(rate.CompoundingPeriodsPerYear)
	periods := n * years
	r := rate.PeriodicRate()

	principalValue := initial * growth(r, periods)
	contributionsValue := annuityFutureValue(monthlyContribution*12/n, r, periods)

	final := principalValue + contributionsValue
	contributed := initial + monthlyContribution*12*years

	return domain.ContributionResult{
		FinalAmount:        final,
		PrincipalValue:     principalValue,
		ContributionsValue: contributionsValue,
		TotalContributions: contributed,
		TotalInterest:      final - contributed,
	}, nil
}

// AnnuityFutureValue is the value after `periods` end-of-period payments
// growing at ratePerPeriod (a decimal rate).
func AnnuityFutureValue(payment, ratePerPeriod, periods float64) (float64, error) {
	const op = "annuity future value"
	if !finite(payment, ratePerPeriod, periods) {
		return 0, invalid(op, "", "arguments must be finite numbers")
	}
	if periods < 0 {
		return 0, invalid(op, "periods", "must be at least 0")
	}
	if ratePerPeriod <= -1 {
		return 0, invalid(op, "rate_per_period", "must be greater than -1")
	}
	return annuityFutureValue(payment, ratePerPeriod, periods), nil
}

// annuityFutureValue degrades to linear accumulation at a zero rate.
func annuityFutureValue(payment, r, periods float64) float64 {
	if r == 0 {
		return payment * periods
	}
	return payment * (math.Pow(1+r, periods) - 1) / r
}

// checkRate rejects rates that would wipe out the balance in one period.
func checkRate(op string, rate domain.RatePeriod) error {
	if rate.PeriodicRate() <= -1 {
		return invalid(op, "rate.annual_rate_percent", "must not lose the whole balance in one period")
	}
	return nil
}
