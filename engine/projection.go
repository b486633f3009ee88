package engine

import "fincalc/domain"

// DefaultWithdrawalRatePercent is the customary annual withdrawal rate
// (the "4% rule").
const DefaultWithdrawalRatePercent = 4.0

// InvestmentProjection projects a lump sum plus monthly contributions and
// reports the balance at the end of every year.
func InvestmentProjection(in domain.ProjectionInput) (domain.ProjectionResult, error) {
	const op = "investment projection"
	if err := check(op, in); err != nil {
		return domain.ProjectionResult{}, err
	}

	years := make([]domain.ProjectionYear, 0, in.Years)
	var last domain.ContributionResult
	for year := 1; year <= in.Years; year++ {
		res, err := CompoundInterestWithContributions(in.InitialInvestment, in.MonthlyContribution, in.Rate, float64(year))
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		years = append(years, domain.ProjectionYear{
			Year:               year,
			Balance:            res.FinalAmount,
			TotalContributions: res.TotalContributions,
			TotalInterest:      res.TotalInterest,
		})
		last = res
	}

	return domain.ProjectionResult{
		FinalAmount:        last.FinalAmount,
		TotalContributions: last.TotalContributions,
		TotalInterest:      last.TotalInterest,
		Years:              years,
	}, nil
}

// RetirementProjection grows current savings and monthly contributions with
// monthly compounding from the current age to the retirement age.
func RetirementProjection(in domain.RetirementInput) (domain.RetirementResult, error) {
	const op = "retirement projection"
	if err := check(op, in); err != nil {
		return domain.RetirementResult{}, err
	}

	months := (in.RetirementAge - in.CurrentAge) * 12
	rate := domain.RatePeriod{AnnualRatePercent: in.AnnualRatePercent, CompoundingPeriodsPerYear: 12}

	res, err := CompoundInterestWithContributions(in.CurrentSavings, in.MonthlyContribution, rate, float64(months)/12)
	if err != nil {
		return domain.RetirementResult{}, err
	}

	return domain.RetirementResult{
		MonthsToRetirement: months,
		FinalAmount:        res.FinalAmount,
		TotalContributions: res.TotalContributions,
		TotalInterest:      res.TotalInterest,
		MonthlyIncome:      res.FinalAmount * in.WithdrawalRatePercent / 100 / 12,
	}, nil
}
