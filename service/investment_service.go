package service

import (
	"context"
	"fmt"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/engine"
	"fincalc/repository"
)

// InvestmentService covers compound growth, contributions and long-range projections.
type InvestmentService struct {
	rec *recorder
}

func NewInvestmentService(repo repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *log.Logger,
) *InvestmentService {
	return &InvestmentService{rec: newRecorder(repo, cache, logger)}
}

func (s *InvestmentService) Compound(ctx context.Context, in domain.CompoundInput) (domain.CompoundResult, error) {
	if err := checkGrowthLimits(in.Principal, in.Rate, in.Years); err != nil {
		return domain.CompoundResult{}, err
	}

	return calculate(ctx, s.rec, domain.KindCompound, in, func() (domain.CompoundResult, error) {
		res, err := engine.CompoundInterest(in.Principal, in.Rate, in.Years)
		if err != nil {
			return domain.CompoundResult{}, err
		}
		return domain.CompoundResult{
			FinalAmount:   roundTo2Decimals(res.FinalAmount),
			TotalInterest: roundTo2Decimals(res.TotalInterest),
		}, nil
	})
}

func (s *InvestmentService) Contributions(ctx context.Context, in domain.ContributionInput) (domain.ContributionResult, error) {
	if err := checkGrowthLimits(in.InitialPrincipal, in.Rate, in.Years); err != nil {
		return domain.ContributionResult{}, err
	}

	return calculate(ctx, s.rec, domain.KindContributions, in, func() (domain.ContributionResult, error) {
		res, err := engine.CompoundInterestWithContributions(in.InitialPrincipal, in.MonthlyContribution, in.Rate, in.Years)
		if err != nil {
			return domain.ContributionResult{}, err
		}
		return domain.ContributionResult{
			FinalAmount:        roundTo2Decimals(res.FinalAmount),
			PrincipalValue:     roundTo2Decimals(res.PrincipalValue),
			ContributionsValue: roundTo2Decimals(res.ContributionsValue),
			TotalContributions: roundTo2Decimals(res.TotalContributions),
			TotalInterest:      roundTo2Decimals(res.TotalInterest),
		}, nil
	})
}

func (s *InvestmentService) Project(ctx context.Context, in domain.ProjectionInput) (domain.ProjectionResult, error) {
	if err := checkGrowthLimits(in.InitialInvestment, in.Rate, float64(in.Years)); err != nil {
		return domain.ProjectionResult{}, err
	}

	return calculate(ctx, s.rec, domain.KindInvestment, in, func() (domain.ProjectionResult, error) {
		res, err := engine.InvestmentProjection(in)
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		out := domain.ProjectionResult{
			FinalAmount:        roundTo2Decimals(res.FinalAmount),
			TotalContributions: roundTo2Decimals(res.TotalContributions),
			TotalInterest:      roundTo2Decimals(res.TotalInterest),
			Years:              make([]domain.ProjectionYear, len(res.Years)),
		}
		for i, y := range res.Years {
			out.Years[i] = domain.ProjectionYear{
				Year:               y.Year,
				Balance:            roundTo2Decimals(y.Balance),
				TotalContributions: roundTo2Decimals(y.TotalContributions),
				TotalInterest:      roundTo2Decimals(y.TotalInterest),
			}
		}
		return out, nil
	})
}

func (s *InvestmentService) Retirement(ctx context.Context, in domain.RetirementInput) (domain.RetirementResult, error) {
	rate := domain.RatePeriod{AnnualRatePercent: in.AnnualRatePercent, CompoundingPeriodsPerYear: 12}
	if err := checkGrowthLimits(in.CurrentSavings, rate, float64(in.RetirementAge-in.CurrentAge)); err != nil {
		return domain.RetirementResult{}, err
	}

	return calculate(ctx, s.rec, domain.KindRetirement, in, func() (domain.RetirementResult, error) {
		res, err := engine.RetirementProjection(in)
		if err != nil {
			return domain.RetirementResult{}, err
		}
		return domain.RetirementResult{
			MonthsToRetirement: res.MonthsToRetirement,
			FinalAmount:        roundTo2Decimals(res.FinalAmount),
			TotalContributions: roundTo2Decimals(res.TotalContributions),
			TotalInterest:      roundTo2Decimals(res.TotalInterest),
			MonthlyIncome:      roundTo2Decimals(res.MonthlyIncome),
		}, nil
	})
}

func checkGrowthLimits(principal float64, rate domain.RatePeriod, years float64) error {
	if principal > MaxPrincipal {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", ErrLimitExceeded, MaxPrincipal)
	}
	if rate.AnnualRatePercent > MaxInterestRate {
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrLimitExceeded, MaxInterestRate)
	}
	if years > MaxProjectionYears {
		return fmt.Errorf("%w: horizon exceeds the maximum of %d years", ErrLimitExceeded, MaxProjectionYears)
	}
	return nil
}
