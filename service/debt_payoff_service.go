package service

import (
	"context"
	"fmt"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/engine"
	"fincalc/repository"
)

type DebtPayoffService struct {
	rec *recorder
}

func NewDebtPayoffService(repo repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *log.Logger,
) *DebtPayoffService {
	return &DebtPayoffService{rec: newRecorder(repo, cache, logger)}
}

// PlanPayoff builds the month-by-month plan for repaying the debts with the
// snowball or avalanche strategy, or compares both.
func (s *DebtPayoffService) PlanPayoff(ctx context.Context, in domain.PayoffInput) (domain.PayoffPlan, error) {
	if len(in.Debts) > MaxDebtsPerRequest {
		return domain.PayoffPlan{}, fmt.Errorf("%w: more than %d debts", ErrLimitExceeded, MaxDebtsPerRequest)
	}
	for _, d := range in.Debts {
		if d.Balance > MaxDebtAmount {
			return domain.PayoffPlan{}, fmt.Errorf("%w: debt %q exceeds the maximum of %.2f", ErrLimitExceeded, d.Name, MaxDebtAmount)
		}
		if d.AnnualRatePercent > MaxInterestRate {
			return domain.PayoffPlan{}, fmt.Errorf("%w: rate of debt %q exceeds the maximum of %.2f%%", ErrLimitExceeded, d.Name, MaxInterestRate)
		}
	}

	return calculate(ctx, s.rec, domain.KindPayoff, in, func() (domain.PayoffPlan, error) {
		plan, err := engine.DebtPayoff(in)
		if err != nil {
			return domain.PayoffPlan{}, err
		}
		return roundPlan(plan), nil
	})
}

func roundPlan(plan domain.PayoffPlan) domain.PayoffPlan {
	plan.TotalDebt = roundTo2Decimals(plan.TotalDebt)
	plan.TotalInterestPaid = roundTo2Decimals(plan.TotalInterestPaid)
	for i := range plan.Months {
		m := &plan.Months[i]
		m.TotalPaid = roundTo2Decimals(m.TotalPaid)
		for j := range m.Payments {
			m.Payments[j].Payment = roundTo2Decimals(m.Payments[j].Payment)
			m.Payments[j].RemainingBalance = roundTo2Decimals(m.Payments[j].RemainingBalance)
		}
	}
	if c := plan.Comparison; c != nil {
		c.Snowball.TotalInterestPaid = roundTo2Decimals(c.Snowball.TotalInterestPaid)
		c.Avalanche.TotalInterestPaid = roundTo2Decimals(c.Avalanche.TotalInterestPaid)
		c.InterestSaved = roundTo2Decimals(c.InterestSaved)
	}
	return plan
}
