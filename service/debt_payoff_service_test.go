package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
	"fincalc/repository"
)

func debts() []domain.Debt {
	return []domain.Debt{
		{Name: "card", Balance: 2000, AnnualRatePercent: 24, MinimumPayment: 100},
		{Name: "car", Balance: 1000, AnnualRatePercent: 0, MinimumPayment: 100},
	}
}

func TestPlanPayoff_Compare(t *testing.T) {
	repo := &MockHistoryRepository{}
	svc := NewDebtPayoffService(repo, repository.NewMockCache(), testLogger())

	plan, err := svc.PlanPayoff(context.Background(), domain.PayoffInput{
		Debts:         debts(),
		MonthlyBudget: 400,
		Strategy:      domain.StrategyCompare,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyAvalanche, plan.Strategy)
	assert.Equal(t, 168.43, plan.TotalInterestPaid)
	assert.Equal(t, 8, plan.MonthsToPayoff)
	require.NotNil(t, plan.Comparison)
	assert.Equal(t, 232.69, plan.Comparison.Snowball.TotalInterestPaid)
	assert.Equal(t, 64.27, plan.Comparison.InterestSaved)

	last := plan.Months[len(plan.Months)-1]
	assert.Equal(t, 368.43, last.TotalPaid)

	require.Len(t, repo.Records, 1)
	assert.Equal(t, domain.KindPayoff, repo.Records[0].Kind)
}

func TestPlanPayoff_Limits(t *testing.T) {
	svc := NewDebtPayoffService(nil, nil, testLogger())

	many := make([]domain.Debt, MaxDebtsPerRequest+1)
	_, err := svc.PlanPayoff(context.Background(), domain.PayoffInput{Debts: many, MonthlyBudget: 1, Strategy: domain.StrategySnowball})
	assert.ErrorIs(t, err, ErrLimitExceeded)

	big := debts()
	big[0].Balance = 2 * MaxDebtAmount
	_, err = svc.PlanPayoff(context.Background(), domain.PayoffInput{Debts: big, MonthlyBudget: 1e9, Strategy: domain.StrategySnowball})
	assert.ErrorIs(t, err, ErrLimitExceeded)
}
