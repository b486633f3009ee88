package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
	"fincalc/engine"
	"fincalc/repository"
)

func TestIRR(t *testing.T) {
	svc := NewCashFlowService(nil, nil, testLogger(), DefaultSolverSettings())

	res, err := svc.IRR(context.Background(), domain.IRRInput{
		CashFlows: domain.CashFlowSeries{-10000, 2000, 3000, 4000, 5000},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.1283, res.IRR, 0.001)
	assert.Positive(t, res.Iterations)
}

func TestIRR_NoSignChange(t *testing.T) {
	svc := NewCashFlowService(nil, nil, testLogger(), DefaultSolverSettings())

	_, err := svc.IRR(context.Background(), domain.IRRInput{CashFlows: domain.CashFlowSeries{100, 200}})
	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestIRR_BudgetExhausted(t *testing.T) {
	settings := DefaultSolverSettings()
	settings.MaxIterations = 1
	svc := NewCashFlowService(nil, nil, testLogger(), settings)

	_, err := svc.IRR(context.Background(), domain.IRRInput{
		CashFlows: domain.CashFlowSeries{-10000, 2000, 3000, 4000, 5000},
	})
	var conv *engine.ConvergenceError
	require.ErrorAs(t, err, &conv)
	assert.ErrorIs(t, err, engine.ErrConvergence)
}

func TestIRR_SolverSettingsArePartOfCacheKey(t *testing.T) {
	cache := repository.NewMockCache()
	flows := domain.IRRInput{CashFlows: domain.CashFlowSeries{-1000, 600, 600}}

	loose := DefaultSolverSettings()
	loose.Tolerance = 1e-2

	_, err := NewCashFlowService(nil, cache, testLogger(), DefaultSolverSettings()).IRR(context.Background(), flows)
	require.NoError(t, err)
	_, err = NewCashFlowService(nil, cache, testLogger(), loose).IRR(context.Background(), flows)
	require.NoError(t, err)

	assert.Len(t, cache.Data, 2)
	assert.Zero(t, cache.Hits)
}

func TestNPV(t *testing.T) {
	svc := NewCashFlowService(nil, nil, testLogger(), DefaultSolverSettings())

	res, err := svc.NPV(context.Background(), domain.NPVInput{
		RatePercent: 10,
		CashFlows:   domain.CashFlowSeries{-10000, 2000, 3000, 4000, 5000},
	})
	require.NoError(t, err)
	assert.Equal(t, 717.85, res.NPV)
}

func TestNPV_TooManyFlows(t *testing.T) {
	svc := NewCashFlowService(nil, nil, testLogger(), DefaultSolverSettings())

	_, err := svc.NPV(context.Background(), domain.NPVInput{CashFlows: make(domain.CashFlowSeries, MaxCashFlows+1)})
	assert.ErrorIs(t, err, ErrLimitExceeded)
}
