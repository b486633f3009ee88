package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
)

func TestInternalRateOfReturn_Converges(t *testing.T) {
	flows := domain.CashFlowSeries{-10000, 2000, 3000, 4000, 5000}

	res, err := InternalRateOfReturn(flows)
	require.NoError(t, err)

	assert.InDelta(t, 0.1283, res.IRR, 0.001)
	assert.Greater(t, res.Iterations, 0)
	assert.LessOrEqual(t, res.Iterations, DefaultIRRMaxIterations)

	npv, err := NPV(res.IRR, flows)
	require.NoError(t, err)
	assert.InDelta(t, 0, npv, 1e-3)
}

func TestInternalRateOfReturn_ExactGuess(t *testing.T) {
	res, err := InternalRateOfReturn(domain.CashFlowSeries{-100, 110})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, res.IRR, 1e-12)
	assert.Equal(t, 1, res.Iterations)
}

func TestInternalRateOfReturn_NegativeRate(t *testing.T) {
	res, err := InternalRateOfReturn(domain.CashFlowSeries{-1000, 300, 300, 300})
	require.NoError(t, err)
	assert.InDelta(t, -0.0509, res.IRR, 1e-3)
}

func TestInternalRateOfReturn_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		flows domain.CashFlowSeries
	}{
		{"no sign change", domain.CashFlowSeries{100, 100}},
		{"all negative", domain.CashFlowSeries{-100, -5, -5}},
		{"single flow", domain.CashFlowSeries{-100}},
		{"empty", nil},
		{"nan flow", domain.CashFlowSeries{-100, math.NaN(), 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InternalRateOfReturn(tt.flows)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.NotErrorIs(t, err, ErrConvergence)
		})
	}
}

func TestInternalRateOfReturn_InvalidOptions(t *testing.T) {
	flows := domain.CashFlowSeries{-100, 60, 60}

	_, err := InternalRateOfReturn(flows, WithGuess(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = InternalRateOfReturn(flows, WithTolerance(0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = InternalRateOfReturn(flows, WithMaxIterations(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInternalRateOfReturn_BudgetExhausted(t *testing.T) {
	_, err := InternalRateOfReturn(domain.CashFlowSeries{-10000, 2000, 3000, 4000, 5000}, WithMaxIterations(1))
	require.ErrorIs(t, err, ErrConvergence)

	var convErr *ConvergenceError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, 1, convErr.Iterations)
	assert.Equal(t, "iteration budget exhausted", convErr.Reason)
}

func TestInternalRateOfReturn_ZeroDerivative(t *testing.T) {
	// NPV'(0) = 2 - 2 = 0 for these flows.
	_, err := InternalRateOfReturn(domain.CashFlowSeries{1, -2, 1}, WithGuess(0))

	var convErr *ConvergenceError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "derivative vanished", convErr.Reason)
	assert.Equal(t, 1, convErr.Iterations)
}

func TestNPV(t *testing.T) {
	npv, err := NPV(0.10, domain.CashFlowSeries{-10000, 2000, 3000, 4000, 5000})
	require.NoError(t, err)
	assert.InDelta(t, 717.85, npv, 0.01)

	npv, err = NPV(0, domain.CashFlowSeries{-5, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, npv)

	_, err = NPV(-1, domain.CashFlowSeries{1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NPV(0.05, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
