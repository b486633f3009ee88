package engine

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
)

func TestLoanPayment_Example(t *testing.T) {
	res, err := LoanPayment(domain.LoanTerms{Principal: 100000, AnnualRatePercent: 12, TermYears: 5})
	require.NoError(t, err)

	assert.Equal(t, 60, res.Months)
	assert.InDelta(t, 2224.44, res.MonthlyPayment, 0.01)
	assert.InDelta(t, 33466.4, res.TotalInterest, 0.5)
	assert.InDelta(t, res.MonthlyPayment*60, res.TotalPayment, 1e-9)
}

func TestLoanPayment_ZeroRate(t *testing.T) {
	terms := domain.LoanTerms{Principal: 12345.67, AnnualRatePercent: 0, TermYears: 5}

	res, err := LoanPayment(terms)
	require.NoError(t, err)

	assert.Equal(t, terms.Principal/(terms.TermYears*12), res.MonthlyPayment)
	assert.InDelta(t, 0, res.TotalInterest, 1e-9)
}

func TestLoanPayment_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		terms domain.LoanTerms
	}{
		{"zero principal", domain.LoanTerms{Principal: 0, AnnualRatePercent: 5, TermYears: 1}},
		{"negative rate", domain.LoanTerms{Principal: 1000, AnnualRatePercent: -1, TermYears: 1}},
		{"zero term", domain.LoanTerms{Principal: 1000, AnnualRatePercent: 5, TermYears: 0}},
		{"term under a month", domain.LoanTerms{Principal: 1000, AnnualRatePercent: 5, TermYears: 0.01}},
		{"nan principal", domain.LoanTerms{Principal: math.NaN(), AnnualRatePercent: 5, TermYears: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoanPayment(tt.terms)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAmortizationSchedule_ClosesExactly(t *testing.T) {
	terms := domain.LoanTerms{Principal: 250000, AnnualRatePercent: 6.75, TermYears: 30}

	rows, err := Schedule(terms)
	require.NoError(t, err)
	require.Len(t, rows, 360)

	last := rows[len(rows)-1]
	assert.Equal(t, 0.0, last.RemainingBalance)
	assert.Equal(t, 360, last.Period)

	var principal float64
	prev := terms.Principal
	for i, row := range rows {
		assert.Equal(t, i+1, row.Period)
		assert.InDelta(t, row.Payment, row.PrincipalPortion+row.InterestPortion, 1e-9)
		assert.Less(t, row.RemainingBalance, prev)
		prev = row.RemainingBalance
		principal += row.PrincipalPortion
	}
	assert.InDelta(t, terms.Principal, principal, 1e-6)
}

func TestAmortizationSchedule_InterestOnBalance(t *testing.T) {
	terms := domain.LoanTerms{Principal: 100000, AnnualRatePercent: 12, TermYears: 5}

	rows, err := Schedule(terms)
	require.NoError(t, err)

	assert.InDelta(t, 1000, rows[0].InterestPortion, 1e-9)
	assert.InDelta(t, rows[0].RemainingBalance*0.01, rows[1].InterestPortion, 1e-9)
}

func TestAmortizationSchedule_ZeroRate(t *testing.T) {
	rows, err := Schedule(domain.LoanTerms{Principal: 1200, AnnualRatePercent: 0, TermYears: 1})
	require.NoError(t, err)
	require.Len(t, rows, 12)

	for _, row := range rows {
		assert.Equal(t, 0.0, row.InterestPortion)
		assert.InDelta(t, 100, row.PrincipalPortion, 1e-9)
	}
	assert.Equal(t, 0.0, rows[11].RemainingBalance)
}

func TestAmortizationSchedule_Restartable(t *testing.T) {
	seq, err := AmortizationSchedule(domain.LoanTerms{Principal: 5000, AnnualRatePercent: 7, TermYears: 2})
	require.NoError(t, err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestAmortizationSchedule_InvalidInput(t *testing.T) {
	seq, err := AmortizationSchedule(domain.LoanTerms{Principal: -1, AnnualRatePercent: 5, TermYears: 1})
	assert.Nil(t, seq)

	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "amortization schedule", inputErr.Op)
	assert.Equal(t, "principal", inputErr.Field)
}
