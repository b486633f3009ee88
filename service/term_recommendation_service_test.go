package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
	"fincalc/engine"
)

func termInput(pref domain.TermPreference) domain.TermRecommendationInput {
	return domain.TermRecommendationInput{
		Principal:         10000,
		AnnualRatePercent: 12,
		MinTermMonths:     12,
		MaxTermMonths:     24,
		MaxMonthlyPayment: 600,
		Preference:        pref,
	}
}

func TestRecommendTerm(t *testing.T) {
	tests := []struct {
		pref domain.TermPreference
		want int
	}{
		{domain.PreferMinimizeInterest, 19},
		{domain.PreferMinimizePayment, 24},
		{domain.PreferBalanced, 24},
	}

	for _, tt := range tests {
		t.Run(string(tt.pref), func(t *testing.T) {
			svc := NewTermRecommendationService(nil, nil, testLogger())

			res, err := svc.RecommendTerm(context.Background(), termInput(tt.pref))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.RecommendedTerm)
			// Terms 12-18 cost more than 600 a month.
			assert.Len(t, res.Recommendations, 6)
			for _, rec := range res.Recommendations {
				assert.LessOrEqual(t, rec.MonthlyPayment, 600.0)
			}
		})
	}
}

func TestRecommendTerm_SortedByScore(t *testing.T) {
	svc := NewTermRecommendationService(nil, nil, testLogger())

	res, err := svc.RecommendTerm(context.Background(), termInput(domain.PreferMinimizeInterest))
	require.NoError(t, err)
	for i := 1; i < len(res.Recommendations); i++ {
		assert.GreaterOrEqual(t, res.Recommendations[i-1].Score, res.Recommendations[i].Score)
	}
	assert.Equal(t, 580.52, res.Recommendations[0].MonthlyPayment)
}

func TestRecommendTerm_NaNBudgetNamesField(t *testing.T) {
	svc := NewTermRecommendationService(nil, nil, testLogger())
	in := termInput(domain.PreferBalanced)
	in.MaxMonthlyPayment = math.NaN()

	res, err := svc.RecommendTerm(context.Background(), in)
	var inputErr *engine.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "max_monthly_payment", inputErr.Field)
	assert.Empty(t, res.Recommendations)
}

func TestRecommendTerm_NoEligibleTerm(t *testing.T) {
	svc := NewTermRecommendationService(nil, nil, testLogger())
	in := termInput(domain.PreferBalanced)
	in.MaxMonthlyPayment = 100

	_, err := svc.RecommendTerm(context.Background(), in)
	assert.ErrorIs(t, err, ErrNoEligibleTerm)
}

func TestRecommendTerm_Validation(t *testing.T) {
	svc := NewTermRecommendationService(nil, nil, testLogger())

	tests := []struct {
		name   string
		modify func(*domain.TermRecommendationInput)
		want   error
	}{
		{"min above max", func(in *domain.TermRecommendationInput) { in.MinTermMonths = 30 }, engine.ErrInvalidInput},
		{"unknown preference", func(in *domain.TermRecommendationInput) { in.Preference = "cheapest" }, engine.ErrInvalidInput},
		{"range too wide", func(in *domain.TermRecommendationInput) { in.MinTermMonths = 1; in.MaxTermMonths = 200 }, ErrLimitExceeded},
		{"term too long", func(in *domain.TermRecommendationInput) { in.MinTermMonths = 550; in.MaxTermMonths = 601 }, ErrLimitExceeded},
		{"NaN max payment", func(in *domain.TermRecommendationInput) { in.MaxMonthlyPayment = math.NaN() }, engine.ErrInvalidInput},
		{"infinite max payment", func(in *domain.TermRecommendationInput) { in.MaxMonthlyPayment = math.Inf(1) }, engine.ErrInvalidInput},
		{"negative infinite rate", func(in *domain.TermRecommendationInput) { in.AnnualRatePercent = math.Inf(-1) }, engine.ErrInvalidInput},
		{"NaN principal", func(in *domain.TermRecommendationInput) { in.Principal = math.NaN() }, engine.ErrInvalidInput},
		{"infinite principal", func(in *domain.TermRecommendationInput) { in.Principal = math.Inf(1) }, engine.ErrInvalidInput},
		{"zero min term", func(in *domain.TermRecommendationInput) { in.MinTermMonths = 0 }, engine.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := termInput(domain.PreferBalanced)
			tt.modify(&in)
			_, err := svc.RecommendTerm(context.Background(), in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
