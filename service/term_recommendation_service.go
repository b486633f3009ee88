package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/engine"
	"fincalc/repository"
)

var ErrNoEligibleTerm = errors.New("no term satisfies the maximum monthly payment")

type TermRecommendationService struct {
	rec *recorder
}

func NewTermRecommendationService(repo repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *log.Logger,
) *TermRecommendationService {
	return &TermRecommendationService{rec: newRecorder(repo, cache, logger)}
}

// RecommendTerm evaluates every term in [MinTermMonths, MaxTermMonths] and
// ranks the affordable ones by the requested preference.
func (s *TermRecommendationService) RecommendTerm(
	ctx context.Context,
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {
	if err := validateTermInput(input); err != nil {
		return domain.TermRecommendationResult{}, err
	}

	return calculate(ctx, s.rec, domain.KindTerms, input, func() (domain.TermRecommendationResult, error) {
		return s.recommend(input)
	})
}

func (s *TermRecommendationService) recommend(input domain.TermRecommendationInput) (domain.TermRecommendationResult, error) {
	recommendations := []domain.TermRecommendation{}

	for term := input.MinTermMonths; term <= input.MaxTermMonths; term++ {
		result, err := engine.LoanPayment(domain.LoanTerms{
			Principal:         input.Principal,
			AnnualRatePercent: input.AnnualRatePercent,
			TermYears:         float64(term) / 12,
		})
		if err != nil {
			return domain.TermRecommendationResult{}, fmt.Errorf("term %d: %w", term, err)
		}

		if roundTo2Decimals(result.MonthlyPayment) > input.MaxMonthlyPayment {
			continue
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:     term,
			MonthlyPayment: roundTo2Decimals(result.MonthlyPayment),
			TotalInterest:  roundTo2Decimals(result.TotalInterest),
			Score:          calculateScore(result, input, term),
			Reason:         reasonFor(input.Preference),
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, ErrNoEligibleTerm
	}

	// Highest score first; ties go to the shorter term.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermMonths,
		Recommendations: recommendations,
	}, nil
}

func validateTermInput(input domain.TermRecommendationInput) error {
	if err := engine.Validate("term recommendation", input); err != nil {
		return err
	}
	if input.Principal > MaxPrincipal {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", ErrLimitExceeded, MaxPrincipal)
	}
	if input.AnnualRatePercent > MaxInterestRate {
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrLimitExceeded, MaxInterestRate)
	}
	if input.MaxTermMonths > MaxTermMonths {
		return fmt.Errorf("%w: maximum term exceeds %d months", ErrLimitExceeded, MaxTermMonths)
	}
	// Keep the range small enough to evaluate every term.
	if input.MaxTermMonths-input.MinTermMonths > MaxTermRangeMonths {
		return fmt.Errorf("%w: term range exceeds %d months", ErrLimitExceeded, MaxTermRangeMonths)
	}
	return nil
}

func calculateScore(result domain.LoanResult, input domain.TermRecommendationInput, term int) float64 {
	// Normalize each criterion to 0-10.
	maxPossibleInterest := input.Principal * (input.AnnualRatePercent / 100) * float64(input.MaxTermMonths) / 12
	minPossibleInterest := input.Principal * (input.AnnualRatePercent / 100) * float64(input.MinTermMonths) / 12

	interestRange := maxPossibleInterest - minPossibleInterest
	minPayment := input.Principal / float64(input.MaxTermMonths)
	paymentRange := input.MaxMonthlyPayment - minPayment

	var interestScore, paymentScore, termScore float64
	if interestRange > 0 {
		interestScore = 10.0 * (1.0 - (result.TotalInterest-minPossibleInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10.0 * (1.0 - (result.MonthlyPayment-minPayment)/paymentRange)
	}
	if span := input.MaxTermMonths - input.MinTermMonths; span > 0 {
		termScore = 10.0 * (1.0 - float64(term-input.MinTermMonths)/float64(span))
	}

	var score float64
	switch input.Preference {
	case domain.PreferMinimizeInterest:
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case domain.PreferMinimizePayment:
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case domain.PreferBalanced:
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return roundTo2Decimals(score)
}

func reasonFor(pref domain.TermPreference) string {
	switch pref {
	case domain.PreferMinimizeInterest:
		return "Term optimized to minimize total interest cost"
	case domain.PreferMinimizePayment:
		return "Term optimized to minimize the monthly payment"
	case domain.PreferBalanced:
		return "Best balance between monthly payment and total cost"
	}
	return "Recommendation based on the given parameters"
}
