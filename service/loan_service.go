package service

import (
	"context"
	"fmt"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/engine"
	"fincalc/repository"
)

type LoanService struct {
	rec *recorder
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *log.Logger,
) *LoanService {
	return &LoanService{rec: newRecorder(repo, cache, logger)}
}

// CalculateLoan calculates the fixed monthly payment of the loan.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	terms domain.LoanTerms,
) (domain.LoanResult, error) {
	if err := checkLoanLimits(terms); err != nil {
		return domain.LoanResult{}, err
	}

	return calculate(ctx, s.rec, domain.KindLoan, terms, func() (domain.LoanResult, error) {
		res, err := engine.LoanPayment(terms)
		if err != nil {
			return domain.LoanResult{}, err
		}
		return domain.LoanResult{
			MonthlyPayment: roundTo2Decimals(res.MonthlyPayment),
			TotalPayment:   roundTo2Decimals(res.TotalPayment),
			TotalInterest:  roundTo2Decimals(res.TotalInterest),
			Months:         res.Months,
		}, nil
	})
}

// Amortize returns the full payment schedule, amounts rounded to cents.
func (s *LoanService) Amortize(
	ctx context.Context,
	terms domain.LoanTerms,
) ([]domain.AmortizationRow, error) {
	if err := checkLoanLimits(terms); err != nil {
		return nil, err
	}

	return calculate(ctx, s.rec, domain.KindAmortization, terms, func() ([]domain.AmortizationRow, error) {
		schedule, err := engine.Schedule(terms)
		if err != nil {
			return nil, err
		}
		rows := make([]domain.AmortizationRow, 0, len(schedule))
		for _, row := range schedule {
			rows = append(rows, domain.AmortizationRow{
				Period:           row.Period,
				Payment:          roundTo2Decimals(row.Payment),
				PrincipalPortion: roundTo2Decimals(row.PrincipalPortion),
				InterestPortion:  roundTo2Decimals(row.InterestPortion),
				RemainingBalance: roundTo2Decimals(row.RemainingBalance),
			})
		}
		return rows, nil
	})
}

func checkLoanLimits(terms domain.LoanTerms) error {
	if terms.Principal > MaxPrincipal {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", ErrLimitExceeded, MaxPrincipal)
	}
	if terms.AnnualRatePercent > MaxInterestRate {
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrLimitExceeded, MaxInterestRate)
	}
	if terms.TermYears > MaxTermYears {
		return fmt.Errorf("%w: term exceeds the maximum of %.0f years", ErrLimitExceeded, MaxTermYears)
	}
	return nil
}
