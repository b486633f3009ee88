package engine

import (
	"iter"
	"slices"

	"fincalc/domain"
)

// LoanPayment computes the fixed monthly payment of an amortizing loan:
// M = P * r(1+r)^n / ((1+r)^n - 1), or P/n when the rate is zero.
func LoanPayment(terms domain.LoanTerms) (domain.LoanResult, error) {
	return loanPayment("loan payment", terms)
}

func loanPayment(op string, terms domain.LoanTerms) (domain.LoanResult, error) {
	if err := check(op, terms); err != nil {
		return domain.LoanResult{}, err
	}
	n := terms.Months()
	if n < 1 {
		return domain.LoanResult{}, invalid(op, "term_years", "must cover at least one month")
	}

	var payment float64
	if terms.AnnualRatePercent == 0 {
		payment = terms.Principal / float64(n)
	} else {
		r := monthlyRate(terms)
		g := growth(r, float64(n))
		payment = terms.Principal * r * g / (g - 1)
	}

	total := payment * float64(n)
	return domain.LoanResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - terms.Principal,
		Months:         n,
	}, nil
}

// AmortizationSchedule returns the month-by-month schedule of the loan.
// The sequence is lazy and can be ranged over any number of times; each
// pass recomputes from the original principal. The last row closes the
// loan: its remaining balance is exactly zero and its principal portion
// absorbs any accumulated rounding drift.
func AmortizationSchedule(terms domain.LoanTerms) (iter.Seq[domain.AmortizationRow], error) {
	loan, err := loanPayment("amortization schedule", terms)
	if err != nil {
		return nil, err
	}
	r := monthlyRate(terms)

	return func(yield func(domain.AmortizationRow) bool) {
		balance := terms.Principal
		for period := 1; period <= loan.Months; period++ {
			interest := balance * r
			payment := loan.MonthlyPayment
			principal := payment - interest

			if period == loan.Months {
				principal = balance
				payment = principal + interest
				balance = 0
			} else {
				balance -= principal
			}

			row := domain.AmortizationRow{
				Period:           period,
				Payment:          payment,
				PrincipalPortion: principal,
				InterestPortion:  interest,
				RemainingBalance: balance,
			}
			if !yield(row) {
				return
			}
		}
	}, nil
}

// Schedule materializes AmortizationSchedule.
func Schedule(terms domain.LoanTerms) ([]domain.AmortizationRow, error) {
	seq, err := AmortizationSchedule(terms)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

func monthlyRate(terms domain.LoanTerms) float64 {
	return terms.AnnualRatePercent / 100 / 12
}
