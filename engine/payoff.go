package engine

import (
	"fmt"
	"sort"

	"fincalc/domain"
)

const (
	// MaxPayoffMonths bounds the repayment simulation (50 years).
	MaxPayoffMonths = 600

	// balanceTolerance treats sub-cent remainders as repaid.
	balanceTolerance = 0.005
)

// DebtPayoff simulates paying off debts with a fixed monthly budget.
//
// Every month each open debt accrues interest at its monthly rate and
// receives its minimum payment; whatever is left of the budget goes to the
// open debts in strategy order. With StrategyCompare both strategies are
// simulated and the one with less interest is returned, together with a
// comparison of the two.
func DebtPayoff(in domain.PayoffInput) (domain.PayoffPlan, error) {
	const op = "debt payoff"
	if err := check(op, in); err != nil {
		return domain.PayoffPlan{}, err
	}

	var minimums float64
	for i, d := range in.Debts {
		if interest := d.Balance * d.AnnualRatePercent / 100 / 12; d.MinimumPayment < interest {
			return domain.PayoffPlan{}, invalid(op, fmt.Sprintf("debts[%d].minimum_payment", i),
				fmt.Sprintf("must cover the monthly interest of %.2f", interest))
		}
		minimums += d.MinimumPayment
	}
	if minimums > in.MonthlyBudget {
		return domain.PayoffPlan{}, invalid(op, "monthly_budget",
			fmt.Sprintf("must cover the minimum payments of %.2f", minimums))
	}

	if in.Strategy != domain.StrategyCompare {
		return simulatePayoff(op, in.Debts, in.MonthlyBudget, in.Strategy)
	}

	snowball, err := simulatePayoff(op, in.Debts, in.MonthlyBudget, domain.StrategySnowball)
	if err != nil {
		return domain.PayoffPlan{}, err
	}
	avalanche, err := simulatePayoff(op, in.Debts, in.MonthlyBudget, domain.StrategyAvalanche)
	if err != nil {
		return domain.PayoffPlan{}, err
	}

	best := snowball
	if avalanche.TotalInterestPaid < snowball.TotalInterestPaid {
		best = avalanche
	}
	best.Comparison = &domain.PayoffComparison{
		Snowball:      domain.StrategySummary{TotalInterestPaid: snowball.TotalInterestPaid, MonthsToPayoff: snowball.MonthsToPayoff},
		Avalanche:     domain.StrategySummary{TotalInterestPaid: avalanche.TotalInterestPaid, MonthsToPayoff: avalanche.MonthsToPayoff},
		InterestSaved: max(0, snowball.TotalInterestPaid-avalanche.TotalInterestPaid),
		MonthsSaved:   snowball.MonthsToPayoff - avalanche.MonthsToPayoff,
	}
	return best, nil
}

func simulatePayoff(op string, debts []domain.Debt, budget float64, strategy domain.PayoffStrategy) (domain.PayoffPlan, error) {
	ordered := make([]domain.Debt, len(debts))
	copy(ordered, debts)
	if strategy == domain.StrategySnowball {
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Balance < ordered[j].Balance })
	} else {
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].AnnualRatePercent > ordered[j].AnnualRatePercent })
	}

	plan := domain.PayoffPlan{Strategy: strategy}
	balances := make([]float64, len(ordered))
	for i, d := range ordered {
		balances[i] = d.Balance
		plan.TotalDebt += d.Balance
	}

	for month := 1; month <= MaxPayoffMonths; month++ {
		available := budget
		paid := make([]float64, len(ordered))

		for i, d := range ordered {
			if balances[i] == 0 {
				continue
			}
			interest := balances[i] * d.AnnualRatePercent / 100 / 12
			plan.TotalInterestPaid += interest
			balances[i] += interest
		}

		for i, d := range ordered {
			if balances[i] == 0 {
				continue
			}
			pay := min(d.MinimumPayment, balances[i], available)
			balances[i] -= pay
			paid[i] += pay
			available -= pay
		}

		// The rest of the budget rolls down the strategy order.
		for i := range ordered {
			if available <= 0 {
				break
			}
			if balances[i] == 0 {
				continue
			}
			extra := min(available, balances[i])
			balances[i] -= extra
			paid[i] += extra
			available -= extra
		}

		row := domain.PayoffMonth{Month: month, TotalPaid: budget - available}
		done := true
		for i, d := range ordered {
			if balances[i] <= balanceTolerance {
				balances[i] = 0
			} else {
				done = false
			}
			if paid[i] > 0 {
				row.Payments = append(row.Payments, domain.DebtPayment{
					DebtName:         d.Name,
					Payment:          paid[i],
					RemainingBalance: balances[i],
				})
			}
		}
		plan.Months = append(plan.Months, row)

		if done {
			plan.MonthsToPayoff = month
			return plan, nil
		}
	}

	return domain.PayoffPlan{}, &ConvergenceError{
		Op:         op,
		Iterations: MaxPayoffMonths,
		Reason:     "debts not repaid within the month limit",
	}
}
