package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fincalc/domain"
)

func newPayoffCommand(app *App) *cobra.Command {
	var (
		debtArgs []string
		budget   float64
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Plan the repayment of several debts",
		Long: `Plan the repayment of several debts with a fixed monthly budget.

Each debt is given as name:balance:rate:minimum, the rate in percent.
The snowball strategy pays the smallest balance first, avalanche the
highest rate first; compare runs both.`,
		Example: "  fincalc payoff --debt card:2000:24:100 --debt car:1000:0:100 --budget 400 --strategy compare",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			debts := make([]domain.Debt, 0, len(debtArgs))
			for _, s := range debtArgs {
				d, err := parseDebt(s)
				if err != nil {
					return usageError{err}
				}
				debts = append(debts, d)
			}

			plan, err := app.Payoff.PlanPayoff(cmd.Context(), domain.PayoffInput{
				Debts:         debts,
				MonthlyBudget: budget,
				Strategy:      domain.PayoffStrategy(strategy),
			})
			if err != nil {
				return err
			}

			p := app.printer(cmd)
			return p.result(plan, func() {
				p.fields("Debt payoff ("+string(plan.Strategy)+")",
					field{"Total debt", money(plan.TotalDebt)},
					field{"Interest paid", money(plan.TotalInterestPaid)},
					field{"Months to payoff", integer(plan.MonthsToPayoff)},
				)
				if c := plan.Comparison; c != nil {
					p.table("Strategies", []string{"Strategy", "Interest", "Months"}, [][]string{
						{string(domain.StrategySnowball), money(c.Snowball.TotalInterestPaid), integer(c.Snowball.MonthsToPayoff)},
						{string(domain.StrategyAvalanche), money(c.Avalanche.TotalInterestPaid), integer(c.Avalanche.MonthsToPayoff)},
					})
				}

				rows := make([][]string, 0, len(plan.Months))
				for _, m := range plan.Months {
					for _, pay := range m.Payments {
						rows = append(rows, []string{integer(m.Month), pay.DebtName, money(pay.Payment), money(pay.RemainingBalance)})
					}
				}
				p.table("Monthly plan", []string{"Month", "Debt", "Payment", "Balance"}, rows)
			})
		},
	}
	cmd.Flags().StringArrayVar(&debtArgs, "debt", nil, "debt as name:balance:rate:minimum (repeatable)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "amount available for debt payments each month")
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.StrategyCompare), "snowball, avalanche or compare")
	return cmd
}

// parseDebt reads "name:balance:rate:minimum".
func parseDebt(s string) (domain.Debt, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return domain.Debt{}, fmt.Errorf("debt %q: want name:balance:rate:minimum", s)
	}

	var values [3]float64
	for i, raw := range parts[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return domain.Debt{}, fmt.Errorf("debt %q: %q is not a number", s, raw)
		}
		values[i] = v
	}

	return domain.Debt{
		Name:              strings.TrimSpace(parts[0]),
		Balance:           values[0],
		AnnualRatePercent: values[1],
		MinimumPayment:    values[2],
	}, nil
}
