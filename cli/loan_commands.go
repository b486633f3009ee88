package cli

import (
	"github.com/spf13/cobra"

	"fincalc/domain"
)

func bindLoanFlags(cmd *cobra.Command, terms *domain.LoanTerms) {
	cmd.Flags().Float64Var(&terms.Principal, "principal", 0, "amount borrowed")
	cmd.Flags().Float64Var(&terms.AnnualRatePercent, "rate", 0, "annual interest rate in percent")
	cmd.Flags().Float64Var(&terms.TermYears, "years", 0, "term in years")
}

func newLoanCommand(app *App) *cobra.Command {
	var terms domain.LoanTerms

	cmd := &cobra.Command{
		Use:     "loan",
		Short:   "Monthly payment of a fixed-rate loan",
		Example: "  fincalc loan --principal 200000 --rate 6.5 --years 30",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Loans.CalculateLoan(cmd.Context(), terms)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				p.fields("Loan",
					field{"Monthly payment", money(res.MonthlyPayment)},
					field{"Payments", integer(res.Months)},
					field{"Total paid", money(res.TotalPayment)},
					field{"Total interest", money(res.TotalInterest)},
				)
			})
		},
	}
	bindLoanFlags(cmd, &terms)
	return cmd
}

func newAmortizeCommand(app *App) *cobra.Command {
	var terms domain.LoanTerms

	cmd := &cobra.Command{
		Use:     "amortize",
		Short:   "Month-by-month amortization schedule",
		Example: "  fincalc amortize --principal 10000 --rate 5 --years 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Loans.Amortize(cmd.Context(), terms)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(rows, func() {
				table := make([][]string, 0, len(rows))
				for _, r := range rows {
					table = append(table, []string{
						integer(r.Period),
						money(r.Payment),
						money(r.PrincipalPortion),
						money(r.InterestPortion),
						money(r.RemainingBalance),
					})
				}
				p.table("Amortization schedule",
					[]string{"Month", "Payment", "Principal", "Interest", "Balance"}, table)
			})
		},
	}
	bindLoanFlags(cmd, &terms)
	return cmd
}

func newTermsCommand(app *App) *cobra.Command {
	var (
		in         domain.TermRecommendationInput
		preference string
	)

	cmd := &cobra.Command{
		Use:     "terms",
		Short:   "Compare loan terms and recommend one",
		Example: "  fincalc terms --principal 10000 --rate 12 --min-months 12 --max-months 24 --max-payment 600",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Preference = domain.TermPreference(preference)
			res, err := app.Terms.RecommendTerm(cmd.Context(), in)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				rows := make([][]string, 0, len(res.Recommendations))
				for _, r := range res.Recommendations {
					rows = append(rows, []string{
						integer(r.TermMonths),
						money(r.MonthlyPayment),
						money(r.TotalInterest),
						number(r.Score, 2),
					})
				}
				p.table("Recommended term: "+integer(res.RecommendedTerm)+" months",
					[]string{"Months", "Payment", "Interest", "Score"}, rows)
				p.note(res.Recommendations[0].Reason)
			})
		},
	}
	cmd.Flags().Float64Var(&in.Principal, "principal", 0, "amount borrowed")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", 0, "annual interest rate in percent")
	cmd.Flags().IntVar(&in.MinTermMonths, "min-months", 12, "shortest term to consider")
	cmd.Flags().IntVar(&in.MaxTermMonths, "max-months", 60, "longest term to consider")
	cmd.Flags().Float64Var(&in.MaxMonthlyPayment, "max-payment", 0, "highest acceptable monthly payment")
	cmd.Flags().StringVar(&preference, "preference", string(domain.PreferBalanced),
		"minimize_interest, minimize_payment or balanced")
	return cmd
}
