package cli

import (
	"github.com/spf13/cobra"

	"fincalc/domain"
	"fincalc/engine"
)

func bindRateFlags(cmd *cobra.Command, rate *domain.RatePeriod) {
	cmd.Flags().Float64Var(&rate.AnnualRatePercent, "rate", 0, "annual interest rate in percent")
	cmd.Flags().IntVar(&rate.CompoundingPeriodsPerYear, "periods", 12, "compounding periods per year")
}

func newCompoundCommand(app *App) *cobra.Command {
	var in domain.CompoundInput

	cmd := &cobra.Command{
		Use:     "compound",
		Short:   "Compound interest on a lump sum",
		Example: "  fincalc compound --principal 1000 --rate 5 --years 10 --periods 1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Investments.Compound(cmd.Context(), in)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				p.fields("Compound interest",
					field{"Final amount", money(res.FinalAmount)},
					field{"Interest earned", money(res.TotalInterest)},
				)
			})
		},
	}
	cmd.Flags().Float64Var(&in.Principal, "principal", 0, "initial amount")
	cmd.Flags().Float64Var(&in.Years, "years", 0, "investment horizon in years")
	bindRateFlags(cmd, &in.Rate)
	return cmd
}

func newContributionsCommand(app *App) *cobra.Command {
	var in domain.ContributionInput

	cmd := &cobra.Command{
		Use:     "contributions",
		Short:   "Compound interest with monthly contributions",
		Example: "  fincalc contributions --initial 5000 --monthly 200 --rate 7 --years 20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Investments.Contributions(cmd.Context(), in)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				p.fields("Compound interest with contributions",
					field{"Final amount", money(res.FinalAmount)},
					field{"From initial amount", money(res.PrincipalValue)},
					field{"From contributions", money(res.ContributionsValue)},
					field{"Total contributed", money(res.TotalContributions)},
					field{"Interest earned", money(res.TotalInterest)},
				)
			})
		},
	}
	cmd.Flags().Float64Var(&in.InitialPrincipal, "initial", 0, "initial amount")
	cmd.Flags().Float64Var(&in.MonthlyContribution, "monthly", 0, "monthly contribution")
	cmd.Flags().Float64Var(&in.Years, "years", 0, "investment horizon in years")
	bindRateFlags(cmd, &in.Rate)
	return cmd
}

func newInvestCommand(app *App) *cobra.Command {
	var in domain.ProjectionInput

	cmd := &cobra.Command{
		Use:     "invest",
		Short:   "Year-by-year investment projection",
		Example: "  fincalc invest --initial 10000 --monthly 500 --rate 7 --years 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Investments.Project(cmd.Context(), in)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				rows := make([][]string, 0, len(res.Years))
				for _, y := range res.Years {
					rows = append(rows, []string{
						integer(y.Year),
						money(y.Balance),
						money(y.TotalContributions),
						money(y.TotalInterest),
					})
				}
				p.table("Investment projection",
					[]string{"Year", "Balance", "Contributed", "Interest"}, rows)
			})
		},
	}
	cmd.Flags().Float64Var(&in.InitialInvestment, "initial", 0, "initial amount")
	cmd.Flags().Float64Var(&in.MonthlyContribution, "monthly", 0, "monthly contribution")
	cmd.Flags().IntVar(&in.Years, "years", 0, "number of whole years")
	bindRateFlags(cmd, &in.Rate)
	return cmd
}

func newRetireCommand(app *App) *cobra.Command {
	var in domain.RetirementInput

	cmd := &cobra.Command{
		Use:     "retire",
		Short:   "Retirement fund and implied monthly income",
		Example: "  fincalc retire --age 35 --retire-at 65 --savings 50000 --monthly 800 --rate 6",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Investments.Retirement(cmd.Context(), in)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				p.fields("Retirement projection",
					field{"Months to retirement", integer(res.MonthsToRetirement)},
					field{"Fund at retirement", money(res.FinalAmount)},
					field{"Total contributed", money(res.TotalContributions)},
					field{"Interest earned", money(res.TotalInterest)},
					field{"Monthly income", money(res.MonthlyIncome)},
				)
			})
		},
	}
	cmd.Flags().IntVar(&in.CurrentAge, "age", 0, "current age")
	cmd.Flags().IntVar(&in.RetirementAge, "retire-at", 65, "retirement age")
	cmd.Flags().Float64Var(&in.CurrentSavings, "savings", 0, "current savings")
	cmd.Flags().Float64Var(&in.MonthlyContribution, "monthly", 0, "monthly contribution")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", 0, "expected annual return in percent")
	cmd.Flags().Float64Var(&in.WithdrawalRatePercent, "withdrawal", engine.DefaultWithdrawalRatePercent, "annual withdrawal rate in percent")
	return cmd
}
