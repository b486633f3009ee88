package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/domain"
)

func newOptionCommand(app *App) *cobra.Command {
	var (
		params     domain.OptionParameters
		optionType string
	)

	cmd := &cobra.Command{
		Use:     "option",
		Short:   "Black-Scholes price and Greeks of a European option",
		Example: "  fincalc option --spot 100 --strike 100 --years 1 --rate 5 --volatility 20 --type put",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params.OptionType = domain.OptionType(optionType)
			res, err := app.Options.Price(cmd.Context(), params)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				p.fields("Black-Scholes ("+string(res.Price.OptionType)+")",
					field{"Price", number(res.Price.SelectedPrice, 4)},
					field{"Call price", number(res.Price.CallPrice, 4)},
					field{"Put price", number(res.Price.PutPrice, 4)},
					field{"d1", number(res.Price.D1, 6)},
					field{"d2", number(res.Price.D2, 6)},
					field{"Delta", number(res.Greeks.Delta, 6)},
					field{"Gamma", number(res.Greeks.Gamma, 6)},
					field{"Vega (per vol point)", number(res.Greeks.Vega, 6)},
					field{"Theta (per day)", number(res.Greeks.Theta, 6)},
					field{"Rho (per rate point)", number(res.Greeks.Rho, 6)},
				)
			})
		},
	}
	cmd.Flags().Float64Var(&params.SpotPrice, "spot", 0, "price of the underlying")
	cmd.Flags().Float64Var(&params.StrikePrice, "strike", 0, "strike price")
	cmd.Flags().Float64Var(&params.TimeToMaturityYears, "years", 0, "time to maturity in years")
	cmd.Flags().Float64Var(&params.RiskFreeRatePercent, "rate", 0, "risk-free rate in percent")
	cmd.Flags().Float64Var(&params.VolatilityPercent, "volatility", 0, "annual volatility in percent")
	cmd.Flags().StringVar(&optionType, "type", string(domain.OptionCall), "call or put")
	return cmd
}

func newVaRCommand(app *App) *cobra.Command {
	var params domain.VaRParameters

	cmd := &cobra.Command{
		Use:     "var",
		Short:   "Parametric Value-at-Risk",
		Example: "  fincalc var --value 1000000 --confidence 99 --volatility 2 --horizon 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Risk.ValueAtRisk(cmd.Context(), params)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				p.fields("Value at Risk",
					field{"VaR", money(res.VaRAmount)},
					field{"z-score", number(res.ZScore, 3)},
				)
				if res.ConfidenceFallback {
					p.note(fmt.Sprintf("%v%% is not a tabulated confidence level; the 95%% z-score was used.",
						params.ConfidenceLevelPercent))
				}
			})
		},
	}
	cmd.Flags().Float64Var(&params.PortfolioValue, "value", 0, "portfolio value")
	cmd.Flags().Float64Var(&params.ConfidenceLevelPercent, "confidence", 95, "confidence level: 90, 95 or 99")
	cmd.Flags().Float64Var(&params.HorizonPeriods, "horizon", 1, "holding period in volatility periods")
	cmd.Flags().Float64Var(&params.VolatilityPercent, "volatility", 0, "volatility per period in percent")
	return cmd
}

func newIRRCommand(app *App) *cobra.Command {
	var flows []float64

	cmd := &cobra.Command{
		Use:     "irr",
		Short:   "Internal rate of return of a cash-flow series",
		Example: "  fincalc irr --flows=-10000,2000,3000,4000,5000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.CashFlows.IRR(cmd.Context(), domain.IRRInput{CashFlows: flows})
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				p.fields("Internal rate of return",
					field{"IRR", percent(res.IRR)},
					field{"Iterations", integer(res.Iterations)},
				)
			})
		},
	}
	cmd.Flags().Float64SliceVar(&flows, "flows", nil, "cash flows for periods 0..N, comma separated")
	return cmd
}

func newNPVCommand(app *App) *cobra.Command {
	var in domain.NPVInput

	cmd := &cobra.Command{
		Use:     "npv",
		Short:   "Net present value of a cash-flow series",
		Example: "  fincalc npv --rate 10 --flows=-10000,2000,3000,4000,5000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.CashFlows.NPV(cmd.Context(), in)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(res, func() {
				p.fields("Net present value", field{"NPV", money(res.NPV)})
			})
		},
	}
	cmd.Flags().Float64Var(&in.RatePercent, "rate", 0, "discount rate per period in percent")
	cmd.Flags().Float64SliceVar((*[]float64)(&in.CashFlows), "flows", nil, "cash flows for periods 0..N, comma separated")
	return cmd
}
