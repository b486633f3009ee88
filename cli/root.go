package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X fincalc/cli.Version=...".
var Version = "dev"

// NewRootCommand builds the command tree. Backends are opened lazily by app
// before any calculation command runs.
func NewRootCommand(app *App) *cobra.Command {
	var (
		cfgFile string
		output  string
	)

	root := &cobra.Command{
		Use:   "fincalc",
		Short: "Financial calculation engine",
		Long: `fincalc computes compound interest, loan payments and amortization,
debt payoff plans, investment and retirement projections, Black-Scholes
option prices, parametric Value-at-Risk and internal rates of return.

Rates and volatilities are entered in percent (5 means 5%).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Open(cmd.Context(), cfgFile, cmd.ErrOrStderr()); err != nil {
				return err
			}
			if output != "" {
				app.Config.Output.Format = output
			}
			switch app.Config.Output.Format {
			case formatText, formatJSON, formatYAML:
				return nil
			default:
				return usageError{fmt.Errorf("unknown output format %q", app.Config.Output.Format)}
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fincalc.toml)")
	root.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(
		newCompoundCommand(app),
		newContributionsCommand(app),
		newLoanCommand(app),
		newAmortizeCommand(app),
		newTermsCommand(app),
		newPayoffCommand(app),
		newInvestCommand(app),
		newRetireCommand(app),
		newOptionCommand(app),
		newVaRCommand(app),
		newIRRCommand(app),
		newNPVCommand(app),
		newHistoryCommand(app),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := &App{}
	defer app.Close()

	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return ExitCode(err)
}

func (a *App) printer(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout(), format: a.Config.Output.Format}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Needs no configuration or backends.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fincalc %s\n", Version)
		},
	}
}
