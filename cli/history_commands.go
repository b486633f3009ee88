package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/domain"
)

func newHistoryCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past calculations",
	}
	cmd.AddCommand(
		newHistoryListCommand(app),
		newHistoryShowCommand(app),
		newHistoryClearCommand(app),
	)
	return cmd
}

func newHistoryListCommand(app *App) *cobra.Command {
	var (
		kind  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.History.List(cmd.Context(), domain.CalculationKind(kind), limit)
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(records, func() {
				if len(records) == 0 {
					p.note("No calculations recorded.")
					return
				}
				rows := make([][]string, 0, len(records))
				for _, r := range records {
					rows = append(rows, []string{
						r.ID,
						string(r.Kind),
						r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					})
				}
				p.table("History", []string{"ID", "Kind", "Created"}, rows)
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only show this kind of calculation")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records (0 uses the configured limit, -1 shows all)")
	return cmd
}

func newHistoryShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the input and output of a calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := app.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := app.printer(cmd)
			return p.result(record, func() {
				p.fields("Calculation "+record.ID,
					field{"Kind", string(record.Kind)},
					field{"Created", record.CreatedAt.Local().Format("2006-01-02 15:04:05")},
					field{"Input", string(record.Input)},
					field{"Output", string(record.Output)},
				)
			})
		},
	}
}

func newHistoryClearCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.History.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}
