package cmd

import (
	"context"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(balancesCmd)
}

// go run ./cmd/uniex balances --exchange=max
var balancesCmd = &cobra.Command{
	Use:          "balances --exchange EXCHANGE",
	Short:        "Show the non-zero account balances",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := privateExchangeFromCmd(cmd)
		if err != nil {
			return err
		}

		balances, err := ex.QueryAccountBalances(ctx)
		if err != nil {
			return err
		}

		currencies := make([]string, 0, len(balances))
		for currency := range balances {
			currencies = append(currencies, currency)
		}
		sort.Strings(currencies)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"CURRENCY", "AVAILABLE", "LOCKED", "TOTAL"})
		for _, currency := range currencies {
			b := balances[currency]
			t.AppendRow(table.Row{
				b.Currency,
				b.Available.String(),
				b.Locked.String(),
				b.Total().String(),
			})
		}
		t.Render()

		return nil
	},
}
