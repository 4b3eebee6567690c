package cmd

import (
	"context"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/uniex/uniex/pkg/types"
	"github.com/uniex/uniex/pkg/util/backoff"
)

func init() {
	RootCmd.AddCommand(marketsCmd)
}

// go run ./cmd/uniex markets --exchange=binance
var marketsCmd = &cobra.Command{
	Use:          "markets",
	Short:        "Show the tradable markets of an exchange",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := publicExchangeFromCmd(cmd)
		if err != nil {
			return err
		}

		// the adapters never retry; transient availability errors are
		// retried here instead
		var markets types.MarketMap
		err = backoff.RetryGeneral(ctx, func() error {
			markets, err = ex.QueryMarkets(ctx)
			if err != nil && !errors.Is(err, types.ErrExchangeNotAvailable) {
				return backoff.Permanent(err)
			}
			return err
		})
		if err != nil {
			return err
		}

		symbols := make([]string, 0, len(markets))
		for symbol := range markets {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"SYMBOL", "LOCAL", "BASE", "QUOTE", "ACTIVE", "MIN QTY", "MIN NOTIONAL"})
		for _, symbol := range symbols {
			m := markets[symbol]
			t.AppendRow(table.Row{
				m.Symbol, m.LocalSymbol, m.BaseCurrency, m.QuoteCurrency,
				m.Active, m.MinQuantity.String(), m.MinNotional.String(),
			})
		}
		t.Render()

		return nil
	},
}
