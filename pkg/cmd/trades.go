package cmd

import (
	"context"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uniex/uniex/pkg/types"
)

func init() {
	tradesCmd.Flags().Int("limit", 50, "number of trades")
	RootCmd.AddCommand(tradesCmd)
}

// go run ./cmd/uniex trades --exchange=binance BTC/USDT
var tradesCmd = &cobra.Command{
	Use:          "trades --exchange EXCHANGE SYMBOL",
	Short:        "Show the recent public trades of a symbol",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		ex, err := publicExchangeFromCmd(cmd)
		if err != nil {
			return err
		}

		trades, err := ex.QueryTrades(ctx, args[0], &types.TradeQueryOptions{
			Limit: limit,
		})
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "TIME", "SIDE", "PRICE", "QUANTITY", "QUOTE"})
		for _, trade := range trades {
			t.AppendRow(table.Row{
				trade.ID,
				trade.Time.Time().Format("2006-01-02 15:04:05"),
				trade.Side,
				trade.Price.String(),
				trade.Quantity.String(),
				trade.QuoteQuantity.String(),
			})
		}
		t.Render()

		return nil
	},
}
