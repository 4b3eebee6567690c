package cmd

import (
	"context"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	orderbookCmd.Flags().Int("limit", 20, "depth limit hint")
	RootCmd.AddCommand(orderbookCmd)
}

// go run ./cmd/uniex orderbook --exchange=max BTC/USDT
var orderbookCmd = &cobra.Command{
	Use:          "orderbook --exchange EXCHANGE SYMBOL",
	Short:        "Show an order book snapshot",
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

		book, err := ex.QueryOrderBook(ctx, args[0], limit)
		if err != nil {
			return err
		}

		if spread, ok := book.Spread(); ok {
			log.Infof("%s spread: %s", book.Symbol, spread.String())
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"BID VOLUME", "BID", "ASK", "ASK VOLUME"})

		rows := len(book.Bids)
		if len(book.Asks) > rows {
			rows = len(book.Asks)
		}
		for i := 0; i < rows; i++ {
			row := table.Row{"", "", "", ""}
			if i < len(book.Bids) {
				row[0] = book.Bids[i].Volume.String()
				row[1] = book.Bids[i].Price.String()
			}
			if i < len(book.Asks) {
				row[2] = book.Asks[i].Price.String()
				row[3] = book.Asks[i].Volume.String()
			}
			t.AppendRow(row)
		}
		t.Render()

		return nil
	},
}
