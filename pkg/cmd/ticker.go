package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(tickerCmd)
}

// go run ./cmd/uniex ticker --exchange=binance BTC/USDT
var tickerCmd = &cobra.Command{
	Use:          "ticker --exchange EXCHANGE SYMBOL",
	Short:        "Show the 24h ticker of a symbol",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ex, err := publicExchangeFromCmd(cmd)
		if err != nil {
			return err
		}

		ticker, err := ex.QueryTicker(ctx, args[0])
		if err != nil {
			return err
		}

		log.Infof("%s", ticker.String())
		log.Infof("change: %s (%s%%) volume: %s quote volume: %s",
			ticker.Change.String(),
			ticker.Percentage.String(),
			ticker.Volume.String(),
			ticker.QuoteVolume.String())
		return nil
	},
}
