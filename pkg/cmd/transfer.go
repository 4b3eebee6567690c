package cmd

import (
	"context"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uniex/uniex/pkg/types"
)

func init() {
	depositsCmd.Flags().String("asset", "", "filter by asset")
	withdrawalsCmd.Flags().String("asset", "", "filter by asset")
	RootCmd.AddCommand(depositsCmd)
	RootCmd.AddCommand(withdrawalsCmd)
}

// go run ./cmd/uniex deposits --exchange=binance --asset=BTC
var depositsCmd = &cobra.Command{
	Use:          "deposits --exchange EXCHANGE [--asset ASSET]",
	Short:        "Show the deposit history of the last 90 days",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransferHistory(cmd, types.TransactionTypeDeposit)
	},
}

// go run ./cmd/uniex withdrawals --exchange=max --asset=BTC
var withdrawalsCmd = &cobra.Command{
	Use:          "withdrawals --exchange EXCHANGE [--asset ASSET]",
	Short:        "Show the withdrawal history of the last 90 days",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransferHistory(cmd, types.TransactionTypeWithdrawal)
	},
}

func runTransferHistory(cmd *cobra.Command, txType types.TransactionType) error {
	ctx := context.Background()

	asset, err := cmd.Flags().GetString("asset")
	if err != nil {
		return err
	}

	ex, err := privateExchangeFromCmd(cmd)
	if err != nil {
		return err
	}

	transferService, ok := ex.(types.ExchangeTransferService)
	if !ok {
		return errNoTransferSupport(ex.Name())
	}

	until := time.Now()
	since := until.AddDate(0, 0, -90)

	var txns []types.Transaction
	if txType == types.TransactionTypeDeposit {
		txns, err = transferService.QueryDepositHistory(ctx, asset, since, until)
	} else {
		txns, err = transferService.QueryWithdrawHistory(ctx, asset, since, until)
	}
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"TIME", "ASSET", "AMOUNT", "STATUS", "TXID"})
	for _, tx := range txns {
		t.AppendRow(table.Row{
			tx.Time.Time().Format("2006-01-02 15:04:05"),
			tx.Asset,
			tx.Amount.String(),
			tx.Status,
			tx.TransactionID,
		})
	}
	t.Render()

	return nil
}

func errNoTransferSupport(name types.ExchangeName) error {
	return &types.RequestError{
		Kind:     types.ErrBadRequest,
		Exchange: name,
		Message:  "exchange does not support transfer history",
	}
}
