package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uniex/uniex/pkg/exchange"
	"github.com/uniex/uniex/pkg/types"
)

// publicExchangeFromCmd builds an adapter for the public market-data
// surface from the --exchange flag.
func publicExchangeFromCmd(cmd *cobra.Command) (types.Exchange, error) {
	name, err := exchangeNameFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	return exchange.NewPublic(name)
}

// privateExchangeFromCmd builds a credentialed adapter; the key pair is
// read from {EXCHANGE}_API_KEY / {EXCHANGE}_API_SECRET.
func privateExchangeFromCmd(cmd *cobra.Command) (types.Exchange, error) {
	name, err := exchangeNameFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	return exchange.NewWithEnvVarPrefix(name, "")
}

func exchangeNameFromCmd(cmd *cobra.Command) (types.ExchangeName, error) {
	name, err := cmd.Flags().GetString("exchange")
	if err != nil {
		return "", err
	}

	return types.ValidExchangeName(name)
}
