package max

import (
	"encoding/json"

	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

// Raw REST payload shapes of the v2 API. Identifiers are lower-cased on
// the wire ("btcusdt", "bid").

type Market struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	BaseUnit           string           `json:"base_unit"`
	BaseUnitPrecision  int              `json:"base_unit_precision"`
	QuoteUnit          string           `json:"quote_unit"`
	QuoteUnitPrecision int              `json:"quote_unit_precision"`
	MinBaseAmount      fixedpoint.Value `json:"min_base_amount"`
	MinQuoteAmount     fixedpoint.Value `json:"min_quote_amount"`
}

type Ticker struct {
	At   types.MillisecondTimestamp `json:"at"`
	Buy  fixedpoint.Value           `json:"buy"`
	Sell fixedpoint.Value           `json:"sell"`
	Open fixedpoint.Value           `json:"open"`
	Low  fixedpoint.Value           `json:"low"`
	High fixedpoint.Value           `json:"high"`
	Last fixedpoint.Value           `json:"last"`
	Vol  fixedpoint.Value           `json:"vol"`
}

type Depth struct {
	Timestamp    types.MillisecondTimestamp `json:"timestamp"`
	LastUpdateID int64                      `json:"last_update_id"`
	Asks         []json.RawMessage          `json:"asks"`
	Bids         []json.RawMessage          `json:"bids"`
}

type Trade struct {
	ID            int64                      `json:"id"`
	Price         fixedpoint.Value           `json:"price"`
	Volume        fixedpoint.Value           `json:"volume"`
	Funds         fixedpoint.Value           `json:"funds"`
	Market        string                     `json:"market"`
	CreatedAtInMS types.MillisecondTimestamp `json:"created_at_in_ms"`
	Side          string                     `json:"side"`
}

type Account struct {
	Currency string           `json:"currency"`
	Balance  fixedpoint.Value `json:"balance"`
	Locked   fixedpoint.Value `json:"locked"`
	Type     string           `json:"type"`
}

type Order struct {
	ID              int64                      `json:"id"`
	ClientOID       string                     `json:"client_oid"`
	Side            string                     `json:"side"`
	OrdType         string                     `json:"ord_type"`
	Price           fixedpoint.Value           `json:"price"`
	StopPrice       fixedpoint.Value           `json:"stop_price"`
	AvgPrice        fixedpoint.Value           `json:"avg_price"`
	State           string                     `json:"state"`
	Market          string                     `json:"market"`
	Volume          fixedpoint.Value           `json:"volume"`
	RemainingVolume fixedpoint.Value           `json:"remaining_volume"`
	ExecutedVolume  fixedpoint.Value           `json:"executed_volume"`
	CreatedAtInMS   types.MillisecondTimestamp `json:"created_at_in_ms"`
}

type Deposit struct {
	UUID      string                     `json:"uuid"`
	Currency  string                     `json:"currency"`
	Amount    fixedpoint.Value           `json:"amount"`
	Fee       fixedpoint.Value           `json:"fee"`
	TxID      string                     `json:"txid"`
	State     string                     `json:"state"`
	ToAddress string                     `json:"to_address"`
	CreatedAt types.MillisecondTimestamp `json:"created_at"`
}

type Withdraw struct {
	UUID        string                     `json:"uuid"`
	Currency    string                     `json:"currency"`
	Amount      fixedpoint.Value           `json:"amount"`
	Fee         fixedpoint.Value           `json:"fee"`
	FeeCurrency string                     `json:"fee_currency"`
	TxID        string                     `json:"txid"`
	State       string                     `json:"state"`
	CreatedAt   types.MillisecondTimestamp `json:"created_at"`
}

type DepositAddress struct {
	UUID       string `json:"uuid"`
	Currency   string `json:"currency"`
	Address    string `json:"address"`
	ExtraLabel string `json:"extra_label"`
}

type WithdrawAddress struct {
	UUID       string `json:"uuid"`
	Currency   string `json:"currency"`
	Address    string `json:"address"`
	ExtraLabel string `json:"extra_label"`
}

type Currency struct {
	ID        string `json:"id"`
	Precision int    `json:"precision"`
}
