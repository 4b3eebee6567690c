package binance

import (
	"encoding/json"

	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

// Raw REST payload shapes. Numeric fields arrive as strings and stay
// decimal through fixedpoint.

type ExchangeInfo struct {
	Timezone   string   `json:"timezone"`
	ServerTime int64    `json:"serverTime"`
	Symbols    []Symbol `json:"symbols"`
}

type Symbol struct {
	Symbol              string            `json:"symbol"`
	Status              string            `json:"status"`
	BaseAsset           string            `json:"baseAsset"`
	BaseAssetPrecision  int               `json:"baseAssetPrecision"`
	QuoteAsset          string            `json:"quoteAsset"`
	QuotePrecision      int               `json:"quotePrecision"`
	QuoteAssetPrecision int               `json:"quoteAssetPrecision"`
	Filters             []json.RawMessage `json:"filters"`
}

type SymbolFilter struct {
	FilterType string `json:"filterType"`

	// PRICE_FILTER
	MinPrice fixedpoint.Value `json:"minPrice"`
	MaxPrice fixedpoint.Value `json:"maxPrice"`
	TickSize fixedpoint.Value `json:"tickSize"`

	// LOT_SIZE
	MinQuantity fixedpoint.Value `json:"minQty"`
	MaxQuantity fixedpoint.Value `json:"maxQty"`
	StepSize    fixedpoint.Value `json:"stepSize"`

	// MIN_NOTIONAL / NOTIONAL
	MinNotional fixedpoint.Value `json:"minNotional"`
}

type PriceChangeStats struct {
	Symbol             string                     `json:"symbol"`
	PriceChange        fixedpoint.Value           `json:"priceChange"`
	PriceChangePercent fixedpoint.Value           `json:"priceChangePercent"`
	WeightedAvgPrice   fixedpoint.Value           `json:"weightedAvgPrice"`
	PrevClosePrice     fixedpoint.Value           `json:"prevClosePrice"`
	LastPrice          fixedpoint.Value           `json:"lastPrice"`
	BidPrice           fixedpoint.Value           `json:"bidPrice"`
	BidQty             fixedpoint.Value           `json:"bidQty"`
	AskPrice           fixedpoint.Value           `json:"askPrice"`
	AskQty             fixedpoint.Value           `json:"askQty"`
	OpenPrice          fixedpoint.Value           `json:"openPrice"`
	HighPrice          fixedpoint.Value           `json:"highPrice"`
	LowPrice           fixedpoint.Value           `json:"lowPrice"`
	Volume             fixedpoint.Value           `json:"volume"`
	QuoteVolume        fixedpoint.Value           `json:"quoteVolume"`
	OpenTime           types.MillisecondTimestamp `json:"openTime"`
	CloseTime          types.MillisecondTimestamp `json:"closeTime"`
}

type Depth struct {
	LastUpdateID int64             `json:"lastUpdateId"`
	Bids         []json.RawMessage `json:"bids"`
	Asks         []json.RawMessage `json:"asks"`
}

type PublicTrade struct {
	ID           int64                      `json:"id"`
	Price        fixedpoint.Value           `json:"price"`
	Quantity     fixedpoint.Value           `json:"qty"`
	QuoteQty     fixedpoint.Value           `json:"quoteQty"`
	Time         types.MillisecondTimestamp `json:"time"`
	IsBuyerMaker bool                       `json:"isBuyerMaker"`
}

type AccountBalance struct {
	Asset  string           `json:"asset"`
	Free   fixedpoint.Value `json:"free"`
	Locked fixedpoint.Value `json:"locked"`
}

type Account struct {
	Balances []AccountBalance `json:"balances"`
}

type RawOrder struct {
	Symbol              string                     `json:"symbol"`
	OrderID             int64                      `json:"orderId"`
	ClientOrderID       string                     `json:"clientOrderId"`
	Price               fixedpoint.Value           `json:"price"`
	OrigQty             fixedpoint.Value           `json:"origQty"`
	ExecutedQty         fixedpoint.Value           `json:"executedQty"`
	CummulativeQuoteQty fixedpoint.Value           `json:"cummulativeQuoteQty"`
	Status              string                     `json:"status"`
	TimeInForce         string                     `json:"timeInForce"`
	Type                string                     `json:"type"`
	Side                string                     `json:"side"`
	StopPrice           fixedpoint.Value           `json:"stopPrice"`
	Time                types.MillisecondTimestamp `json:"time"`
	UpdateTime          types.MillisecondTimestamp `json:"updateTime"`
	TransactTime        types.MillisecondTimestamp `json:"transactTime"`
	IsWorking           bool                       `json:"isWorking"`
}

type RawDeposit struct {
	Amount     fixedpoint.Value           `json:"amount"`
	Coin       string                     `json:"coin"`
	Network    string                     `json:"network"`
	Status     int                        `json:"status"`
	Address    string                     `json:"address"`
	AddressTag string                     `json:"addressTag"`
	TxID       string                     `json:"txId"`
	InsertTime types.MillisecondTimestamp `json:"insertTime"`
}

type RawWithdraw struct {
	ID             string           `json:"id"`
	Amount         fixedpoint.Value `json:"amount"`
	TransactionFee fixedpoint.Value `json:"transactionFee"`
	Coin           string           `json:"coin"`
	Network        string           `json:"network"`
	Status         int              `json:"status"`
	Address        string           `json:"address"`
	TxID           string           `json:"txId"`
	ApplyTime      string           `json:"applyTime"` // "2018-10-04 17:00:00"
}

type RawDepositAddress struct {
	Address string `json:"address"`
	Coin    string `json:"coin"`
	Tag     string `json:"tag"`
	URL     string `json:"url"`
}

type CoinInfo struct {
	Coin              string            `json:"coin"`
	Name              string            `json:"name"`
	DepositAllEnable  bool              `json:"depositAllEnable"`
	WithdrawAllEnable bool              `json:"withdrawAllEnable"`
	NetworkList       []CoinNetworkInfo `json:"networkList"`
}

type CoinNetworkInfo struct {
	Network                 string           `json:"network"`
	IsDefault               bool             `json:"isDefault"`
	WithdrawFee             fixedpoint.Value `json:"withdrawFee"`
	WithdrawMin             fixedpoint.Value `json:"withdrawMin"`
	WithdrawMax             fixedpoint.Value `json:"withdrawMax"`
	WithdrawEnable          bool             `json:"withdrawEnable"`
	DepositEnable           bool             `json:"depositEnable"`
	WithdrawIntegerMultiple string           `json:"withdrawIntegerMultiple"`
}
