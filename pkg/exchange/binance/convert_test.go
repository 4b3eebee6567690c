package binance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniex/uniex/pkg/types"
)

func TestToGlobalMarket(t *testing.T) {
	var symbol Symbol
	err := json.Unmarshal([]byte(`{
		"symbol": "BTCUSDT",
		"status": "TRADING",
		"baseAsset": "BTC",
		"baseAssetPrecision": 8,
		"quoteAsset": "USDT",
		"quotePrecision": 8,
		"filters": [
			{"filterType": "PRICE_FILTER", "minPrice": "0.01", "maxPrice": "1000000.00", "tickSize": "0.01"},
			{"filterType": "LOT_SIZE", "minQty": "0.00001", "maxQty": "9000.0", "stepSize": "0.00001"},
			{"filterType": "NOTIONAL", "minNotional": "5.0"}
		]
	}`), &symbol)
	require.NoError(t, err)

	market, err := toGlobalMarket(symbol)
	require.NoError(t, err)

	assert.Equal(t, "BTC/USDT", market.Symbol)
	assert.Equal(t, "BTCUSDT", market.LocalSymbol)
	assert.Equal(t, "BTC", market.BaseCurrency)
	assert.Equal(t, "USDT", market.QuoteCurrency)
	assert.True(t, market.Active)
	assert.Equal(t, "0.01", market.TickSize.String())
	assert.Equal(t, 2, market.PricePrecision)
	assert.Equal(t, 5, market.VolumePrecision)
	assert.Equal(t, "5", market.MinNotional.String())
	assert.Equal(t, "0.00001", market.MinQuantity.String())
}

func TestToGlobalMarket_inactive(t *testing.T) {
	market, err := toGlobalMarket(Symbol{
		Symbol: "LUNAUSDT", Status: "BREAK", BaseAsset: "LUNA", QuoteAsset: "USDT",
	})
	require.NoError(t, err)
	assert.False(t, market.Active)
}

func TestToGlobalMarket_missingAssets(t *testing.T) {
	_, err := toGlobalMarket(Symbol{Symbol: "BROKEN"})
	assert.Error(t, err)
}

func TestToGlobalTicker(t *testing.T) {
	var stats PriceChangeStats
	err := json.Unmarshal([]byte(`{
		"symbol": "BTCUSDT",
		"openPrice": "100",
		"lastPrice": "110",
		"highPrice": "112",
		"lowPrice": "99",
		"bidPrice": "109.9",
		"askPrice": "110.1",
		"volume": "1000",
		"quoteVolume": "105000",
		"closeTime": 1700000000000
	}`), &stats)
	require.NoError(t, err)

	ticker := toGlobalTicker(stats)

	assert.Equal(t, "10", ticker.Change.String())
	assert.Equal(t, "10", ticker.Percentage.String())
	assert.Equal(t, "105", ticker.Average.String())
	assert.Equal(t, "105", ticker.VWAP.String())
	assert.Equal(t, int64(1700000000000), ticker.Time.UnixMilli())
}

func TestToGlobalPublicTrade(t *testing.T) {
	var raw PublicTrade
	err := json.Unmarshal([]byte(`{
		"id": 28457,
		"price": "4.00000100",
		"qty": "12.00000000",
		"quoteQty": "48.000012",
		"time": 1499865549590,
		"isBuyerMaker": true
	}`), &raw)
	require.NoError(t, err)

	trade := toGlobalPublicTrade(raw, "ETH/BTC")

	assert.Equal(t, "28457", trade.ID)
	assert.Equal(t, "ETH/BTC", trade.Symbol)
	// buyer is the maker, so the taker sold
	assert.Equal(t, types.SideTypeSell, trade.Side)
	assert.Equal(t, types.LiquidityTaker, trade.Liquidity)
	assert.Equal(t, "48.000012", trade.QuoteQuantity.String())
}

func TestToGlobalOrder(t *testing.T) {
	var raw RawOrder
	err := json.Unmarshal([]byte(`{
		"symbol": "BTCUSDT",
		"orderId": 28,
		"clientOrderId": "my-order-1",
		"price": "100.0",
		"origQty": "10.0",
		"executedQty": "4.0",
		"cummulativeQuoteQty": "400.0",
		"status": "PARTIALLY_FILLED",
		"timeInForce": "GTC",
		"type": "LIMIT",
		"side": "BUY",
		"time": 1499827319559,
		"updateTime": 1499827319559,
		"isWorking": true
	}`), &raw)
	require.NoError(t, err)

	order := toGlobalOrder(raw, "BTC/USDT")

	assert.Equal(t, "28", order.OrderID)
	assert.Equal(t, "my-order-1", order.ClientOrderID)
	assert.Equal(t, types.OrderStatusOpen, order.Status)
	assert.Equal(t, "PARTIALLY_FILLED", order.OriginalStatus)
	assert.Equal(t, types.SideTypeBuy, order.Side)
	assert.Equal(t, types.OrderTypeLimit, order.Type)
	assert.Equal(t, "6", order.RemainingQuantity.String())
	assert.Equal(t, "100", order.AveragePrice.String())
	assert.False(t, order.CreationTime.Time().IsZero())
}

func TestToGlobalOrder_unknownStatusPassesThrough(t *testing.T) {
	order := toGlobalOrder(RawOrder{Status: "HALTED_BY_VENUE"}, "BTC/USDT")
	assert.Equal(t, types.OrderStatus("HALTED_BY_VENUE"), order.Status)
	assert.Equal(t, "HALTED_BY_VENUE", order.OriginalStatus)
}

func TestToLocalOrderType(t *testing.T) {
	s, err := toLocalOrderType(types.OrderTypeLimit, false)
	require.NoError(t, err)
	assert.Equal(t, "LIMIT", s)

	s, err = toLocalOrderType(types.OrderTypeLimit, true)
	require.NoError(t, err)
	assert.Equal(t, "LIMIT_MAKER", s)

	s, err = toLocalOrderType(types.OrderTypeStopLimit, false)
	require.NoError(t, err)
	assert.Equal(t, "STOP_LOSS_LIMIT", s)

	_, err = toLocalOrderType(types.OrderType("TRAILING"), false)
	assert.Error(t, err)
}

func TestToGlobalBalances(t *testing.T) {
	var account Account
	err := json.Unmarshal([]byte(`{
		"balances": [
			{"asset": "BTC", "free": "1.5", "locked": "0.5"},
			{"asset": "DUST", "free": "0", "locked": "0"}
		]
	}`), &account)
	require.NoError(t, err)

	balances := toGlobalBalances(account)

	require.True(t, balances.Has("BTC"))
	assert.Equal(t, "1.5", balances["BTC"].Available.String())
	assert.Equal(t, "0.5", balances["BTC"].Locked.String())
	assert.Equal(t, "2", balances["BTC"].Total().String())
	assert.False(t, balances.Has("DUST"))
}

func TestToGlobalDeposit(t *testing.T) {
	var raw RawDeposit
	err := json.Unmarshal([]byte(`{
		"amount": "0.00999800",
		"coin": "PAXG",
		"network": "ETH",
		"status": 1,
		"address": "0x788cabe9236ce061e5a892e1a59395a81fc8d62c",
		"txId": "0xaad4654a3234aa6118af9b4b335f5ae81c360b2394721c019b5d1e75328b09f3",
		"insertTime": 1599621997000
	}`), &raw)
	require.NoError(t, err)

	tx := toGlobalDeposit(raw)

	assert.Equal(t, types.TransactionTypeDeposit, tx.Type)
	assert.Equal(t, types.TransactionStatusOK, tx.Status)
	assert.Equal(t, "1", tx.OriginalStatus)
	assert.Equal(t, "PAXG", tx.Asset)
	assert.Equal(t, "0.009998", tx.Amount.String())
}

func TestToGlobalWithdraw(t *testing.T) {
	var raw RawWithdraw
	err := json.Unmarshal([]byte(`{
		"id": "b6ae22b3aa844210a7041aee7589627c",
		"amount": "8.91000000",
		"transactionFee": "0.004",
		"coin": "USDT",
		"status": 6,
		"address": "0x94df8b352de7f46f64b01d3666bf6e936e44ce60",
		"txId": "0xb5ef8c13b968a406cc62a93a8bd80f9e9a906ef1b3fcf20a2e48573c17659268",
		"applyTime": "2019-10-12 11:12:02",
		"network": "ETH"
	}`), &raw)
	require.NoError(t, err)

	tx := toGlobalWithdraw(raw)

	assert.Equal(t, types.TransactionTypeWithdrawal, tx.Type)
	assert.Equal(t, types.TransactionStatusOK, tx.Status)
	assert.Equal(t, "0.004", tx.Fee.String())
	assert.Equal(t, "USDT", tx.FeeCurrency)
	assert.Equal(t, "2019-10-12 11:12:02", tx.Time.Time().Format("2006-01-02 15:04:05"))
}

func TestWithdrawStatusMap(t *testing.T) {
	assert.Equal(t, types.TransactionStatusPending, toGlobalWithdraw(RawWithdraw{Status: 2}).Status)
	assert.Equal(t, types.TransactionStatusCanceled, toGlobalWithdraw(RawWithdraw{Status: 1}).Status)
	assert.Equal(t, types.TransactionStatusFailed, toGlobalWithdraw(RawWithdraw{Status: 3}).Status)
	// unknown codes fall back to pending
	assert.Equal(t, types.TransactionStatusPending, toGlobalWithdraw(RawWithdraw{Status: 99}).Status)
}

func TestToGlobalCurrency(t *testing.T) {
	var coin CoinInfo
	err := json.Unmarshal([]byte(`{
		"coin": "BTC",
		"name": "Bitcoin",
		"depositAllEnable": true,
		"withdrawAllEnable": true,
		"networkList": [
			{"network": "BSC", "isDefault": false, "withdrawFee": "0.0000051"},
			{"network": "BTC", "isDefault": true, "withdrawFee": "0.0002", "withdrawMin": "0.001", "withdrawIntegerMultiple": "0.00000001"}
		]
	}`), &coin)
	require.NoError(t, err)

	currency := toGlobalCurrency(coin)

	assert.Equal(t, "BTC", currency.Code)
	assert.True(t, currency.Active)
	assert.Equal(t, "0.0002", currency.Fee.String())
	assert.Equal(t, "0.001", currency.MinWithdrawAmount.String())
	assert.Equal(t, 8, currency.Precision)
}

func TestToGlobalKLine(t *testing.T) {
	var row []json.RawMessage
	err := json.Unmarshal([]byte(`[
		1499040000000,
		"0.01634790",
		"0.80000000",
		"0.01575800",
		"0.01577100",
		"148976.11427815",
		1499644799999,
		"2434.19055334",
		308, "1756.87402397", "28.46694368", "0"
	]`), &row)
	require.NoError(t, err)

	k, err := toGlobalKLine("ETH/BTC", types.Interval1d, row)
	require.NoError(t, err)

	assert.Equal(t, "ETH/BTC", k.Symbol)
	assert.Equal(t, types.Interval1d, k.Interval)
	assert.Equal(t, "0.0163479", k.Open.String())
	assert.Equal(t, "0.015771", k.Close.String())
	assert.Equal(t, "2434.19055334", k.QuoteVolume.String())
	assert.Equal(t, int64(1499040000000), k.StartTime.Time().UnixMilli())
	assert.True(t, k.Closed)
}

func TestToGlobalKLine_shortRow(t *testing.T) {
	_, err := toGlobalKLine("ETH/BTC", types.Interval1d, []json.RawMessage{json.RawMessage(`1`)})
	assert.Error(t, err)
}
