package convert

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

func TestCanonicalCurrency(t *testing.T) {
	assert.Equal(t, "BTC", CanonicalCurrency("xbt"))
	assert.Equal(t, "BCH", CanonicalCurrency("BCC"))
	assert.Equal(t, "ETH", CanonicalCurrency("eth"))
}

func TestSplitSymbol(t *testing.T) {
	base, quote, err := SplitSymbol("BTC/USDT")
	assert.NoError(t, err)
	assert.Equal(t, "BTC", base)
	assert.Equal(t, "USDT", quote)

	_, _, err = SplitSymbol("BTCUSDT")
	assert.Error(t, err)
}

func TestSplitConcatenatedSymbol(t *testing.T) {
	base, quote, err := SplitConcatenatedSymbol("ETHBTC", []string{"USDT", "BTC", "ETH"})
	assert.NoError(t, err)
	assert.Equal(t, "ETH", base)
	assert.Equal(t, "BTC", quote)

	_, _, err = SplitConcatenatedSymbol("ETHXYZ", []string{"USDT", "BTC"})
	assert.Error(t, err)
}

func TestFillDerivedTicker(t *testing.T) {
	// raw record {opening_price:"100", closing_price:"110"} normalizes to
	// change=10, percentage=10
	ticker := &types.Ticker{
		Open: fixedpoint.MustNewFromString("100"),
		Last: fixedpoint.MustNewFromString("110"),
	}
	FillDerivedTicker(ticker)

	assert.Equal(t, "10", ticker.Change.String())
	assert.Equal(t, "10", ticker.Percentage.String())
	assert.Equal(t, "105", ticker.Average.String())
}

func TestFillDerivedTicker_KeepsSuppliedValues(t *testing.T) {
	ticker := &types.Ticker{
		Open:   fixedpoint.MustNewFromString("100"),
		Last:   fixedpoint.MustNewFromString("110"),
		Change: fixedpoint.MustNewFromString("9.5"), // exchange-supplied
	}
	FillDerivedTicker(ticker)
	assert.Equal(t, "9.5", ticker.Change.String())
}

func TestFillDerivedTicker_VWAP(t *testing.T) {
	ticker := &types.Ticker{
		Volume:      fixedpoint.MustNewFromString("4"),
		QuoteVolume: fixedpoint.MustNewFromString("420"),
	}
	FillDerivedTicker(ticker)
	assert.Equal(t, "105", ticker.VWAP.String())
}

func TestFillDerivedTicker_Idempotent(t *testing.T) {
	ticker := &types.Ticker{
		Open: fixedpoint.MustNewFromString("100"),
		Last: fixedpoint.MustNewFromString("110"),
	}
	FillDerivedTicker(ticker)
	once := *ticker
	FillDerivedTicker(ticker)
	assert.Equal(t, once, *ticker)
}

func TestParseDepth_Arrays(t *testing.T) {
	rows := []json.RawMessage{
		json.RawMessage(`["100.5", "2"]`),
		json.RawMessage(`[101, 3]`),
	}

	slice, err := ParseDepth(rows, nil)
	assert.NoError(t, err)
	assert.Len(t, slice, 2)
	assert.Equal(t, "100.5", slice[0].Price.String())
	assert.Equal(t, "3", slice[1].Volume.String())
}

func TestParseDepth_Objects(t *testing.T) {
	rows := []json.RawMessage{
		json.RawMessage(`{"price": "100.5", "size": "2"}`),
	}

	slice, err := ParseDepth(rows, &DepthFields{Price: "price", Volume: "size"})
	assert.NoError(t, err)
	assert.Len(t, slice, 1)
	assert.Equal(t, "2", slice[0].Volume.String())
}

func TestSortDepth_DuplicatePriceLastWins(t *testing.T) {
	// duplicate price levels collapse, last entry wins
	bids := types.PriceVolumeSlice{
		types.NewPriceVolume(fixedpoint.MustNewFromString("100.5"), fixedpoint.MustNewFromString("2")),
		types.NewPriceVolume(fixedpoint.MustNewFromString("100.5"), fixedpoint.MustNewFromString("1")),
	}

	out := SortDepth(bids, true)
	assert.Len(t, out, 1)
	assert.Equal(t, "1", out[0].Volume.String())
}

func TestBuildOrderBook(t *testing.T) {
	bids := []json.RawMessage{
		json.RawMessage(`["100.5","2"]`),
		json.RawMessage(`["100.6","1"]`),
	}
	asks := []json.RawMessage{
		json.RawMessage(`["101","3"]`),
		json.RawMessage(`["100.9","4"]`),
	}

	book, err := BuildOrderBook("BTC/USDT", bids, asks, nil)
	assert.NoError(t, err)

	// bids descending, asks ascending
	assert.Equal(t, "100.6", book.Bids[0].Price.String())
	assert.Equal(t, "100.9", book.Asks[0].Price.String())

	spread, ok := book.Spread()
	assert.True(t, ok)
	assert.Equal(t, "0.3", spread.String())
}

func TestParseSide(t *testing.T) {
	assert.Equal(t, types.SideTypeBuy, ParseSide("bid"))
	assert.Equal(t, types.SideTypeBuy, ParseSide("BUY"))
	assert.Equal(t, types.SideTypeSell, ParseSide("ask"))
	assert.Equal(t, types.SideTypeSell, ParseSide("2"))
	assert.Equal(t, types.SideTypeNone, ParseSide("whatever"))
}

func TestTakerSideFromBuyerMaker(t *testing.T) {
	assert.Equal(t, types.SideTypeSell, TakerSideFromBuyerMaker(true))
	assert.Equal(t, types.SideTypeBuy, TakerSideFromBuyerMaker(false))
}

func TestFillTradeDerivedFields(t *testing.T) {
	trade := &types.Trade{
		Price:    fixedpoint.MustNewFromString("100.5"),
		Quantity: fixedpoint.MustNewFromString("2"),
	}
	FillTradeDerivedFields(trade)
	assert.Equal(t, "201", trade.QuoteQuantity.String())

	// supplied cost is kept
	trade2 := &types.Trade{
		Price:         fixedpoint.MustNewFromString("100.5"),
		Quantity:      fixedpoint.MustNewFromString("2"),
		QuoteQuantity: fixedpoint.MustNewFromString("200.9"),
	}
	FillTradeDerivedFields(trade2)
	assert.Equal(t, "200.9", trade2.QuoteQuantity.String())
}

func TestStatusMapResolve(t *testing.T) {
	m := StatusMap{
		"NEW":    types.OrderStatusOpen,
		"FILLED": types.OrderStatusClosed,
	}

	assert.Equal(t, types.OrderStatusOpen, m.Resolve("NEW"))
	assert.Equal(t, types.OrderStatusClosed, m.Resolve("FILLED"))

	// lenient fallback: unknown native status passes through unchanged
	assert.Equal(t, types.OrderStatus("HALTED"), m.Resolve("HALTED"))
}

func TestParseCompositeOrderType(t *testing.T) {
	side, orderType, err := ParseCompositeOrderType("buy_limit")
	assert.NoError(t, err)
	assert.Equal(t, types.SideTypeBuy, side)
	assert.Equal(t, types.OrderTypeLimit, orderType)

	side, orderType, err = ParseCompositeOrderType("SELL_MARKET")
	assert.NoError(t, err)
	assert.Equal(t, types.SideTypeSell, side)
	assert.Equal(t, types.OrderTypeMarket, orderType)

	_, _, err = ParseCompositeOrderType("limit")
	assert.Error(t, err)
}

func TestFillOrderDerivedFields(t *testing.T) {
	order := &types.Order{
		SubmitOrder: types.SubmitOrder{
			Quantity: fixedpoint.MustNewFromString("2"),
			Price:    fixedpoint.MustNewFromString("100"),
		},
		ExecutedQuantity: fixedpoint.MustNewFromString("0.5"),
	}
	FillOrderDerivedFields(order)

	assert.Equal(t, "1.5", order.RemainingQuantity.String())
	assert.Equal(t, "50", order.QuoteQuantity.String())
	assert.Equal(t, "100", order.AveragePrice.String())
}

func TestFillOrderDerivedFields_NoOverwrite(t *testing.T) {
	order := &types.Order{
		SubmitOrder: types.SubmitOrder{
			Quantity: fixedpoint.MustNewFromString("2"),
		},
		ExecutedQuantity:  fixedpoint.MustNewFromString("0.5"),
		RemainingQuantity: fixedpoint.MustNewFromString("1.4"), // exchange-supplied
	}
	FillOrderDerivedFields(order)
	assert.Equal(t, "1.4", order.RemainingQuantity.String())
}

func TestDeriveBalance(t *testing.T) {
	// all three supplied and consistent
	b := DeriveBalance("btc",
		fixedpoint.MustNewFromString("0.5"),
		fixedpoint.MustNewFromString("0.25"),
		fixedpoint.MustNewFromString("0.75"))
	assert.Equal(t, "BTC", b.Currency)
	assert.Equal(t, "0.75", b.Total().String())

	// used missing, derived from total - free
	b = DeriveBalance("eth",
		fixedpoint.MustNewFromString("1"),
		fixedpoint.Zero,
		fixedpoint.MustNewFromString("1.5"))
	assert.Equal(t, "0.5", b.Locked.String())
	assert.Equal(t, "1.5", b.Total().String())

	// free missing, derived from total - used
	b = DeriveBalance("usdt",
		fixedpoint.Zero,
		fixedpoint.MustNewFromString("30"),
		fixedpoint.MustNewFromString("100"))
	assert.Equal(t, "70", b.Available.String())

	// only total supplied
	b = DeriveBalance("sol", fixedpoint.Zero, fixedpoint.Zero, fixedpoint.MustNewFromString("3"))
	assert.Equal(t, "3", b.Available.String())
	assert.True(t, b.Locked.IsZero())
}

func TestInferTransactionType(t *testing.T) {
	// amount -5 with no explicit type => withdrawal of 5
	txType, amount := InferTransactionType(fixedpoint.MustNewFromString("-5"))
	assert.Equal(t, types.TransactionTypeWithdrawal, txType)
	assert.Equal(t, "5", amount.String())

	txType, amount = InferTransactionType(fixedpoint.MustNewFromString("5"))
	assert.Equal(t, types.TransactionTypeDeposit, txType)
	assert.Equal(t, "5", amount.String())
}

func TestTransactionStatusMapResolve(t *testing.T) {
	m := TransactionStatusMap{
		"0": types.TransactionStatusPending,
		"1": types.TransactionStatusOK,
	}

	assert.Equal(t, types.TransactionStatusOK, m.Resolve("1", types.TransactionStatusPending))
	assert.Equal(t, types.TransactionStatusPending, m.Resolve("99", types.TransactionStatusPending))
}
