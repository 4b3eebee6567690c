package max

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/uniex/uniex/pkg/exchange/convert"
	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"

	maxapi "github.com/uniex/uniex/pkg/exchange/max/maxapi"
)

var orderStatusMap = convert.StatusMap{
	"wait":       types.OrderStatusOpen,
	"convert":    types.OrderStatusOpen,
	"finalizing": types.OrderStatusOpen,
	"done":       types.OrderStatusClosed,
	"cancel":     types.OrderStatusCanceled,
	"failed":     types.OrderStatusRejected,
}

var depositStatusMap = convert.TransactionStatusMap{
	"submitting": types.TransactionStatusPending,
	"submitted":  types.TransactionStatusPending,
	"checking":   types.TransactionStatusPending,
	"accepted":   types.TransactionStatusOK,
	"done":       types.TransactionStatusOK,
	"rejected":   types.TransactionStatusFailed,
	"refunded":   types.TransactionStatusFailed,
	"suspect":    types.TransactionStatusFailed,
	"canceled":   types.TransactionStatusCanceled,
}

var withdrawStatusMap = convert.TransactionStatusMap{
	"submitting": types.TransactionStatusPending,
	"submitted":  types.TransactionStatusPending,
	"pending":    types.TransactionStatusPending,
	"processing": types.TransactionStatusPending,
	"approved":   types.TransactionStatusPending,
	"sent":       types.TransactionStatusPending,
	"confirmed":  types.TransactionStatusOK,
	"done":       types.TransactionStatusOK,
	"canceled":   types.TransactionStatusCanceled,
	"failed":     types.TransactionStatusFailed,
	"rejected":   types.TransactionStatusFailed,
}

func toGlobalMarket(m maxapi.Market) (types.Market, error) {
	if m.BaseUnit == "" || m.QuoteUnit == "" {
		return types.Market{}, errors.Errorf("market %s carries no base/quote units", m.ID)
	}

	base := strings.ToUpper(m.BaseUnit)
	quote := strings.ToUpper(m.QuoteUnit)

	return types.Market{
		Symbol:             convert.JoinSymbol(base, quote),
		LocalSymbol:        m.ID,
		BaseCurrency:       convert.CanonicalCurrency(base),
		QuoteCurrency:      convert.CanonicalCurrency(quote),
		LocalBaseCurrency:  m.BaseUnit,
		LocalQuoteCurrency: m.QuoteUnit,

		// the endpoint only lists tradable markets
		Active: true,

		PricePrecision:  m.QuoteUnitPrecision,
		VolumePrecision: m.BaseUnitPrecision,
		MinQuantity:     m.MinBaseAmount,
		MinNotional:     m.MinQuoteAmount,
	}, nil
}

func toGlobalTicker(t maxapi.Ticker, symbol string) *types.Ticker {
	ticker := &types.Ticker{
		Symbol: symbol,
		Time:   t.At.Time(),
		High:   t.High,
		Low:    t.Low,
		Bid:    t.Buy,
		Ask:    t.Sell,
		Open:   t.Open,
		Last:   t.Last,
		Volume: t.Vol,
	}

	convert.FillDerivedTicker(ticker)
	return ticker
}

func toGlobalTrade(t maxapi.Trade, symbol string) types.Trade {
	trade := types.Trade{
		ID:            strconv.FormatInt(t.ID, 10),
		Exchange:      types.ExchangeMax,
		Symbol:        symbol,
		Price:         t.Price,
		Quantity:      t.Volume,
		QuoteQuantity: t.Funds,
		Side:          convert.ParseSide(t.Side),
		Liquidity:     types.LiquidityTaker,
		Time:          types.Time(t.CreatedAtInMS.Time()),
	}

	convert.FillTradeDerivedFields(&trade)
	return trade
}

func toGlobalOrder(o maxapi.Order, symbol string) types.Order {
	side, orderType, postOnly := parseOrdType(o.Side, o.OrdType)

	order := types.Order{
		SubmitOrder: types.SubmitOrder{
			ClientOrderID: o.ClientOID,
			Symbol:        symbol,
			Side:          side,
			Type:          orderType,
			Quantity:      o.Volume,
			Price:         o.Price,
			StopPrice:     o.StopPrice,
			PostOnly:      postOnly,
		},
		Exchange:          types.ExchangeMax,
		OrderID:           strconv.FormatInt(o.ID, 10),
		Status:            orderStatusMap.Resolve(o.State),
		OriginalStatus:    o.State,
		ExecutedQuantity:  o.ExecutedVolume,
		RemainingQuantity: o.RemainingVolume,
		AveragePrice:      o.AvgPrice,
		CreationTime:      types.Time(o.CreatedAtInMS.Time()),
		IsWorking:         o.State == "wait",
	}

	convert.FillOrderDerivedFields(&order)
	return order
}

func parseOrdType(side, ordType string) (types.SideType, types.OrderType, bool) {
	s := convert.ParseSide(side)

	switch strings.ToLower(ordType) {
	case "limit":
		return s, types.OrderTypeLimit, false
	case "post_only":
		return s, types.OrderTypeLimit, true
	case "market":
		return s, types.OrderTypeMarket, false
	case "stop_limit":
		return s, types.OrderTypeStopLimit, false
	case "stop_market":
		return s, types.OrderTypeStopMarket, false
	}

	return s, types.OrderType(strings.ToUpper(ordType)), false
}

func toLocalOrderType(t types.OrderType, postOnly bool) (string, error) {
	switch t {
	case types.OrderTypeLimit:
		if postOnly {
			return "post_only", nil
		}
		return "limit", nil
	case types.OrderTypeMarket:
		return "market", nil
	case types.OrderTypeStopLimit:
		return "stop_limit", nil
	case types.OrderTypeStopMarket:
		return "stop_market", nil
	}

	return "", errors.Errorf("order type %s is not supported", t)
}

func toGlobalBalances(accounts []maxapi.Account) types.BalanceMap {
	balances := types.BalanceMap{}
	for _, a := range accounts {
		balances.Add(convert.DeriveBalance(strings.ToUpper(a.Currency), a.Balance, a.Locked, fixedpoint.Zero))
	}

	return balances.NotZero()
}

func toGlobalDeposit(d maxapi.Deposit) types.Transaction {
	return types.Transaction{
		ID:             d.UUID,
		TransactionID:  d.TxID,
		Exchange:       types.ExchangeMax,
		Type:           types.TransactionTypeDeposit,
		Asset:          convert.CanonicalCurrency(strings.ToUpper(d.Currency)),
		Amount:         d.Amount.Abs(),
		Address:        d.ToAddress,
		Status:         depositStatusMap.Resolve(d.State, types.TransactionStatusPending),
		OriginalStatus: d.State,
		Fee:            d.Fee,
		FeeCurrency:    convert.CanonicalCurrency(strings.ToUpper(d.Currency)),
		Time:           types.Time(d.CreatedAt.Time()),
	}
}

func toGlobalWithdraw(w maxapi.Withdraw) types.Transaction {
	feeCurrency := w.FeeCurrency
	if len(feeCurrency) == 0 {
		feeCurrency = w.Currency
	}

	return types.Transaction{
		ID:             w.UUID,
		TransactionID:  w.TxID,
		Exchange:       types.ExchangeMax,
		Type:           types.TransactionTypeWithdrawal,
		Asset:          convert.CanonicalCurrency(strings.ToUpper(w.Currency)),
		Amount:         w.Amount.Abs(),
		Status:         withdrawStatusMap.Resolve(w.State, types.TransactionStatusPending),
		OriginalStatus: w.State,
		Fee:            w.Fee,
		FeeCurrency:    convert.CanonicalCurrency(strings.ToUpper(feeCurrency)),
		Time:           types.Time(w.CreatedAt.Time()),
	}
}

// The endpoint only lists enabled currencies, so they are all active.
func toGlobalCurrency(c maxapi.Currency) types.Currency {
	return types.Currency{
		Code:      convert.CanonicalCurrency(strings.ToUpper(c.ID)),
		LocalCode: c.ID,
		Active:    true,
		Precision: c.Precision,
	}
}

func toGlobalKLine(symbol string, interval types.Interval, row []float64) (types.KLine, error) {
	if len(row) < 6 {
		return types.KLine{}, errors.Errorf("kline row has %d columns, expecting 6", len(row))
	}

	startTime := time.Unix(int64(row[0]), 0)

	return types.KLine{
		Exchange:  types.ExchangeMax,
		Symbol:    symbol,
		Interval:  interval,
		StartTime: types.Time(startTime),
		EndTime:   types.Time(startTime.Add(interval.Duration())),
		Open:      fixedpoint.NewFromFloat(row[1]),
		High:      fixedpoint.NewFromFloat(row[2]),
		Low:       fixedpoint.NewFromFloat(row[3]),
		Close:     fixedpoint.NewFromFloat(row[4]),
		Volume:    fixedpoint.NewFromFloat(row[5]),
		Closed:    true,
	}, nil
}
