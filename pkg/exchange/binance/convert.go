package binance

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/uniex/uniex/pkg/exchange/convert"
	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

var orderStatusMap = convert.StatusMap{
	"NEW":              types.OrderStatusOpen,
	"PARTIALLY_FILLED": types.OrderStatusOpen,
	"PENDING_CANCEL":   types.OrderStatusOpen,
	"FILLED":           types.OrderStatusClosed,
	"CANCELED":         types.OrderStatusCanceled,
	"REJECTED":         types.OrderStatusRejected,
	"EXPIRED":          types.OrderStatusExpired,
	"EXPIRED_IN_MATCH": types.OrderStatusExpired,
}

var depositStatusMap = convert.TransactionStatusMap{
	"0": types.TransactionStatusPending,
	"1": types.TransactionStatusOK,
	"6": types.TransactionStatusOK, // credited but can not withdraw
}

var withdrawStatusMap = convert.TransactionStatusMap{
	"0": types.TransactionStatusPending, // email sent
	"1": types.TransactionStatusCanceled,
	"2": types.TransactionStatusPending, // awaiting approval
	"3": types.TransactionStatusFailed,  // rejected
	"4": types.TransactionStatusPending, // processing
	"5": types.TransactionStatusFailed,
	"6": types.TransactionStatusOK, // completed
}

func toGlobalMarket(symbol Symbol) (types.Market, error) {
	if symbol.BaseAsset == "" || symbol.QuoteAsset == "" {
		return types.Market{}, errors.Errorf("symbol %s carries no base/quote assets", symbol.Symbol)
	}

	info, _ := json.Marshal(symbol)

	market := types.Market{
		Symbol:             convert.JoinSymbol(symbol.BaseAsset, symbol.QuoteAsset),
		LocalSymbol:        symbol.Symbol,
		BaseCurrency:       convert.CanonicalCurrency(symbol.BaseAsset),
		QuoteCurrency:      convert.CanonicalCurrency(symbol.QuoteAsset),
		LocalBaseCurrency:  symbol.BaseAsset,
		LocalQuoteCurrency: symbol.QuoteAsset,
		Active:             symbol.Status == "TRADING",
		PricePrecision:     symbol.QuotePrecision,
		VolumePrecision:    symbol.BaseAssetPrecision,
		Info:               info,
	}

	for _, raw := range symbol.Filters {
		var f SymbolFilter
		if err := json.Unmarshal(raw, &f); err != nil {
			continue
		}

		switch f.FilterType {
		case "PRICE_FILTER":
			market.MinPrice = f.MinPrice
			market.MaxPrice = f.MaxPrice
			market.TickSize = f.TickSize
			if prec, ok := fixedpoint.PrecisionFromTickSize(f.TickSize.String()); ok {
				market.PricePrecision = prec
			}

		case "LOT_SIZE":
			market.MinQuantity = f.MinQuantity
			market.MaxQuantity = f.MaxQuantity
			market.StepSize = f.StepSize
			if prec, ok := fixedpoint.PrecisionFromTickSize(f.StepSize.String()); ok {
				market.VolumePrecision = prec
			}

		case "MIN_NOTIONAL", "NOTIONAL":
			market.MinNotional = f.MinNotional
		}
	}

	return market, nil
}

func toGlobalTicker(stats PriceChangeStats) *types.Ticker {
	ticker := &types.Ticker{
		Time:          stats.CloseTime.Time(),
		High:          stats.HighPrice,
		Low:           stats.LowPrice,
		Bid:           stats.BidPrice,
		BidVolume:     stats.BidQty,
		Ask:           stats.AskPrice,
		AskVolume:     stats.AskQty,
		Open:          stats.OpenPrice,
		Last:          stats.LastPrice,
		PreviousClose: stats.PrevClosePrice,
		Change:        stats.PriceChange,
		Percentage:    stats.PriceChangePercent,
		VWAP:          stats.WeightedAvgPrice,
		Volume:        stats.Volume,
		QuoteVolume:   stats.QuoteVolume,
	}

	convert.FillDerivedTicker(ticker)
	return ticker
}

func toGlobalPublicTrade(t PublicTrade, symbol string) types.Trade {
	trade := types.Trade{
		ID:            strconv.FormatInt(t.ID, 10),
		Exchange:      types.ExchangeBinance,
		Symbol:        symbol,
		Price:         t.Price,
		Quantity:      t.Quantity,
		QuoteQuantity: t.QuoteQty,
		Side:          convert.TakerSideFromBuyerMaker(t.IsBuyerMaker),
		Liquidity:     types.LiquidityTaker,
		Time:          types.Time(t.Time.Time()),
	}

	convert.FillTradeDerivedFields(&trade)
	return trade
}

func toGlobalOrder(o RawOrder, symbol string) types.Order {
	creationTime := o.Time.Time()
	if creationTime.IsZero() {
		creationTime = o.TransactTime.Time()
	}

	info, _ := json.Marshal(o)

	order := types.Order{
		SubmitOrder: types.SubmitOrder{
			ClientOrderID: o.ClientOrderID,
			Symbol:        symbol,
			Side:          convert.ParseSide(o.Side),
			Type:          toGlobalOrderType(o.Type),
			Quantity:      o.OrigQty,
			Price:         o.Price,
			StopPrice:     o.StopPrice,
			TimeInForce:   types.TimeInForce(o.TimeInForce),
		},
		Exchange:         types.ExchangeBinance,
		OrderID:          strconv.FormatInt(o.OrderID, 10),
		Status:           orderStatusMap.Resolve(o.Status),
		OriginalStatus:   o.Status,
		ExecutedQuantity: o.ExecutedQty,
		QuoteQuantity:    o.CummulativeQuoteQty,
		CreationTime:     types.Time(creationTime),
		UpdateTime:       types.Time(o.UpdateTime.Time()),
		IsWorking:        o.IsWorking,
		Info:             info,
	}

	convert.FillOrderDerivedFields(&order)
	return order
}

func toGlobalOrderType(s string) types.OrderType {
	switch strings.ToUpper(s) {
	case "LIMIT", "LIMIT_MAKER":
		return types.OrderTypeLimit
	case "MARKET":
		return types.OrderTypeMarket
	case "STOP_LOSS_LIMIT", "TAKE_PROFIT_LIMIT":
		return types.OrderTypeStopLimit
	case "STOP_LOSS", "TAKE_PROFIT":
		return types.OrderTypeStopMarket
	}

	return types.OrderType(strings.ToUpper(s))
}

func toLocalOrderType(t types.OrderType, postOnly bool) (string, error) {
	switch t {
	case types.OrderTypeLimit:
		if postOnly {
			return "LIMIT_MAKER", nil
		}
		return "LIMIT", nil
	case types.OrderTypeMarket:
		return "MARKET", nil
	case types.OrderTypeStopLimit:
		return "STOP_LOSS_LIMIT", nil
	case types.OrderTypeStopMarket:
		return "STOP_LOSS", nil
	}

	return "", errors.Errorf("order type %s is not supported", t)
}

func toGlobalBalances(account Account) types.BalanceMap {
	balances := types.BalanceMap{}
	for _, b := range account.Balances {
		balances.Add(convert.DeriveBalance(b.Asset, b.Free, b.Locked, fixedpoint.Zero))
	}

	return balances.NotZero()
}

func toGlobalDeposit(d RawDeposit) types.Transaction {
	info, _ := json.Marshal(d)
	status := strconv.Itoa(d.Status)

	return types.Transaction{
		TransactionID:  d.TxID,
		Exchange:       types.ExchangeBinance,
		Type:           types.TransactionTypeDeposit,
		Asset:          convert.CanonicalCurrency(d.Coin),
		Amount:         d.Amount.Abs(),
		Address:        d.Address,
		AddressTag:     d.AddressTag,
		Network:        d.Network,
		Status:         depositStatusMap.Resolve(status, types.TransactionStatusPending),
		OriginalStatus: status,
		Time:           types.Time(d.InsertTime.Time()),
		Info:           info,
	}
}

func toGlobalWithdraw(w RawWithdraw) types.Transaction {
	info, _ := json.Marshal(w)
	status := strconv.Itoa(w.Status)

	applyTime, err := time.Parse("2006-01-02 15:04:05", w.ApplyTime)
	if err != nil {
		applyTime = time.Time{}
	}

	return types.Transaction{
		ID:             w.ID,
		TransactionID:  w.TxID,
		Exchange:       types.ExchangeBinance,
		Type:           types.TransactionTypeWithdrawal,
		Asset:          convert.CanonicalCurrency(w.Coin),
		Amount:         w.Amount.Abs(),
		Address:        w.Address,
		Network:        w.Network,
		Status:         withdrawStatusMap.Resolve(status, types.TransactionStatusPending),
		OriginalStatus: status,
		Fee:            w.TransactionFee,
		FeeCurrency:    convert.CanonicalCurrency(w.Coin),
		Time:           types.Time(applyTime),
		Info:           info,
	}
}

func toGlobalCurrency(c CoinInfo) types.Currency {
	info, _ := json.Marshal(c)

	currency := types.Currency{
		Code:      convert.CanonicalCurrency(c.Coin),
		LocalCode: c.Coin,
		Name:      c.Name,
		Active:    c.DepositAllEnable || c.WithdrawAllEnable,
		Info:      info,
	}

	for _, n := range c.NetworkList {
		if !n.IsDefault {
			continue
		}
		currency.Fee = n.WithdrawFee
		currency.MinWithdrawAmount = n.WithdrawMin
		currency.MaxWithdrawAmount = n.WithdrawMax
		if prec, ok := fixedpoint.PrecisionFromTickSize(n.WithdrawIntegerMultiple); ok {
			currency.Precision = prec
		}
	}

	return currency
}

func toGlobalKLine(symbol string, interval types.Interval, row []json.RawMessage) (types.KLine, error) {
	if len(row) < 8 {
		return types.KLine{}, errors.Errorf("kline row has %d columns, expecting at least 8", len(row))
	}

	var startTime, endTime types.MillisecondTimestamp
	if err := json.Unmarshal(row[0], &startTime); err != nil {
		return types.KLine{}, err
	}
	if err := json.Unmarshal(row[6], &endTime); err != nil {
		return types.KLine{}, err
	}

	var open, high, low, closePrice, volume, quoteVolume fixedpoint.Value
	for i, dst := range []*fixedpoint.Value{&open, &high, &low, &closePrice, &volume} {
		if err := json.Unmarshal(row[i+1], dst); err != nil {
			return types.KLine{}, err
		}
	}
	if err := json.Unmarshal(row[7], &quoteVolume); err != nil {
		return types.KLine{}, err
	}

	return types.KLine{
		Exchange:    types.ExchangeBinance,
		Symbol:      symbol,
		Interval:    interval,
		StartTime:   types.Time(startTime.Time()),
		EndTime:     types.Time(endTime.Time()),
		Open:        open,
		High:        high,
		Low:         low,
		Close:       closePrice,
		Volume:      volume,
		QuoteVolume: quoteVolume,
		Closed:      true,
	}, nil
}
