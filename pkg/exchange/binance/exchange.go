package binance

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/uniex/uniex/pkg/exchange"
	"github.com/uniex/uniex/pkg/exchange/convert"
	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

const PlatformToken = "BNB"

var log = logrus.WithFields(logrus.Fields{
	"exchange": "binance",
})

// REST request weight is shared per IP; orders are additionally capped
// per account.
var (
	queryLimiter = rate.NewLimiter(rate.Every(time.Second/10), 10)
	orderLimiter = rate.NewLimiter(rate.Every(time.Second/5), 5)
)

// depthLimits are the snapshot sizes the endpoint accepts.
var depthLimits = []int{5, 10, 20, 50, 100, 500, 1000, 5000}

func init() {
	exchange.RegisterExchange(types.ExchangeBinance, exchange.ExchangeFactory{
		Constructor: func(options exchange.ExchangeOptions) (types.Exchange, error) {
			return New(
				options[exchange.ExchangeOptionsKeyAPIKey],
				options[exchange.ExchangeOptionsKeyAPISecret],
			), nil
		},
	})
}

type Exchange struct {
	client  *RestClient
	markets *exchange.MarketCache
}

func New(key, secret string) *Exchange {
	client := NewRestClient(ProductionAPIURL)
	if len(key) > 0 && len(secret) > 0 {
		client.Auth(key, secret)
	}

	return &Exchange{
		client:  client,
		markets: exchange.NewMarketCache(types.ExchangeBinance),
	}
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeBinance
}

func (e *Exchange) PlatformFeeCurrency() string {
	return PlatformToken
}

func (e *Exchange) fetchMarkets(ctx context.Context) (types.MarketMap, error) {
	req, err := e.client.NewRequest(ctx, "GET", "/api/v3/exchangeInfo", nil)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var info ExchangeInfo
	if err := response.DecodeJSON(&info); err != nil {
		return nil, err
	}

	markets := types.MarketMap{}
	for _, s := range info.Symbols {
		market, err := toGlobalMarket(s)
		if err != nil {
			log.WithError(err).Warnf("skip symbol %s", s.Symbol)
			continue
		}

		markets.Add(market)
	}

	return markets, nil
}

func (e *Exchange) QueryMarkets(ctx context.Context) (types.MarketMap, error) {
	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	return e.markets.Load(ctx, e.fetchMarkets)
}

func (e *Exchange) QueryTicker(ctx context.Context, symbol string) (*types.Ticker, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbol", market.LocalSymbol)

	req, err := e.client.NewRequest(ctx, "GET", "/api/v3/ticker/24hr", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var stats PriceChangeStats
	if err := response.DecodeJSON(&stats); err != nil {
		return nil, err
	}

	ticker := toGlobalTicker(stats)
	ticker.Symbol = market.Symbol
	return ticker, nil
}

func (e *Exchange) QueryTickers(ctx context.Context, symbols ...string) (map[string]types.Ticker, error) {
	tickers := map[string]types.Ticker{}

	if len(symbols) > 0 {
		for _, symbol := range symbols {
			ticker, err := e.QueryTicker(ctx, symbol)
			if err != nil {
				return nil, err
			}

			tickers[ticker.Symbol] = *ticker
		}

		return tickers, nil
	}

	markets, err := e.QueryMarkets(ctx)
	if err != nil {
		return nil, err
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := e.client.NewRequest(ctx, "GET", "/api/v3/ticker/24hr", nil)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var statsList []PriceChangeStats
	if err := response.DecodeJSON(&statsList); err != nil {
		return nil, err
	}

	byLocal := map[string]types.Market{}
	for _, m := range markets {
		byLocal[m.LocalSymbol] = m
	}

	for _, stats := range statsList {
		market, ok := byLocal[stats.Symbol]
		if !ok {
			continue
		}

		ticker := toGlobalTicker(stats)
		ticker.Symbol = market.Symbol
		tickers[market.Symbol] = *ticker
	}

	return tickers, nil
}

func (e *Exchange) QueryOrderBook(ctx context.Context, symbol string, limit int) (*types.SliceOrderBook, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbol", market.LocalSymbol)
	params.Set("limit", strconv.Itoa(clampDepthLimit(limit)))

	req, err := e.client.NewRequest(ctx, "GET", "/api/v3/depth", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var depth Depth
	if err := response.DecodeJSON(&depth); err != nil {
		return nil, err
	}

	book, err := convert.BuildOrderBook(market.Symbol, depth.Bids, depth.Asks, nil)
	if err != nil {
		return nil, err
	}

	book.Nonce = depth.LastUpdateID
	book.Time = time.Now()
	return book, nil
}

// clampDepthLimit rounds the hint up to the next accepted snapshot size.
func clampDepthLimit(limit int) int {
	if limit <= 0 {
		return 100
	}

	for _, allowed := range depthLimits {
		if limit <= allowed {
			return allowed
		}
	}

	return depthLimits[len(depthLimits)-1]
}

func (e *Exchange) QueryTrades(ctx context.Context, symbol string, options *types.TradeQueryOptions) ([]types.Trade, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbol", market.LocalSymbol)

	limit := 500
	if options != nil && options.Limit > 0 && options.Limit <= 1000 {
		limit = options.Limit
	}
	params.Set("limit", strconv.Itoa(limit))

	req, err := e.client.NewRequest(ctx, "GET", "/api/v3/trades", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var rawTrades []PublicTrade
	if err := response.DecodeJSON(&rawTrades); err != nil {
		return nil, err
	}

	var trades []types.Trade
	for _, t := range rawTrades {
		trade := toGlobalPublicTrade(t, market.Symbol)

		// the endpoint has no server-side time filter
		if options != nil {
			if options.StartTime != nil && trade.Time.Time().Before(*options.StartTime) {
				continue
			}
			if options.EndTime != nil && trade.Time.Time().After(*options.EndTime) {
				continue
			}
		}

		trades = append(trades, trade)
	}

	return trades, nil
}

func (e *Exchange) QueryKLines(ctx context.Context, symbol string, interval types.Interval, options types.KLineQueryOptions) ([]types.KLine, error) {
	if !interval.Valid() {
		return nil, &types.RequestError{
			Kind:     types.ErrBadRequest,
			Exchange: types.ExchangeBinance,
			Message:  "unsupported interval " + string(interval),
		}
	}

	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbol", market.LocalSymbol)
	params.Set("interval", string(interval))

	limit := 500
	if options.Limit > 0 && options.Limit <= 1000 {
		limit = options.Limit
	}
	params.Set("limit", strconv.Itoa(limit))

	if options.StartTime != nil {
		params.Set("startTime", strconv.FormatInt(options.StartTime.UnixMilli(), 10))
	}
	if options.EndTime != nil {
		params.Set("endTime", strconv.FormatInt(options.EndTime.UnixMilli(), 10))
	}

	req, err := e.client.NewRequest(ctx, "GET", "/api/v3/klines", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var rows [][]json.RawMessage
	if err := response.DecodeJSON(&rows); err != nil {
		return nil, err
	}

	var klines []types.KLine
	for _, row := range rows {
		k, err := toGlobalKLine(market.Symbol, interval, row)
		if err != nil {
			return nil, err
		}

		klines = append(klines, k)
	}

	return klines, nil
}

func (e *Exchange) QueryAccountBalances(ctx context.Context) (types.BalanceMap, error) {
	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "GET", "/api/v3/account", nil)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := response.DecodeJSON(&account); err != nil {
		return nil, err
	}

	return toGlobalBalances(account), nil
}

func (e *Exchange) SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.Order, error) {
	market, err := e.markets.Resolve(ctx, order.Symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	orderType, err := toLocalOrderType(order.Type, order.PostOnly)
	if err != nil {
		return nil, &types.RequestError{
			Kind:     types.ErrInvalidOrder,
			Exchange: types.ExchangeBinance,
			Message:  err.Error(),
		}
	}

	clientOrderID := order.ClientOrderID
	if len(clientOrderID) == 0 {
		clientOrderID = uuid.New().String()
	}

	params := url.Values{}
	params.Set("symbol", market.LocalSymbol)
	params.Set("side", string(order.Side))
	params.Set("type", orderType)
	params.Set("quantity", market.FormatQuantity(order.Quantity))
	params.Set("newClientOrderId", clientOrderID)
	params.Set("newOrderRespType", "RESULT")

	switch order.Type {
	case types.OrderTypeLimit, types.OrderTypeStopLimit:
		params.Set("price", market.FormatPrice(order.Price))

		timeInForce := order.TimeInForce
		if len(timeInForce) == 0 {
			timeInForce = types.TimeInForceGTC
		}
		// LIMIT_MAKER rejects an explicit timeInForce
		if !order.PostOnly {
			params.Set("timeInForce", string(timeInForce))
		}
	}

	if !order.StopPrice.IsZero() {
		params.Set("stopPrice", market.FormatPrice(order.StopPrice))
	}

	if err := orderLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "POST", "/api/v3/order", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var raw RawOrder
	if err := response.DecodeJSON(&raw); err != nil {
		return nil, err
	}

	placed := toGlobalOrder(raw, market.Symbol)
	return &placed, nil
}

func (e *Exchange) CancelOrder(ctx context.Context, q types.OrderQuery) error {
	params, _, err := e.orderQueryParams(ctx, q)
	if err != nil {
		return err
	}

	if err := orderLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "DELETE", "/api/v3/order", params)
	if err != nil {
		return err
	}

	_, err = e.client.SendRequest(req)
	return err
}

func (e *Exchange) QueryOrder(ctx context.Context, q types.OrderQuery) (*types.Order, error) {
	params, market, err := e.orderQueryParams(ctx, q)
	if err != nil {
		return nil, err
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "GET", "/api/v3/order", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var raw RawOrder
	if err := response.DecodeJSON(&raw); err != nil {
		return nil, err
	}

	order := toGlobalOrder(raw, market.Symbol)
	return &order, nil
}

// orderQueryParams validates the query and turns it into endpoint params.
// At least one of OrderID/ClientOrderID must be set.
func (e *Exchange) orderQueryParams(ctx context.Context, q types.OrderQuery) (url.Values, types.Market, error) {
	if len(q.OrderID) == 0 && len(q.ClientOrderID) == 0 {
		return nil, types.Market{}, &types.RequestError{
			Kind:     types.ErrArgumentsRequired,
			Exchange: types.ExchangeBinance,
			Message:  "either order id or client order id is required",
		}
	}

	market, err := e.markets.Resolve(ctx, q.Symbol, e.fetchMarkets)
	if err != nil {
		return nil, types.Market{}, err
	}

	params := url.Values{}
	params.Set("symbol", market.LocalSymbol)

	if len(q.OrderID) > 0 {
		params.Set("orderId", q.OrderID)
	} else {
		params.Set("origClientOrderId", q.ClientOrderID)
	}

	return params, market, nil
}

func (e *Exchange) QueryOpenOrders(ctx context.Context, symbol string) ([]types.Order, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbol", market.LocalSymbol)

	req, err := e.client.NewAuthenticatedRequest(ctx, "GET", "/api/v3/openOrders", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var rawOrders []RawOrder
	if err := response.DecodeJSON(&rawOrders); err != nil {
		return nil, err
	}

	var orders []types.Order
	for _, raw := range rawOrders {
		orders = append(orders, toGlobalOrder(raw, market.Symbol))
	}

	return orders, nil
}

func (e *Exchange) QueryClosedOrders(ctx context.Context, symbol string, since, until time.Time, lastOrderID string) ([]types.Order, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbol", market.LocalSymbol)

	// the endpoint pages either by order id or by time window
	if len(lastOrderID) > 0 {
		params.Set("orderId", lastOrderID)
	} else {
		if !since.IsZero() {
			params.Set("startTime", strconv.FormatInt(since.UnixMilli(), 10))
		}
		if !until.IsZero() {
			params.Set("endTime", strconv.FormatInt(until.UnixMilli(), 10))
		}
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "GET", "/api/v3/allOrders", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var rawOrders []RawOrder
	if err := response.DecodeJSON(&rawOrders); err != nil {
		return nil, err
	}

	var orders []types.Order
	for _, raw := range rawOrders {
		order := toGlobalOrder(raw, market.Symbol)
		if !order.Status.Closed() {
			continue
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func (e *Exchange) QueryDepositHistory(ctx context.Context, asset string, since, until time.Time) ([]types.Transaction, error) {
	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	if len(asset) > 0 {
		params.Set("coin", asset)
	}
	if !since.IsZero() {
		params.Set("startTime", strconv.FormatInt(since.UnixMilli(), 10))
	}
	if !until.IsZero() {
		params.Set("endTime", strconv.FormatInt(until.UnixMilli(), 10))
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "GET", "/sapi/v1/capital/deposit/hisrec", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var deposits []RawDeposit
	if err := response.DecodeJSON(&deposits); err != nil {
		return nil, err
	}

	var txns []types.Transaction
	for _, d := range deposits {
		txns = append(txns, toGlobalDeposit(d))
	}

	return txns, nil
}

func (e *Exchange) QueryWithdrawHistory(ctx context.Context, asset string, since, until time.Time) ([]types.Transaction, error) {
	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	if len(asset) > 0 {
		params.Set("coin", asset)
	}
	if !since.IsZero() {
		params.Set("startTime", strconv.FormatInt(since.UnixMilli(), 10))
	}
	if !until.IsZero() {
		params.Set("endTime", strconv.FormatInt(until.UnixMilli(), 10))
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "GET", "/sapi/v1/capital/withdraw/history", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var withdraws []RawWithdraw
	if err := response.DecodeJSON(&withdraws); err != nil {
		return nil, err
	}

	var txns []types.Transaction
	for _, w := range withdraws {
		txns = append(txns, toGlobalWithdraw(w))
	}

	return txns, nil
}

func (e *Exchange) QueryDepositAddress(ctx context.Context, asset string) (*types.DepositAddress, error) {
	if len(asset) == 0 {
		return nil, &types.RequestError{
			Kind:     types.ErrArgumentsRequired,
			Exchange: types.ExchangeBinance,
			Message:  "asset is required",
		}
	}

	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("coin", asset)

	req, err := e.client.NewAuthenticatedRequest(ctx, "GET", "/sapi/v1/capital/deposit/address", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var raw RawDepositAddress
	if err := response.DecodeJSON(&raw); err != nil {
		return nil, err
	}

	if len(raw.Address) == 0 {
		return nil, &types.RequestError{
			Kind:     types.ErrAddressPending,
			Exchange: types.ExchangeBinance,
			Message:  "deposit address for " + asset + " is not generated yet",
		}
	}

	return &types.DepositAddress{
		Asset:   convert.CanonicalCurrency(raw.Coin),
		Address: raw.Address,
		Tag:     raw.Tag,
	}, nil
}

func (e *Exchange) Withdraw(ctx context.Context, asset string, amount fixedpoint.Value, address string, options *types.WithdrawalOptions) (*types.Transaction, error) {
	if len(asset) == 0 || amount.Sign() <= 0 || len(address) == 0 {
		return nil, &types.RequestError{
			Kind:     types.ErrArgumentsRequired,
			Exchange: types.ExchangeBinance,
			Message:  "asset, positive amount and address are required",
		}
	}

	clientID := ""
	if options != nil {
		clientID = options.ClientID
	}
	if len(clientID) == 0 {
		clientID = uuid.New().String()
	}

	params := url.Values{}
	params.Set("coin", asset)
	params.Set("address", address)
	params.Set("amount", amount.String())
	params.Set("withdrawOrderId", clientID)

	if options != nil {
		if len(options.Network) > 0 {
			params.Set("network", options.Network)
		}
		if len(options.AddressTag) > 0 {
			params.Set("addressTag", options.AddressTag)
		}
	}

	if err := orderLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "POST", "/sapi/v1/capital/withdraw/apply", params)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := response.DecodeJSON(&result); err != nil {
		return nil, errors.Wrap(err, "withdraw response")
	}

	tx := &types.Transaction{
		ID:       result.ID,
		Exchange: types.ExchangeBinance,
		Type:     types.TransactionTypeWithdrawal,
		Asset:    convert.CanonicalCurrency(asset),
		Amount:   amount,
		Address:  address,
		Status:   types.TransactionStatusPending,
		Time:     types.Time(time.Now()),
	}

	if options != nil {
		tx.Network = options.Network
		tx.AddressTag = options.AddressTag
	}

	return tx, nil
}

func (e *Exchange) QueryCurrencies(ctx context.Context) (types.CurrencyMap, error) {
	if err := queryLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := e.client.NewAuthenticatedRequest(ctx, "GET", "/sapi/v1/capital/config/getall", nil)
	if err != nil {
		return nil, err
	}

	response, err := e.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var coins []CoinInfo
	if err := response.DecodeJSON(&coins); err != nil {
		return nil, err
	}

	currencies := types.CurrencyMap{}
	for _, c := range coins {
		currencies.Add(toGlobalCurrency(c))
	}

	return currencies, nil
}
