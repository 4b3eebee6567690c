package max

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/uniex/uniex/pkg/exchange"
	"github.com/uniex/uniex/pkg/exchange/convert"
	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
	"github.com/uniex/uniex/pkg/util"

	maxapi "github.com/uniex/uniex/pkg/exchange/max/maxapi"
)

const PlatformToken = "MAX"

var log = logrus.WithFields(logrus.Fields{
	"exchange": "max",
})

// 1200 requests per minute shared across the instance, with a small
// burst allowance.
var requestLimiter = mustRateLimiter("5+1200/1m")

func mustRateLimiter(desc string) *rate.Limiter {
	limiter, err := util.ParseRateLimitSyntax(desc)
	if err != nil {
		panic(err)
	}
	return limiter
}

// intervalPeriods maps the unified interval onto the candle period in
// minutes the endpoint expects.
var intervalPeriods = map[types.Interval]int{
	types.Interval1m:  1,
	types.Interval5m:  5,
	types.Interval15m: 15,
	types.Interval30m: 30,
	types.Interval1h:  60,
	types.Interval4h:  240,
	types.Interval1d:  1440,
	types.Interval1w:  10080,
}

func init() {
	exchange.RegisterExchange(types.ExchangeMax, exchange.ExchangeFactory{
		Constructor: func(options exchange.ExchangeOptions) (types.Exchange, error) {
			return New(
				options[exchange.ExchangeOptionsKeyAPIKey],
				options[exchange.ExchangeOptionsKeyAPISecret],
			), nil
		},
	})
}

type Exchange struct {
	client  *maxapi.RestClient
	markets *exchange.MarketCache
}

func New(key, secret string) *Exchange {
	client := maxapi.NewRestClient(maxapi.ProductionAPIURL)
	if len(key) > 0 && len(secret) > 0 {
		client.Auth(key, secret)
	}

	return &Exchange{
		client:  client,
		markets: exchange.NewMarketCache(types.ExchangeMax),
	}
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeMax
}

func (e *Exchange) PlatformFeeCurrency() string {
	return PlatformToken
}

func (e *Exchange) fetchMarkets(ctx context.Context) (types.MarketMap, error) {
	remoteMarkets, err := e.client.PublicService.Markets(ctx)
	if err != nil {
		return nil, err
	}

	markets := types.MarketMap{}
	for _, m := range remoteMarkets {
		market, err := toGlobalMarket(m)
		if err != nil {
			log.WithError(err).Warnf("skip market %s", m.ID)
			continue
		}

		markets.Add(market)
	}

	return markets, nil
}

func (e *Exchange) QueryMarkets(ctx context.Context) (types.MarketMap, error) {
	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	return e.markets.Load(ctx, e.fetchMarkets)
}

func (e *Exchange) QueryTicker(ctx context.Context, symbol string) (*types.Ticker, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	ticker, err := e.client.PublicService.Ticker(ctx, market.LocalSymbol)
	if err != nil {
		return nil, err
	}

	return toGlobalTicker(*ticker, market.Symbol), nil
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

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	remoteTickers, err := e.client.PublicService.Tickers(ctx)
	if err != nil {
		return nil, err
	}

	byLocal := map[string]types.Market{}
	for _, m := range markets {
		byLocal[m.LocalSymbol] = m
	}

	for local, t := range remoteTickers {
		market, ok := byLocal[local]
		if !ok {
			continue
		}

		tickers[market.Symbol] = *toGlobalTicker(t, market.Symbol)
	}

	return tickers, nil
}

func (e *Exchange) QueryOrderBook(ctx context.Context, symbol string, limit int) (*types.SliceOrderBook, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	depth, err := e.client.PublicService.Depth(ctx, market.LocalSymbol, limit)
	if err != nil {
		return nil, err
	}

	book, err := convert.BuildOrderBook(market.Symbol, depth.Bids, depth.Asks, nil)
	if err != nil {
		return nil, err
	}

	book.Nonce = depth.LastUpdateID
	book.Time = depth.Timestamp.Time()
	return book, nil
}

func (e *Exchange) QueryTrades(ctx context.Context, symbol string, options *types.TradeQueryOptions) ([]types.Trade, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	limit := 0
	if options != nil {
		limit = options.Limit
	}

	remoteTrades, err := e.client.PublicService.Trades(ctx, market.LocalSymbol, limit)
	if err != nil {
		return nil, err
	}

	var trades []types.Trade
	for _, t := range remoteTrades {
		trade := toGlobalTrade(t, market.Symbol)

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
	period, ok := intervalPeriods[interval]
	if !ok {
		return nil, &types.RequestError{
			Kind:     types.ErrBadRequest,
			Exchange: types.ExchangeMax,
			Message:  "unsupported interval " + string(interval),
		}
	}

	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	var since int64
	if options.StartTime != nil {
		since = options.StartTime.Unix()
	}

	rows, err := e.client.PublicService.KLines(ctx, market.LocalSymbol, period, options.Limit, since)
	if err != nil {
		return nil, err
	}

	var klines []types.KLine
	for _, row := range rows {
		k, err := toGlobalKLine(market.Symbol, interval, row)
		if err != nil {
			return nil, err
		}

		if options.EndTime != nil && k.StartTime.Time().After(*options.EndTime) {
			continue
		}

		klines = append(klines, k)
	}

	return klines, nil
}

func (e *Exchange) QueryCurrencies(ctx context.Context) (types.CurrencyMap, error) {
	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	remoteCurrencies, err := e.client.PublicService.Currencies(ctx)
	if err != nil {
		return nil, err
	}

	currencies := types.CurrencyMap{}
	for _, c := range remoteCurrencies {
		currencies.Add(toGlobalCurrency(c))
	}

	return currencies, nil
}

func (e *Exchange) QueryAccountBalances(ctx context.Context) (types.BalanceMap, error) {
	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	accounts, err := e.client.AccountService.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	return toGlobalBalances(accounts), nil
}

func (e *Exchange) SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.Order, error) {
	market, err := e.markets.Resolve(ctx, order.Symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	ordType, err := toLocalOrderType(order.Type, order.PostOnly)
	if err != nil {
		return nil, &types.RequestError{
			Kind:     types.ErrInvalidOrder,
			Exchange: types.ExchangeMax,
			Message:  err.Error(),
		}
	}

	clientOID := order.ClientOrderID
	if len(clientOID) == 0 {
		clientOID = uuid.New().String()
	}

	params := maxapi.SubmitOrderParams{
		Market:    market.LocalSymbol,
		Side:      localSide(order.Side),
		Volume:    market.FormatQuantity(order.Quantity),
		OrdType:   ordType,
		ClientOID: clientOID,
	}

	if order.Type != types.OrderTypeMarket && order.Type != types.OrderTypeStopMarket {
		params.Price = market.FormatPrice(order.Price)
	}
	if !order.StopPrice.IsZero() {
		params.StopPrice = market.FormatPrice(order.StopPrice)
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	created, err := e.client.OrderService.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	placed := toGlobalOrder(*created, market.Symbol)
	return &placed, nil
}

func localSide(side types.SideType) string {
	if side == types.SideTypeBuy {
		return "buy"
	}
	return "sell"
}

func (e *Exchange) CancelOrder(ctx context.Context, q types.OrderQuery) error {
	orderID, err := validateOrderQuery(q)
	if err != nil {
		return err
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return err
	}

	return e.client.OrderService.Cancel(ctx, orderID, q.ClientOrderID)
}

func (e *Exchange) QueryOrder(ctx context.Context, q types.OrderQuery) (*types.Order, error) {
	orderID, err := validateOrderQuery(q)
	if err != nil {
		return nil, err
	}

	market, err := e.markets.Resolve(ctx, q.Symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	order, err := e.client.OrderService.Get(ctx, orderID, q.ClientOrderID)
	if err != nil {
		return nil, err
	}

	placed := toGlobalOrder(*order, market.Symbol)
	return &placed, nil
}

// validateOrderQuery requires one of the ids and parses the numeric one.
func validateOrderQuery(q types.OrderQuery) (int64, error) {
	if len(q.OrderID) == 0 && len(q.ClientOrderID) == 0 {
		return 0, &types.RequestError{
			Kind:     types.ErrArgumentsRequired,
			Exchange: types.ExchangeMax,
			Message:  "either order id or client order id is required",
		}
	}

	if len(q.OrderID) == 0 {
		return 0, nil
	}

	orderID, err := strconv.ParseInt(q.OrderID, 10, 64)
	if err != nil {
		return 0, &types.RequestError{
			Kind:     types.ErrBadRequest,
			Exchange: types.ExchangeMax,
			Message:  "invalid order id " + q.OrderID,
		}
	}

	return orderID, nil
}

func (e *Exchange) QueryOpenOrders(ctx context.Context, symbol string) ([]types.Order, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	remoteOrders, err := e.client.OrderService.List(ctx, market.LocalSymbol, "wait")
	if err != nil {
		return nil, err
	}

	var orders []types.Order
	for _, o := range remoteOrders {
		orders = append(orders, toGlobalOrder(o, market.Symbol))
	}

	return orders, nil
}

func (e *Exchange) QueryClosedOrders(ctx context.Context, symbol string, since, until time.Time, lastOrderID string) ([]types.Order, error) {
	market, err := e.markets.Resolve(ctx, symbol, e.fetchMarkets)
	if err != nil {
		return nil, err
	}

	lastID := int64(0)
	if len(lastOrderID) > 0 {
		lastID, err = strconv.ParseInt(lastOrderID, 10, 64)
		if err != nil {
			return nil, &types.RequestError{
				Kind:     types.ErrBadRequest,
				Exchange: types.ExchangeMax,
				Message:  "invalid last order id " + lastOrderID,
			}
		}
	}

	var orders []types.Order
	for _, state := range []string{"done", "cancel"} {
		if err := requestLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		remoteOrders, err := e.client.OrderService.List(ctx, market.LocalSymbol, state)
		if err != nil {
			return nil, err
		}

		for _, o := range remoteOrders {
			order := toGlobalOrder(o, market.Symbol)
			if !order.Status.Closed() {
				continue
			}
			if lastID > 0 && o.ID <= lastID {
				continue
			}

			created := order.CreationTime.Time()
			if !since.IsZero() && created.Before(since) {
				continue
			}
			if !until.IsZero() && created.After(until) {
				continue
			}

			orders = append(orders, order)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreationTime.Time().Before(orders[j].CreationTime.Time())
	})

	return orders, nil
}

func (e *Exchange) QueryDepositHistory(ctx context.Context, asset string, since, until time.Time) ([]types.Transaction, error) {
	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	deposits, err := e.client.AccountService.Deposits(ctx, localCurrency(asset), since, until)
	if err != nil {
		return nil, err
	}

	var txns []types.Transaction
	for _, d := range deposits {
		txns = append(txns, toGlobalDeposit(d))
	}

	return txns, nil
}

func (e *Exchange) QueryWithdrawHistory(ctx context.Context, asset string, since, until time.Time) ([]types.Transaction, error) {
	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	withdraws, err := e.client.AccountService.Withdrawals(ctx, localCurrency(asset), since, until)
	if err != nil {
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
			Exchange: types.ExchangeMax,
			Message:  "asset is required",
		}
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	addresses, err := e.client.AccountService.DepositAddresses(ctx, localCurrency(asset))
	if err != nil {
		return nil, err
	}

	for _, a := range addresses {
		if len(a.Address) > 0 {
			return &types.DepositAddress{
				Asset:   convert.CanonicalCurrency(asset),
				Address: a.Address,
				Tag:     a.ExtraLabel,
			}, nil
		}
	}

	return nil, &types.RequestError{
		Kind:     types.ErrAddressPending,
		Exchange: types.ExchangeMax,
		Message:  "deposit address for " + asset + " is not generated yet",
	}
}

// Withdraw resolves the target address against the pre-registered
// withdrawal address book, then submits the withdrawal. An address that
// is not in the book is rejected locally.
func (e *Exchange) Withdraw(ctx context.Context, asset string, amount fixedpoint.Value, address string, options *types.WithdrawalOptions) (*types.Transaction, error) {
	if len(asset) == 0 || amount.Sign() <= 0 || len(address) == 0 {
		return nil, &types.RequestError{
			Kind:     types.ErrArgumentsRequired,
			Exchange: types.ExchangeMax,
			Message:  "asset, positive amount and address are required",
		}
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	addresses, err := e.client.AccountService.WithdrawAddresses(ctx, localCurrency(asset))
	if err != nil {
		return nil, err
	}

	addressUUID := ""
	for _, a := range addresses {
		if a.Address != address {
			continue
		}
		if options != nil && len(options.AddressTag) > 0 && a.ExtraLabel != options.AddressTag {
			continue
		}

		addressUUID = a.UUID
		break
	}

	if len(addressUUID) == 0 {
		return nil, &types.RequestError{
			Kind:     types.ErrInvalidAddress,
			Exchange: types.ExchangeMax,
			Message:  "address " + address + " is not registered in the withdrawal address book",
		}
	}

	if err := requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	withdraw, err := e.client.AccountService.CreateWithdrawal(ctx, localCurrency(asset), amount.String(), addressUUID)
	if err != nil {
		return nil, err
	}

	tx := toGlobalWithdraw(*withdraw)
	tx.Address = address
	if options != nil {
		tx.Network = options.Network
		tx.AddressTag = options.AddressTag
	}

	return &tx, nil
}

func localCurrency(asset string) string {
	return strings.ToLower(asset)
}
