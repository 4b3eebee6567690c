package types

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

type ExchangeName string

func (n ExchangeName) String() string {
	return string(n)
}

func (n *ExchangeName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	name, err := ValidExchangeName(s)
	if err != nil {
		return err
	}

	*n = name
	return nil
}

const (
	ExchangeBinance = ExchangeName("binance")
	ExchangeMax     = ExchangeName("max")
)

var SupportedExchanges = []ExchangeName{ExchangeBinance, ExchangeMax}

func ValidExchangeName(a string) (ExchangeName, error) {
	switch strings.ToLower(a) {
	case "binance", "bn":
		return ExchangeBinance, nil
	case "max":
		return ExchangeMax, nil
	}

	return "", fmt.Errorf("invalid exchange name: %s", a)
}

// Exchange is the adapter contract. Every adapter translates its
// exchange's REST API into this surface and normalizes the responses into
// the unified entities of this package.
type Exchange interface {
	Name() ExchangeName

	PlatformFeeCurrency() string

	ExchangeMarketDataService

	ExchangeTradeService
}

type ExchangeMarketDataService interface {
	QueryMarkets(ctx context.Context) (MarketMap, error)

	QueryTicker(ctx context.Context, symbol string) (*Ticker, error)

	QueryTickers(ctx context.Context, symbol ...string) (map[string]Ticker, error)

	// QueryOrderBook returns the book snapshot; limit is a best-effort hint
	// clamped to the exchange-side maximum.
	QueryOrderBook(ctx context.Context, symbol string, limit int) (*SliceOrderBook, error)

	QueryTrades(ctx context.Context, symbol string, options *TradeQueryOptions) ([]Trade, error)

	QueryKLines(ctx context.Context, symbol string, interval Interval, options KLineQueryOptions) ([]KLine, error)
}

// ExchangeCurrencyService is implemented by adapters whose exchange
// exposes a currency catalog.
type ExchangeCurrencyService interface {
	QueryCurrencies(ctx context.Context) (CurrencyMap, error)
}

type ExchangeTradeService interface {
	QueryAccountBalances(ctx context.Context) (BalanceMap, error)

	// SubmitOrder places the order. Placing an order has real-world effect
	// and is not idempotent unless ClientOrderID is set and the exchange
	// honors it.
	SubmitOrder(ctx context.Context, order SubmitOrder) (*Order, error)

	CancelOrder(ctx context.Context, q OrderQuery) error

	QueryOrder(ctx context.Context, q OrderQuery) (*Order, error)

	QueryOpenOrders(ctx context.Context, symbol string) ([]Order, error)

	QueryClosedOrders(ctx context.Context, symbol string, since, until time.Time, lastOrderID string) ([]Order, error)
}

type ExchangeTransferService interface {
	QueryDepositHistory(ctx context.Context, asset string, since, until time.Time) ([]Transaction, error)

	QueryWithdrawHistory(ctx context.Context, asset string, since, until time.Time) ([]Transaction, error)

	QueryDepositAddress(ctx context.Context, asset string) (*DepositAddress, error)

	// Withdraw moves funds out of the exchange. Not idempotent unless
	// options.ClientID is set and supported.
	Withdraw(ctx context.Context, asset string, amount fixedpoint.Value, address string, options *WithdrawalOptions) (*Transaction, error)
}

type TradeQueryOptions struct {
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int
	LastTradeID string
}
