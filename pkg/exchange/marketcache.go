package exchange

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/uniex/uniex/pkg/types"
)

// MarketCache holds the markets of one adapter instance, indexed by both
// the unified symbol and the exchange-native local symbol so either
// resolves in O(1) to the same market.
//
// The cache is populated at most once per adapter lifetime: concurrent
// first calls share a single in-flight fetch through singleflight instead
// of racing duplicate requests.
type MarketCache struct {
	exchange types.ExchangeName

	group singleflight.Group

	mu       sync.RWMutex
	markets  types.MarketMap
	bySymbol map[string]types.Market
	byLocal  map[string]types.Market
}

func NewMarketCache(exchange types.ExchangeName) *MarketCache {
	return &MarketCache{exchange: exchange}
}

// Load returns the cached markets, fetching them through fetch on the
// first call.
func (c *MarketCache) Load(
	ctx context.Context, fetch func(ctx context.Context) (types.MarketMap, error),
) (types.MarketMap, error) {
	c.mu.RLock()
	markets := c.markets
	c.mu.RUnlock()

	if markets != nil {
		return markets, nil
	}

	v, err, _ := c.group.Do("markets", func() (interface{}, error) {
		// re-check under the flight: another caller may have stored already
		c.mu.RLock()
		cached := c.markets
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.store(fetched)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(types.MarketMap), nil
}

func (c *MarketCache) store(markets types.MarketMap) {
	bySymbol := make(map[string]types.Market, len(markets))
	byLocal := make(map[string]types.Market, len(markets))
	for _, m := range markets {
		bySymbol[m.Symbol] = m
		byLocal[m.LocalSymbol] = m
	}

	c.mu.Lock()
	c.markets = markets
	c.bySymbol = bySymbol
	c.byLocal = byLocal
	c.mu.Unlock()
}

// Reset drops the cached markets so the next Load fetches again.
func (c *MarketCache) Reset() {
	c.mu.Lock()
	c.markets = nil
	c.bySymbol = nil
	c.byLocal = nil
	c.mu.Unlock()
}

func (c *MarketCache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.markets != nil
}

// Market looks up by unified symbol first, then by local symbol.
func (c *MarketCache) Market(symbol string) (types.Market, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if m, ok := c.bySymbol[symbol]; ok {
		return m, true
	}

	m, ok := c.byLocal[symbol]
	return m, ok
}

// Resolve maps a unified symbol onto its market, loading markets first if
// needed. An unknown symbol is a bad request, not an exchange error.
func (c *MarketCache) Resolve(
	ctx context.Context, symbol string, fetch func(ctx context.Context) (types.MarketMap, error),
) (types.Market, error) {
	if _, err := c.Load(ctx, fetch); err != nil {
		return types.Market{}, err
	}

	m, ok := c.Market(symbol)
	if !ok {
		return types.Market{}, &types.RequestError{
			Kind:     types.ErrBadRequest,
			Exchange: c.exchange,
			Message:  "unknown symbol " + symbol,
		}
	}

	return m, nil
}
