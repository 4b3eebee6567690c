package exchange

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniex/uniex/pkg/types"
)

func testMarkets() types.MarketMap {
	m := types.MarketMap{}
	m.Add(types.Market{
		Symbol:        "BTC/USDT",
		LocalSymbol:   "BTCUSDT",
		BaseCurrency:  "BTC",
		QuoteCurrency: "USDT",
		Active:        true,
	})
	m.Add(types.Market{
		Symbol:        "ETH/USDT",
		LocalSymbol:   "ETHUSDT",
		BaseCurrency:  "ETH",
		QuoteCurrency: "USDT",
		Active:        true,
	})
	return m
}

func TestMarketCache_LoadOnce(t *testing.T) {
	cache := NewMarketCache(types.ExchangeBinance)

	var calls int32
	fetch := func(ctx context.Context) (types.MarketMap, error) {
		atomic.AddInt32(&calls, 1)
		return testMarkets(), nil
	}

	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Load(ctx, fetch)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.True(t, cache.Loaded())
}

func TestMarketCache_SymbolRoundTrip(t *testing.T) {
	cache := NewMarketCache(types.ExchangeBinance)
	ctx := context.Background()

	markets, err := cache.Load(ctx, func(ctx context.Context) (types.MarketMap, error) {
		return testMarkets(), nil
	})
	require.NoError(t, err)

	for _, m := range markets {
		assert.Equal(t, m.BaseCurrency+"/"+m.QuoteCurrency, m.Symbol)

		bySymbol, ok := cache.Market(m.Symbol)
		require.True(t, ok)
		byLocal, ok := cache.Market(m.LocalSymbol)
		require.True(t, ok)
		assert.Equal(t, bySymbol, byLocal)
	}
}

func TestMarketCache_ResolveUnknownSymbol(t *testing.T) {
	cache := NewMarketCache(types.ExchangeBinance)
	ctx := context.Background()

	fetch := func(ctx context.Context) (types.MarketMap, error) {
		return testMarkets(), nil
	}

	_, err := cache.Resolve(ctx, "DOGE/MOON", fetch)
	assert.True(t, errors.Is(err, types.ErrBadRequest))

	m, err := cache.Resolve(ctx, "BTC/USDT", fetch)
	assert.NoError(t, err)
	assert.Equal(t, "BTCUSDT", m.LocalSymbol)
}

func TestMarketCache_FetchErrorNotCached(t *testing.T) {
	cache := NewMarketCache(types.ExchangeBinance)
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := cache.Load(ctx, func(ctx context.Context) (types.MarketMap, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, cache.Loaded())

	// next load retries and succeeds
	markets, err := cache.Load(ctx, func(ctx context.Context) (types.MarketMap, error) {
		return testMarkets(), nil
	})
	assert.NoError(t, err)
	assert.Len(t, markets, 2)
}
