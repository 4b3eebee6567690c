package max

import (
	"context"
	"net/url"
	"strconv"
)

type PublicService struct {
	client *RestClient
}

func (s *PublicService) Markets(ctx context.Context) ([]Market, error) {
	req, err := s.client.NewRequest(ctx, "GET", "v2/markets", nil)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var markets []Market
	if err := response.DecodeJSON(&markets); err != nil {
		return nil, err
	}

	return markets, nil
}

func (s *PublicService) Currencies(ctx context.Context) ([]Currency, error) {
	req, err := s.client.NewRequest(ctx, "GET", "v2/currencies", nil)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var currencies []Currency
	if err := response.DecodeJSON(&currencies); err != nil {
		return nil, err
	}

	return currencies, nil
}

func (s *PublicService) Ticker(ctx context.Context, market string) (*Ticker, error) {
	req, err := s.client.NewRequest(ctx, "GET", "v2/tickers/"+market, nil)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var ticker Ticker
	if err := response.DecodeJSON(&ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}

// Tickers returns all tickers keyed by the local market id.
func (s *PublicService) Tickers(ctx context.Context) (map[string]Ticker, error) {
	req, err := s.client.NewRequest(ctx, "GET", "v2/tickers", nil)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var tickers map[string]Ticker
	if err := response.DecodeJSON(&tickers); err != nil {
		return nil, err
	}

	return tickers, nil
}

func (s *PublicService) Depth(ctx context.Context, market string, limit int) (*Depth, error) {
	params := url.Values{}
	params.Set("market", market)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	req, err := s.client.NewRequest(ctx, "GET", "v2/depth", params)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var depth Depth
	if err := response.DecodeJSON(&depth); err != nil {
		return nil, err
	}

	return &depth, nil
}

func (s *PublicService) Trades(ctx context.Context, market string, limit int) ([]Trade, error) {
	params := url.Values{}
	params.Set("market", market)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	req, err := s.client.NewRequest(ctx, "GET", "v2/trades", params)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var trades []Trade
	if err := response.DecodeJSON(&trades); err != nil {
		return nil, err
	}

	return trades, nil
}

// KLines returns candles as raw rows: [timestamp, open, high, low, close,
// volume], timestamps in seconds, period in minutes.
func (s *PublicService) KLines(ctx context.Context, market string, period, limit int, since int64) ([][]float64, error) {
	params := url.Values{}
	params.Set("market", market)
	params.Set("period", strconv.Itoa(period))
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if since > 0 {
		params.Set("timestamp", strconv.FormatInt(since, 10))
	}

	req, err := s.client.NewRequest(ctx, "GET", "v2/k", params)
	if err != nil {
		return nil, err
	}

	response, err := s.client.SendRequest(req)
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	if err := response.DecodeJSON(&rows); err != nil {
		return nil, err
	}

	return rows, nil
}
