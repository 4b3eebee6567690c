package types

import (
	"encoding/json"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

// Market describes one tradable pair of an exchange in the unified shape.
// Symbol is always BaseCurrency + "/" + QuoteCurrency; LocalSymbol is
// whatever the exchange natively calls the pair ("BTCUSDT", "btctwd", ...).
type Market struct {
	Symbol      string `json:"symbol"`
	LocalSymbol string `json:"localSymbol,omitempty"` // LocalSymbol is used for the exchange's API

	BaseCurrency  string `json:"baseCurrency"`
	QuoteCurrency string `json:"quoteCurrency"`

	// LocalBaseCurrency / LocalQuoteCurrency keep the exchange-native
	// currency ids before canonicalization.
	LocalBaseCurrency  string `json:"localBaseCurrency,omitempty"`
	LocalQuoteCurrency string `json:"localQuoteCurrency,omitempty"`

	Active bool `json:"active"`

	PricePrecision  int `json:"pricePrecision"`
	VolumePrecision int `json:"volumePrecision"`

	// TickSize is the minimum price increment, StepSize the minimum
	// quantity increment.
	TickSize fixedpoint.Value `json:"tickSize,omitempty"`
	StepSize fixedpoint.Value `json:"stepSize,omitempty"`

	MinQuantity fixedpoint.Value `json:"minQuantity,omitempty"`
	MaxQuantity fixedpoint.Value `json:"maxQuantity,omitempty"`
	MinPrice    fixedpoint.Value `json:"minPrice,omitempty"`
	MaxPrice    fixedpoint.Value `json:"maxPrice,omitempty"`

	// MinNotional is the minimum order value (price * quantity).
	MinNotional fixedpoint.Value `json:"minNotional,omitempty"`

	// Info keeps the raw exchange record for fields the unified shape
	// does not model.
	Info json.RawMessage `json:"info,omitempty"`
}

// FormatPrice truncates the price to the market tick size and renders it
// with the price precision. Truncation, not rounding: a formatted price
// must never exceed what the caller asked for.
func (m Market) FormatPrice(price fixedpoint.Value) string {
	if !m.TickSize.IsZero() {
		price = price.RoundToTick(m.TickSize, fixedpoint.Truncate)
	}
	return price.FormatString(m.PricePrecision)
}

func (m Market) FormatQuantity(quantity fixedpoint.Value) string {
	if !m.StepSize.IsZero() {
		quantity = quantity.RoundToTick(m.StepSize, fixedpoint.Truncate)
	}
	return quantity.FormatString(m.VolumePrecision)
}

// TruncatePrice removes the fraction part that is smaller than the tick size.
func (m Market) TruncatePrice(price fixedpoint.Value) fixedpoint.Value {
	if m.TickSize.IsZero() {
		return price.Round(m.PricePrecision, fixedpoint.Truncate)
	}
	return price.RoundToTick(m.TickSize, fixedpoint.Truncate)
}

func (m Market) TruncateQuantity(quantity fixedpoint.Value) fixedpoint.Value {
	if m.StepSize.IsZero() {
		return quantity.Round(m.VolumePrecision, fixedpoint.Truncate)
	}
	return quantity.RoundToTick(m.StepSize, fixedpoint.Truncate)
}

type MarketMap map[string]Market

func (m MarketMap) Add(market Market) {
	m[market.Symbol] = market
}

func (m MarketMap) Has(symbol string) bool {
	_, ok := m[symbol]
	return ok
}
