package types

import (
	"encoding/json"
	"fmt"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

// Trade is a unified public or private fill. QuoteQuantity is always
// populated: when the exchange does not supply the traded quote value the
// convert package derives it from price * quantity.
type Trade struct {
	// ID is the exchange-native trade id, kept as a string since not every
	// exchange uses numeric ids.
	ID      string `json:"id"`
	OrderID string `json:"orderID,omitempty"`

	Exchange ExchangeName `json:"exchange"`
	Symbol   string       `json:"symbol"`

	Price         fixedpoint.Value `json:"price"`
	Quantity      fixedpoint.Value `json:"quantity"`
	QuoteQuantity fixedpoint.Value `json:"quoteQuantity"`

	// Side is BUY or SELL, or empty when the payload gives no way to tell.
	Side      SideType      `json:"side"`
	Liquidity LiquidityType `json:"liquidity,omitempty"`

	Time Time `json:"tradedAt"`

	Fee         fixedpoint.Value `json:"fee,omitempty"`
	FeeCurrency string           `json:"feeCurrency,omitempty"`

	Info json.RawMessage `json:"info,omitempty"`
}

func (trade Trade) String() string {
	return fmt.Sprintf("TRADE %s %s %4s %s @ %s orderID %s %s amount %s fee %s %s",
		trade.Exchange.String(),
		trade.Symbol,
		trade.Side,
		trade.Quantity.String(),
		trade.Price.String(),
		trade.OrderID,
		trade.Time.Time().Format("2006-01-02 15:04:05"),
		trade.QuoteQuantity.String(),
		trade.Fee.String(),
		trade.FeeCurrency)
}

func (trade Trade) PositionChange() fixedpoint.Value {
	q := trade.Quantity
	switch trade.Side {
	case SideTypeSell:
		return q.Neg()

	case SideTypeBuy:
		return q
	}
	return fixedpoint.Zero
}
