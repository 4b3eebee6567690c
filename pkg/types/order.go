package types

import (
	"encoding/json"
	"fmt"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

// OrderType define order type
type OrderType string

const (
	OrderTypeLimit      OrderType = "LIMIT"
	OrderTypeMarket     OrderType = "MARKET"
	OrderTypeStopLimit  OrderType = "STOP_LIMIT"
	OrderTypeStopMarket OrderType = "STOP_MARKET"
)

type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
)

// OrderStatus is the closed unified vocabulary. Per-adapter status maps
// resolve the exchange-native strings onto it; an unmapped native status
// passes through unchanged (see convert.StatusMap) so a new exchange-side
// value degrades gracefully instead of breaking the adapter.
type OrderStatus string

const (
	OrderStatusOpen     OrderStatus = "open"
	OrderStatusClosed   OrderStatus = "closed"
	OrderStatusCanceled OrderStatus = "canceled"
	OrderStatusExpired  OrderStatus = "expired"
	OrderStatusRejected OrderStatus = "rejected"
)

func (s OrderStatus) Closed() bool {
	switch s {
	case OrderStatusClosed, OrderStatusCanceled, OrderStatusExpired, OrderStatusRejected:
		return true
	}
	return false
}

// SubmitOrder is the caller-side order request.
type SubmitOrder struct {
	// ClientOrderID doubles as the idempotency token: resubmitting with the
	// same id must not create a duplicate order on exchanges that honor it.
	ClientOrderID string `json:"clientOrderID,omitempty"`

	Symbol string    `json:"symbol"`
	Side   SideType  `json:"side"`
	Type   OrderType `json:"orderType"`

	Quantity  fixedpoint.Value `json:"quantity"`
	Price     fixedpoint.Value `json:"price,omitempty"`
	StopPrice fixedpoint.Value `json:"stopPrice,omitempty"`

	TimeInForce TimeInForce `json:"timeInForce,omitempty"`
	PostOnly    bool        `json:"postOnly,omitempty"`

	Market Market `json:"-"`
}

func (o SubmitOrder) String() string {
	if o.Type == OrderTypeMarket {
		return fmt.Sprintf("SubmitOrder %s %s %s %s", o.Symbol, o.Type, o.Side, o.Quantity.String())
	}

	return fmt.Sprintf("SubmitOrder %s %s %s %s @ %s", o.Symbol, o.Type, o.Side, o.Quantity.String(), o.Price.String())
}

// Order is the unified exchange-side order state.
type Order struct {
	SubmitOrder

	OrderID string `json:"orderID"`

	Exchange ExchangeName `json:"exchange"`

	Status OrderStatus `json:"status"`

	// OriginalStatus always keeps the exchange-native status string, also
	// when Status resolved to one of the unified values.
	OriginalStatus string `json:"originalStatus,omitempty"`

	ExecutedQuantity fixedpoint.Value `json:"executedQuantity"`

	// RemainingQuantity = Quantity - ExecutedQuantity unless the exchange
	// supplies it directly.
	RemainingQuantity fixedpoint.Value `json:"remainingQuantity,omitempty"`

	// QuoteQuantity is the executed order value in the quote currency.
	QuoteQuantity fixedpoint.Value `json:"quoteQuantity,omitempty"`

	AveragePrice fixedpoint.Value `json:"averagePrice,omitempty"`

	Fee         fixedpoint.Value `json:"fee,omitempty"`
	FeeCurrency string           `json:"feeCurrency,omitempty"`

	CreationTime Time `json:"creationTime"`
	UpdateTime   Time `json:"updateTime,omitempty"`

	IsWorking bool `json:"isWorking"`

	Info json.RawMessage `json:"info,omitempty"`
}

func (o Order) String() string {
	return fmt.Sprintf("ORDER %s %s %s %s %s %s @ %s -> executed %s, status %s",
		o.Exchange.String(),
		o.CreationTime.Time().Format("2006-01-02 15:04:05"),
		o.OrderID,
		o.Symbol,
		o.Side,
		o.Quantity.String(),
		o.Price.String(),
		o.ExecutedQuantity.String(),
		o.Status)
}

// Remaining returns the remaining quantity, deriving it from quantity and
// executed quantity when the exchange did not supply one.
func (o Order) Remaining() fixedpoint.Value {
	if !o.RemainingQuantity.IsZero() {
		return o.RemainingQuantity
	}
	if o.Quantity.IsZero() {
		return fixedpoint.Zero
	}
	return o.Quantity.Sub(o.ExecutedQuantity)
}

type OrderSlice []Order

// OrderQuery identifies one order for the query/cancel operations. Either
// the exchange order id or the client order id must be set.
type OrderQuery struct {
	Symbol        string
	OrderID       string
	ClientOrderID string
}
