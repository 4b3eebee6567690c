package convert

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/uniex/uniex/pkg/types"
)

// StatusMap resolves exchange-native order status strings onto the closed
// unified vocabulary.
type StatusMap map[string]types.OrderStatus

// Resolve is lenient: an unmapped native status passes through unchanged
// so a new exchange-side value degrades gracefully instead of breaking the
// adapter. Callers keep the raw value in Order.OriginalStatus either way.
func (m StatusMap) Resolve(native string) types.OrderStatus {
	if status, ok := m[native]; ok {
		return status
	}

	if status, ok := m[strings.ToLower(native)]; ok {
		return status
	}

	return types.OrderStatus(native)
}

// ParseCompositeOrderType splits the "buy_limit" style combined side+type
// encoding some exchanges use.
func ParseCompositeOrderType(native string) (types.SideType, types.OrderType, error) {
	parts := strings.SplitN(strings.ToLower(native), "_", 2)
	if len(parts) != 2 {
		return "", "", errors.Errorf("can not decode composite order type %q", native)
	}

	side := ParseSide(parts[0])
	if side == types.SideTypeNone {
		return "", "", errors.Errorf("unknown side in composite order type %q", native)
	}

	var orderType types.OrderType
	switch parts[1] {
	case "limit":
		orderType = types.OrderTypeLimit
	case "market":
		orderType = types.OrderTypeMarket
	case "stop_limit", "stoplimit":
		orderType = types.OrderTypeStopLimit
	case "stop_market", "stopmarket":
		orderType = types.OrderTypeStopMarket
	default:
		return "", "", errors.Errorf("unknown type in composite order type %q", native)
	}

	return side, orderType, nil
}

// FillOrderDerivedFields completes filled/remaining/cost from what the
// exchange supplied, never overwriting a supplied value.
func FillOrderDerivedFields(order *types.Order) {
	if order.RemainingQuantity.IsZero() && !order.Quantity.IsZero() {
		order.RemainingQuantity = order.Quantity.Sub(order.ExecutedQuantity)
	}

	if order.ExecutedQuantity.IsZero() && !order.Quantity.IsZero() && !order.RemainingQuantity.IsZero() {
		order.ExecutedQuantity = order.Quantity.Sub(order.RemainingQuantity)
	}

	if order.QuoteQuantity.IsZero() && !order.ExecutedQuantity.IsZero() {
		price := order.AveragePrice
		if price.IsZero() {
			price = order.Price
		}
		if !price.IsZero() {
			order.QuoteQuantity = order.ExecutedQuantity.Mul(price)
		}
	}

	if order.AveragePrice.IsZero() && !order.QuoteQuantity.IsZero() && order.ExecutedQuantity.Sign() > 0 {
		order.AveragePrice = order.QuoteQuantity.Div(order.ExecutedQuantity)
	}
}
