package convert

import (
	"strings"

	"github.com/uniex/uniex/pkg/types"
)

// ParseSide resolves an exchange-native side vocabulary onto BUY/SELL.
// Unknown vocabulary yields SideTypeNone: a side is never guessed.
func ParseSide(native string) types.SideType {
	switch strings.ToLower(strings.TrimSpace(native)) {
	case "buy", "bid", "b", "1", "buy_limit", "buy_market":
		return types.SideTypeBuy
	case "sell", "ask", "a", "s", "2", "sell_limit", "sell_market":
		return types.SideTypeSell
	}

	return types.SideTypeNone
}

// TakerSideFromBuyerMaker infers the taker side of a public trade from the
// buyer-is-maker flag: when the buyer was the maker, the aggressing side
// sold.
func TakerSideFromBuyerMaker(isBuyerMaker bool) types.SideType {
	if isBuyerMaker {
		return types.SideTypeSell
	}
	return types.SideTypeBuy
}

// FillTradeDerivedFields computes the quote quantity (cost) when the
// exchange did not supply it. Supplied values are kept untouched.
func FillTradeDerivedFields(trade *types.Trade) {
	if trade.QuoteQuantity.IsZero() && !trade.Price.IsZero() && !trade.Quantity.IsZero() {
		trade.QuoteQuantity = trade.Price.Mul(trade.Quantity)
	}
}
