package types

// SideType define side type of order
type SideType string

const (
	SideTypeBuy  = SideType("BUY")
	SideTypeSell = SideType("SELL")

	// SideTypeNone marks a trade whose side could not be established from
	// the exchange payload. It is deliberately not guessed.
	SideTypeNone = SideType("")
)

func (side SideType) Reverse() SideType {
	switch side {
	case SideTypeBuy:
		return SideTypeSell

	case SideTypeSell:
		return SideTypeBuy
	}

	return side
}

func (side SideType) String() string {
	return string(side)
}

// LiquidityType classifies a fill as removing (taker) or adding (maker)
// liquidity. The empty value means the exchange did not tell.
type LiquidityType string

const (
	LiquidityTaker = LiquidityType("taker")
	LiquidityMaker = LiquidityType("maker")
)
