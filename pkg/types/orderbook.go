package types

import (
	"fmt"
	"time"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

type PriceVolume struct {
	Price, Volume fixedpoint.Value
}

func NewPriceVolume(p, v fixedpoint.Value) PriceVolume {
	return PriceVolume{
		Price:  p,
		Volume: v,
	}
}

func (p PriceVolume) InQuote() fixedpoint.Value {
	return p.Price.Mul(p.Volume)
}

func (p PriceVolume) Equals(b PriceVolume) bool {
	return p.Price.Compare(b.Price) == 0 && p.Volume.Compare(b.Volume) == 0
}

func (p PriceVolume) String() string {
	return fmt.Sprintf("PriceVolume{ Price: %s, Volume: %s }", p.Price.String(), p.Volume.String())
}

type PriceVolumeSlice []PriceVolume

func (slice PriceVolumeSlice) Len() int           { return len(slice) }
func (slice PriceVolumeSlice) Less(i, j int) bool { return slice[i].Price.Compare(slice[j].Price) < 0 }
func (slice PriceVolumeSlice) Swap(i, j int)      { slice[i], slice[j] = slice[j], slice[i] }

// Trim removes the pairs that volume = 0
func (slice PriceVolumeSlice) Trim() (pvs PriceVolumeSlice) {
	for _, pv := range slice {
		if pv.Volume.Sign() > 0 {
			pvs = append(pvs, pv)
		}
	}

	return pvs
}

func (slice PriceVolumeSlice) Copy() PriceVolumeSlice {
	var s = make(PriceVolumeSlice, len(slice))
	copy(s, slice)
	return s
}

func (slice PriceVolumeSlice) CopyDepth(depth int) PriceVolumeSlice {
	if depth == 0 || depth > len(slice) {
		return slice.Copy()
	}

	var s = make(PriceVolumeSlice, depth)
	copy(s, slice[:depth])
	return s
}

func (slice PriceVolumeSlice) First() (PriceVolume, bool) {
	if len(slice) > 0 {
		return slice[0], true
	}
	return PriceVolume{}, false
}

func (slice PriceVolumeSlice) SumDepth() fixedpoint.Value {
	var total = fixedpoint.Zero
	for _, pv := range slice {
		total = total.Add(pv.Volume)
	}

	return total
}

func (slice PriceVolumeSlice) SumDepthInQuote() fixedpoint.Value {
	var total = fixedpoint.Zero
	for _, pv := range slice {
		total = total.Add(pv.InQuote())
	}

	return total
}

// SliceOrderBook is the unified order book snapshot: bids sorted by price
// descending, asks ascending, each side unique by price.
type SliceOrderBook struct {
	Symbol string
	Bids   PriceVolumeSlice
	Asks   PriceVolumeSlice

	// Nonce is the exchange-side sequence number of the snapshot, when
	// the exchange provides one.
	Nonce int64

	Time time.Time
}

func NewSliceOrderBook(symbol string) *SliceOrderBook {
	return &SliceOrderBook{
		Symbol: symbol,
	}
}

func (b *SliceOrderBook) BestBid() (PriceVolume, bool) {
	if len(b.Bids) == 0 {
		return PriceVolume{}, false
	}

	return b.Bids[0], true
}

func (b *SliceOrderBook) BestAsk() (PriceVolume, bool) {
	if len(b.Asks) == 0 {
		return PriceVolume{}, false
	}

	return b.Asks[0], true
}

func (b *SliceOrderBook) Spread() (fixedpoint.Value, bool) {
	bestBid, ok := b.BestBid()
	if !ok {
		return fixedpoint.Zero, false
	}

	bestAsk, ok := b.BestAsk()
	if !ok {
		return fixedpoint.Zero, false
	}

	return bestAsk.Price.Sub(bestBid.Price), true
}

func (b *SliceOrderBook) SideBook(sideType SideType) PriceVolumeSlice {
	switch sideType {
	case SideTypeBuy:
		return b.Bids

	case SideTypeSell:
		return b.Asks

	default:
		return nil
	}
}
