package types

import (
	"fmt"
	"time"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

// Ticker is the unified 24h market statistics snapshot. Zero fields mean
// the exchange did not supply the value; the convert package derives the
// derivable ones (change, percentage, average, vwap) after parsing.
type Ticker struct {
	Symbol string    `json:"symbol"`
	Time   time.Time `json:"time"`

	High fixedpoint.Value `json:"high,omitempty"`
	Low  fixedpoint.Value `json:"low,omitempty"`

	Bid       fixedpoint.Value `json:"bid,omitempty"`
	BidVolume fixedpoint.Value `json:"bidVolume,omitempty"`
	Ask       fixedpoint.Value `json:"ask,omitempty"`
	AskVolume fixedpoint.Value `json:"askVolume,omitempty"`

	Open          fixedpoint.Value `json:"open,omitempty"`
	Last          fixedpoint.Value `json:"last,omitempty"`
	PreviousClose fixedpoint.Value `json:"previousClose,omitempty"`

	Change     fixedpoint.Value `json:"change,omitempty"`
	Percentage fixedpoint.Value `json:"percentage,omitempty"`
	Average    fixedpoint.Value `json:"average,omitempty"`
	VWAP       fixedpoint.Value `json:"vwap,omitempty"`

	Volume      fixedpoint.Value `json:"volume,omitempty"`      // base volume
	QuoteVolume fixedpoint.Value `json:"quoteVolume,omitempty"` // quote volume
}

// GetValidPrice returns the first usable price of last, bid, ask, open.
func (t *Ticker) GetValidPrice() fixedpoint.Value {
	if !t.Last.IsZero() {
		return t.Last
	}

	if !t.Bid.IsZero() {
		return t.Bid
	}

	if !t.Ask.IsZero() {
		return t.Ask
	}

	return t.Open
}

func (t *Ticker) String() string {
	return fmt.Sprintf("%s O:%s H:%s L:%s LAST:%s BID/ASK:%s/%s TIME:%s",
		t.Symbol, t.Open, t.High, t.Low, t.Last, t.Bid, t.Ask, t.Time.String())
}
