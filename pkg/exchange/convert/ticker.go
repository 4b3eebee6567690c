package convert

import (
	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

// FillDerivedTicker fills the derivable ticker statistics that the
// exchange did not supply. Exchange-supplied values are never overwritten:
//
//	change     = last - open
//	percentage = change / open * 100
//	average    = (open + last) / 2
//	vwap       = quoteVolume / baseVolume
func FillDerivedTicker(t *types.Ticker) {
	if !t.Open.IsZero() && !t.Last.IsZero() {
		if t.Change.IsZero() {
			t.Change = t.Last.Sub(t.Open)
		}

		if t.Percentage.IsZero() && t.Open.Sign() > 0 {
			t.Percentage = t.Change.Div(t.Open).Mul(fixedpoint.Hundred)
		}

		if t.Average.IsZero() {
			t.Average = t.Open.Add(t.Last).Div(fixedpoint.Two)
		}
	}

	if t.VWAP.IsZero() && !t.QuoteVolume.IsZero() && t.Volume.Sign() > 0 {
		t.VWAP = t.QuoteVolume.Div(t.Volume)
	}
}
