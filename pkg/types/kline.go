package types

import (
	"fmt"
	"time"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

// Interval is the candlestick timeframe, in the common "1m"/"1h"/"1d"
// notation.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval4h  Interval = "4h"
	Interval1d  Interval = "1d"
	Interval1w  Interval = "1w"
)

var intervalSeconds = map[Interval]int{
	Interval1m:  60,
	Interval5m:  5 * 60,
	Interval15m: 15 * 60,
	Interval30m: 30 * 60,
	Interval1h:  60 * 60,
	Interval4h:  4 * 60 * 60,
	Interval1d:  24 * 60 * 60,
	Interval1w:  7 * 24 * 60 * 60,
}

func (i Interval) Seconds() int {
	return intervalSeconds[i]
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i.Seconds()) * time.Second
}

func (i Interval) Valid() bool {
	_, ok := intervalSeconds[i]
	return ok
}

type KLine struct {
	Exchange ExchangeName `json:"exchange"`
	Symbol   string       `json:"symbol"`
	Interval Interval     `json:"interval"`

	StartTime Time `json:"startTime"`
	EndTime   Time `json:"endTime"`

	Open   fixedpoint.Value `json:"open"`
	High   fixedpoint.Value `json:"high"`
	Low    fixedpoint.Value `json:"low"`
	Close  fixedpoint.Value `json:"close"`
	Volume fixedpoint.Value `json:"volume"`

	QuoteVolume fixedpoint.Value `json:"quoteVolume,omitempty"`
	Closed      bool             `json:"closed"`
}

func (k KLine) String() string {
	return fmt.Sprintf("%s %s %s O:%s H:%s L:%s C:%s V:%s %s",
		k.Exchange, k.Symbol, k.Interval,
		k.Open.String(), k.High.String(), k.Low.String(), k.Close.String(), k.Volume.String(),
		k.StartTime.Time().Format("2006-01-02 15:04:05"))
}

type KLineQueryOptions struct {
	Limit     int
	StartTime *time.Time
	EndTime   *time.Time
}
