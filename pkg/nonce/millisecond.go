// Package nonce provides the monotonic nonce sources signed private
// requests need for exchange-side replay protection.
package nonce

import (
	"strconv"
	"sync"
	"time"
)

// Millisecond issues wall-clock millisecond nonces that are strictly
// increasing per instance, also when the clock stalls or steps backwards.
type Millisecond struct {
	mu   sync.Mutex
	last int64
}

func NewMillisecondNonce(start time.Time) *Millisecond {
	return &Millisecond{last: start.UnixNano() / int64(time.Millisecond)}
}

func (n *Millisecond) GetInt64() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := time.Now().UnixNano() / int64(time.Millisecond)
	if now <= n.last {
		now = n.last + 1
	}
	n.last = now
	return now
}

func (n *Millisecond) GetString() string {
	return strconv.FormatInt(n.GetInt64(), 10)
}
