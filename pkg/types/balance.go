package types

import (
	"fmt"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

// Balance is the unified per-currency account balance.
// Total() == Available + Locked always holds: when an exchange supplies
// only two of free/used/total, the convert package derives the third.
type Balance struct {
	Currency  string           `json:"currency"`
	Available fixedpoint.Value `json:"available"`
	Locked    fixedpoint.Value `json:"locked,omitempty"`
}

func (b Balance) Total() fixedpoint.Value {
	return b.Available.Add(b.Locked)
}

func (b Balance) String() string {
	return fmt.Sprintf("%s: %s (locked %s)", b.Currency, b.Available.String(), b.Locked.String())
}

type BalanceMap map[string]Balance

func (m BalanceMap) Add(b Balance) {
	m[b.Currency] = b
}

func (m BalanceMap) Has(currency string) bool {
	_, ok := m[currency]
	return ok
}

// NotZero filters out the all-zero entries most exchanges pad their
// account responses with.
func (m BalanceMap) NotZero() BalanceMap {
	bm := make(BalanceMap)
	for c, b := range m {
		if b.Total().IsZero() {
			continue
		}
		bm[c] = b
	}
	return bm
}

func (m BalanceMap) Copy() BalanceMap {
	var d = make(BalanceMap)
	for c, b := range m {
		d[c] = b
	}
	return d
}
