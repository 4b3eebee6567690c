package convert

import (
	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

// DeriveBalance builds a unified balance from whatever subset of
// free/used/total the exchange reported, deriving a missing component from
// the summing relation total = free + used.
func DeriveBalance(currency string, free, used, total fixedpoint.Value) types.Balance {
	b := types.Balance{
		Currency:  CanonicalCurrency(currency),
		Available: free,
		Locked:    used,
	}

	if total.IsZero() {
		return b
	}

	if free.IsZero() && !used.IsZero() {
		b.Available = total.Sub(used)
	} else if used.IsZero() && !free.IsZero() {
		b.Locked = total.Sub(free)
	} else if free.IsZero() && used.IsZero() {
		b.Available = total
	}

	return b
}
