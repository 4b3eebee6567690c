package types

import (
	"encoding/json"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

// Currency is the unified per-asset record. Code is the canonicalized
// upper-cased ticker; LocalCode keeps what the exchange natively uses.
type Currency struct {
	Code      string `json:"code"`
	LocalCode string `json:"localCode,omitempty"`
	Name      string `json:"name,omitempty"`

	Active bool `json:"active"`

	// Fee is the withdrawal fee the exchange charges for this asset.
	Fee       fixedpoint.Value `json:"fee,omitempty"`
	Precision int              `json:"precision,omitempty"`

	MinWithdrawAmount fixedpoint.Value `json:"minWithdrawAmount,omitempty"`
	MaxWithdrawAmount fixedpoint.Value `json:"maxWithdrawAmount,omitempty"`

	Info json.RawMessage `json:"info,omitempty"`
}

type CurrencyMap map[string]Currency

func (m CurrencyMap) Add(c Currency) {
	m[c.Code] = c
}
