package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

func TestBalanceTotal(t *testing.T) {
	b := Balance{
		Currency:  "BTC",
		Available: fixedpoint.MustNewFromString("0.5"),
		Locked:    fixedpoint.MustNewFromString("0.25"),
	}
	assert.Equal(t, "0.75", b.Total().String())
}

func TestBalanceMapNotZero(t *testing.T) {
	m := BalanceMap{
		"BTC": Balance{Currency: "BTC", Available: fixedpoint.One},
		"DUST": Balance{Currency: "DUST"},
	}

	filtered := m.NotZero()
	assert.Len(t, filtered, 1)
	assert.True(t, filtered.Has("BTC"))
}
