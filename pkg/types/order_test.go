package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniex/uniex/pkg/fixedpoint"
)

func TestOrderRemaining(t *testing.T) {
	o := Order{
		SubmitOrder: SubmitOrder{
			Quantity: fixedpoint.MustNewFromString("2"),
		},
		ExecutedQuantity: fixedpoint.MustNewFromString("0.5"),
	}
	assert.Equal(t, "1.5", o.Remaining().String())

	// an exchange-supplied remaining quantity wins over the derivation
	o.RemainingQuantity = fixedpoint.MustNewFromString("1.2")
	assert.Equal(t, "1.2", o.Remaining().String())
}

func TestOrderStatusClosed(t *testing.T) {
	assert.False(t, OrderStatusOpen.Closed())
	for _, s := range []OrderStatus{OrderStatusClosed, OrderStatusCanceled, OrderStatusExpired, OrderStatusRejected} {
		assert.True(t, s.Closed(), "%s", s)
	}
}
