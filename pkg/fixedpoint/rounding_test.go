package fixedpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	v := MustNewFromString("1.23456789")

	assert.Equal(t, "1.2345", v.Round(4, Truncate).String())
	assert.Equal(t, "1.2346", v.Round(4, HalfUp).String())
	assert.Equal(t, "1.2346", v.Round(4, Up).String())
	assert.Equal(t, "1.2345", v.Round(4, Down).String())

	// truncation never rounds away from zero
	neg := MustNewFromString("-1.23456789")
	assert.Equal(t, "-1.2345", neg.Round(4, Truncate).String())
	assert.Equal(t, "-1.2346", neg.Round(4, Down).String())
}

func TestRoundToTick(t *testing.T) {
	v := MustNewFromString("1.00078")
	tick := MustNewFromString("0.0005")

	assert.Equal(t, "1.0005", v.RoundToTick(tick, Truncate).String())
	assert.Equal(t, "1.001", v.RoundToTick(tick, HalfUp).String())

	// zero tick keeps the value untouched
	assert.Equal(t, v, v.RoundToTick(Zero, Truncate))
}

func TestPrecisionFromTickSize(t *testing.T) {
	prec, ok := PrecisionFromTickSize("0.0001")
	assert.True(t, ok)
	assert.Equal(t, 4, prec)

	prec, ok = PrecisionFromTickSize("1")
	assert.True(t, ok)
	assert.Equal(t, 0, prec)

	_, ok = PrecisionFromTickSize("bogus")
	assert.False(t, ok)

	_, ok = PrecisionFromTickSize("0")
	assert.False(t, ok)
}
