package fixedpoint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

const Delta = 1e-9

func TestMulString(t *testing.T) {
	x := MustNewFromString("10.55")
	assert.Equal(t, "10.55", x.String())
	y := MustNewFromString("10.55")
	x = x.Mul(y)
	assert.Equal(t, "111.3025", x.String())
	assert.Equal(t, "111.30", x.FormatString(2))
	assert.InDelta(t, 111.3025, x.Float64(), Delta)
}

func TestNew(t *testing.T) {
	f := NewFromFloat(0.001)
	assert.Equal(t, "0.001", f.String())
	assert.Equal(t, "0.0010", f.FormatString(4))
	assert.Equal(t, "0.1%", f.Percentage())
	assert.Equal(t, "0.10%", f.FormatPercentage(2))
}

func TestTryNewFromString(t *testing.T) {
	_, ok := TryNewFromString("not-a-number")
	assert.False(t, ok)

	_, ok = TryNewFromString("")
	assert.False(t, ok)

	v, ok := TryNewFromString("3.1415")
	assert.True(t, ok)
	assert.Equal(t, "3.1415", v.String())
}

func TestNumFractionalDigits(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want int
	}{
		{
			name: "over the default precision",
			v:    MustNewFromString("0.123456789"),
			want: 9,
		},
		{
			name: "ignore the integer part",
			v:    MustNewFromString("123.4567"),
			want: 4,
		},
		{
			name: "ignore the sign",
			v:    MustNewFromString("-123.4567"),
			want: 4,
		},
		{
			name: "ignore the trailing zero",
			v:    MustNewFromString("-123.45000000"),
			want: 2,
		},
		{
			name: "no fractional parts",
			v:    MustNewFromString("-1"),
			want: 0,
		},
		{
			name: "only fractional part",
			v:    MustNewFromString(".123456"),
			want: 6,
		},
		{
			name: "percentage",
			v:    MustNewFromString("0.075%"),
			want: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.NumFractionalDigits())
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var v Value
	assert.NoError(t, json.Unmarshal([]byte(`"100.5"`), &v))
	assert.Equal(t, "100.5", v.String())

	assert.NoError(t, json.Unmarshal([]byte(`100.5`), &v))
	assert.Equal(t, "100.5", v.String())

	assert.NoError(t, json.Unmarshal([]byte(`""`), &v))
	assert.True(t, v.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &v))
}

func TestMinMax(t *testing.T) {
	a := NewFromInt(3)
	b := NewFromInt(5)
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, b, Max(a, b))
}
