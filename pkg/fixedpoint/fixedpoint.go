package fixedpoint

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const DefaultPrecision = 8

// Value is an exact decimal number. Exchange payloads carry prices and
// amounts as strings; Value keeps them decimal all the way through the
// pipeline, converting to float64 only at the edge.
type Value struct {
	d decimal.Decimal
}

var (
	Zero    = Value{}
	One     = NewFromInt(1)
	NegOne  = NewFromInt(-1)
	Two     = NewFromInt(2)
	Hundred = NewFromInt(100)
)

func NewFromInt(n int64) Value {
	return Value{d: decimal.NewFromInt(n)}
}

func NewFromFloat(f float64) Value {
	return Value{d: decimal.NewFromFloat(f)}
}

// NewFromString parses a decimal string. A trailing "%" divides the parsed
// value by 100, e.g. "0.075%" => 0.00075.
func NewFromString(input string) (Value, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Zero, errors.New("fixedpoint: empty string")
	}

	percent := false
	if strings.HasSuffix(input, "%") {
		percent = true
		input = strings.TrimSuffix(input, "%")
	}

	d, err := decimal.NewFromString(input)
	if err != nil {
		return Zero, errors.Wrapf(err, "fixedpoint: can not parse %q", input)
	}

	if percent {
		d = d.Shift(-2)
	}

	return Value{d: d}, nil
}

func MustNewFromString(input string) Value {
	v, err := NewFromString(input)
	if err != nil {
		panic(err)
	}
	return v
}

// TryNewFromString is the lenient constructor used by the normalizers: a
// malformed or empty numeric field yields (Zero, false) instead of an error.
func TryNewFromString(input string) (Value, bool) {
	v, err := NewFromString(input)
	if err != nil {
		return Zero, false
	}
	return v, true
}

func (v Value) Add(v2 Value) Value { return Value{d: v.d.Add(v2.d)} }
func (v Value) Sub(v2 Value) Value { return Value{d: v.d.Sub(v2.d)} }
func (v Value) Mul(v2 Value) Value { return Value{d: v.d.Mul(v2.d)} }
func (v Value) Neg() Value         { return Value{d: v.d.Neg()} }
func (v Value) Abs() Value         { return Value{d: v.d.Abs()} }

// Div panics on division by zero, same as the underlying decimal. Callers
// guard with IsZero.
func (v Value) Div(v2 Value) Value { return Value{d: v.d.Div(v2.d)} }

func (v Value) Compare(v2 Value) int { return v.d.Cmp(v2.d) }
func (v Value) Sign() int            { return v.d.Sign() }
func (v Value) IsZero() bool         { return v.d.IsZero() }

func (v Value) Float64() float64 {
	f, _ := v.d.Float64()
	return f
}

func (v Value) Int64() int64 {
	return v.d.IntPart()
}

func (v Value) String() string {
	return v.d.String()
}

// FormatString renders the value with exactly prec fractional digits,
// truncating the excess.
func (v Value) FormatString(prec int) string {
	return v.d.Truncate(int32(prec)).StringFixed(int32(prec))
}

func (v Value) Percentage() string {
	return v.d.Shift(2).String() + "%"
}

func (v Value) FormatPercentage(prec int) string {
	return v.d.Shift(2).StringFixed(int32(prec)) + "%"
}

// NumFractionalDigits returns the number of significant fractional digits,
// ignoring trailing zeros: 0.0010 has 3.
func (v Value) NumFractionalDigits() int {
	s := v.d.String()
	idx := strings.Index(s, ".")
	if idx < 0 {
		return 0
	}

	frac := strings.TrimRight(s[idx+1:], "0")
	return len(frac)
}

// NumIntDigits returns the number of digits of the integer part,
// ignoring the sign.
func (v Value) NumIntDigits() int {
	s := v.d.Abs().Truncate(0).String()
	if s == "0" {
		return 1
	}
	return len(s)
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.d.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and numeric strings, since
// exchanges disagree about which to emit. An empty string decodes to Zero.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*v = Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.Wrapf(err, "fixedpoint: can not unmarshal %q", string(data))
	}

	*v = Value{d: d}
	return nil
}

func (v *Value) UnmarshalYAML(unmarshal func(a interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		nv, err2 := NewFromString(s)
		if err2 != nil {
			return err2
		}
		*v = nv
		return nil
	}

	var f float64
	if err := unmarshal(&f); err == nil {
		*v = NewFromFloat(f)
		return nil
	}

	var i int64
	err := unmarshal(&i)
	if err == nil {
		*v = NewFromInt(i)
	}
	return err
}

func Min(a, b Value) Value {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

func Max(a, b Value) Value {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

var _ json.Marshaler = Value{}
var _ json.Unmarshaler = (*Value)(nil)
