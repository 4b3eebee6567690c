package fixedpoint

// RoundingMode selects how Round treats digits beyond the requested
// precision.
type RoundingMode int

const (
	// Truncate drops excess digits, never moving away from zero.
	Truncate RoundingMode = iota

	// HalfUp rounds half away from zero (the common "round" semantics).
	HalfUp

	// Up rounds toward positive infinity.
	Up

	// Down rounds toward negative infinity.
	Down
)

// Round returns v with at most prec fractional digits under the given mode.
func (v Value) Round(prec int, mode RoundingMode) Value {
	switch mode {
	case HalfUp:
		return Value{d: v.d.Round(int32(prec))}
	case Up:
		return Value{d: v.d.RoundCeil(int32(prec))}
	case Down:
		return Value{d: v.d.RoundFloor(int32(prec))}
	default:
		return Value{d: v.d.Truncate(int32(prec))}
	}
}

// RoundToTick snaps v onto the grid defined by a minimum increment, e.g.
// tick 0.0005 turns 1.00071 into 1.0005 under Truncate.
func (v Value) RoundToTick(tick Value, mode RoundingMode) Value {
	if tick.IsZero() {
		return v
	}

	steps := Value{d: v.d.DivRound(tick.d, 32)}.Round(0, mode)
	return steps.Mul(tick)
}

// PrecisionFromTickSize converts a minimum-increment string into a number
// of fractional digits: "0.0001" => 4. Returns false for malformed input
// or a tick that is not a plain power-of-ten style increment of zero value.
func PrecisionFromTickSize(tick string) (int, bool) {
	v, ok := TryNewFromString(tick)
	if !ok || v.IsZero() {
		return 0, false
	}
	return v.NumFractionalDigits(), true
}
