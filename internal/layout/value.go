package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Sized by the parent's flow
	UnitFixed               // Absolute layout units
	UnitPercent             // Percentage of the parent's content box
)

// Value is a width or height: fixed, percentage or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value sized by the parent's flow.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value of n layout units.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value on a 0-100 scale of the available space.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the size given the available space. Auto resolves to
// fallback. The result is never negative.
func (v Value) Resolve(available, fallback int) int {
	var n int
	switch v.Unit {
	case UnitFixed:
		n = int(v.Amount)
	case UnitPercent:
		n = int(float64(available) * v.Amount / 100.0)
	default:
		n = fallback
	}
	return max(n, 0)
}

// IsAuto reports whether the size comes from the parent's flow.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
