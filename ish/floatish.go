package ish

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Float is a fuzzy float: a value with an absolute tolerance.
type Float struct {
	value float64
	fudge float64
}

// FromFloat widens f to float64 and wraps it with DefaultFudge.
func FromFloat[F constraints.Float](f F) Float {
	return Float{value: float64(f), fudge: DefaultFudge}
}

// Value returns the wrapped value.
func (f Float) Value() float64 {
	return f.value
}

// Fudge returns the tolerance.
func (f Float) Fudge() float64 {
	return f.fudge
}

// Equal reports whether |value - c| <= fudge. The bound is inclusive.
// NaN on either side never compares equal.
func (f Float) Equal(c float64) bool {
	return math.Abs(f.value-c) <= f.fudge
}

// EqualFloat32 widens c and compares it like Equal.
func (f Float) EqualFloat32(c float32) bool {
	return f.Equal(float64(c))
}

// EqualFloat compares f against a float of either width.
func EqualFloat[F constraints.Float](f Float, c F) bool {
	return f.Equal(float64(c))
}

// String renders "<value> ±<fudge>", e.g. "3.1 ±0.0001".
func (f Float) String() string {
	return formatFloat(f.value) + " ±" + formatFloat(f.fudge)
}

// formatFloat uses the shortest round-trip form without an exponent.
// Infinities render as "inf" and "-inf".
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
