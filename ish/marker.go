package ish

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultFudge is the tolerance used when a Float is built without an
// explicit one.
const DefaultFudge = 1e-7

// Errors
var (
	// ErrInvalidTolerance is returned when a marker is built with a negative
	// or NaN tolerance.
	ErrInvalidTolerance = errors.New("ish: invalid tolerance")

	// ErrNoValue is reported by Result.Get for a failure that carried no error.
	ErrNoValue = errors.New("ish: failed result without error")
)

// Marker turns a primitive into its fuzzy wrapper.
//
// The zero Marker has a tolerance of 0, so floats built from it compare
// exactly. Use Ish for the default tolerance.
type Marker struct {
	fudge float64
}

// Ish is the default marker. Its tolerance is DefaultFudge.
var Ish = Marker{fudge: DefaultFudge}

// NewMarker creates a marker carrying an explicit float tolerance.
// Negative and NaN tolerances are rejected; +Inf is allowed.
func NewMarker(fudge float64) (Marker, error) {
	if math.IsNaN(fudge) || fudge < 0 {
		return Marker{}, fmt.Errorf("%w: %v", ErrInvalidTolerance, fudge)
	}
	return Marker{fudge: fudge}, nil
}

// MustMarker is like NewMarker but panics on an invalid tolerance.
func MustMarker(fudge float64) Marker {
	m, err := NewMarker(fudge)
	if err != nil {
		panic(err)
	}
	return m
}

// Fudge returns the marker's tolerance.
func (m Marker) Fudge() float64 {
	return m.fudge
}

// Bool wraps b. The tolerance plays no part in boolean comparisons.
func (m Marker) Bool(b bool) Bool {
	return Bool{intent: b}
}

// Float wraps f with the marker's tolerance.
func (m Marker) Float(f float64) Float {
	return Float{value: f, fudge: m.fudge}
}

// Float32 widens f and wraps it with the marker's tolerance.
func (m Marker) Float32(f float32) Float {
	return Float{value: float64(f), fudge: m.fudge}
}

// Sub is the infix spelling of the marker: Sub(true, Ish) is Ish.Bool(true)
// and Sub(1.5, Ish) is Ish.Float(1.5). The result is a Bool or a Float.
func Sub[T bool | float32 | float64](v T, m Marker) any {
	switch v := any(v).(type) {
	case bool:
		return m.Bool(v)
	case float32:
		return m.Float32(v)
	case float64:
		return m.Float(v)
	}
	// Unreachable: the type set is closed.
	panic("ish: unsupported primitive")
}

// SubBool is Sub for booleans, returning the Bool directly.
func SubBool(b bool, m Marker) Bool {
	return m.Bool(b)
}

// SubFloat is Sub for floats of either width, returning the Float directly.
func SubFloat[F constraints.Float](f F, m Marker) Float {
	return Float{value: float64(f), fudge: m.fudge}
}

// String returns the marker as "ish ±<fudge>".
func (m Marker) String() string {
	return "ish ±" + formatFloat(m.fudge)
}
