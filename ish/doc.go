// Package ish implements fuzzy equality for booleans and floats.
//
// Sometimes things aren't quite true or false, they're more like true-ish
// or false-ish. And sometimes a float is more of an idea than a number.
//
// # Fuzzy Booleans
//
// A Bool wraps a truth value and compares against loosely typed candidates:
//   - Text: matched against a fixed vocabulary after trimming, NFKC
//     normalization and case folding ("YES", " on ", "👍", "Norway")
//   - Integers of any width: true-ish matches exactly 1, false-ish matches
//     everything else
//   - Optional values: true-ish matches present, false-ish matches absent
//   - Result values: true-ish matches success, false-ish matches failure
//
// Text that is in neither vocabulary matches neither wrapper.
//
// # Fuzzy Floats
//
// A Float wraps a float64 and a tolerance ("fudge"). It equals a candidate c
// when |value - c| <= fudge. The default tolerance is DefaultFudge.
//
// # Construction
//
// Wrappers come from a Marker, or from the FromBool and FromFloat helpers:
//
//	ish.Ish.Bool(true)            // true-ish
//	ish.FromBool(false)           // false-ish
//	ish.Ish.Float(1.0)            // 1 ±0.0000001
//	ish.MustMarker(0.01).Float(3) // 3 ±0.01
//
// # Comparison
//
//	ish.True.EqualString("YEAH")         // true
//	ish.EqualInt(ish.False, 0)           // true
//	ish.FromFloat(1.0).Equal(1.00000001) // true
//	ish.Equal("True", ish.True)          // true, either operand order works
//
// Every value in this package is immutable and safe for concurrent use.
package ish
