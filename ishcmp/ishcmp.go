// Package ishcmp exposes the fuzzy rules of package ish as go-cmp options,
// so cmp.Equal and cmp.Diff can compare structures tolerantly.
package ishcmp

import (
	"github.com/google/go-cmp/cmp"

	"github.com/Neumenon/ish/ish"
)

// EquateFloats returns a cmp.Option that treats two float64 or two float32
// values as equal when they differ by at most m.Fudge().
//
// Pairs outside the tolerance fall through to the default comparison.
func EquateFloats(m ish.Marker) cmp.Option {
	return cmp.Options{
		cmp.FilterValues(func(a, b float64) bool {
			return m.Float(a).Equal(b)
		}, cmp.Comparer(func(a, b float64) bool { return true })),
		cmp.FilterValues(func(a, b float32) bool {
			return m.Float32(a).EqualFloat32(b)
		}, cmp.Comparer(func(a, b float32) bool { return true })),
	}
}

// EquateBoolWords returns a cmp.Option that treats two strings as equal when
// both belong to the same fuzzy vocabulary, e.g. "YES" and "on".
//
// Strings that are not both recognized fall through to the default
// comparison.
func EquateBoolWords() cmp.Option {
	return cmp.FilterValues(sameTruthiness, cmp.Comparer(func(a, b string) bool { return true }))
}

func sameTruthiness(a, b string) bool {
	for _, w := range []ish.Bool{ish.True, ish.False} {
		if w.EqualString(a) && w.EqualString(b) {
			return true
		}
	}
	return false
}
