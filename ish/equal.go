package ish

import "reflect"

// ============================================================
// Symmetric Comparison
// ============================================================

// Equal compares a fuzzy wrapper against a candidate, in either operand
// order: Equal(w, c) == Equal(c, w).
//
// Supported pairs:
//   - Bool vs string, []byte, every integer type, Optional, Outcome, error,
//     and untyped nil (an absent value); a nil pointer to an Optional or
//     Outcome is absent or failed
//   - Float vs float32 and float64
//
// Any other pair, including two wrappers, is unequal.
func Equal(a, b any) bool {
	if eq, ok := compareWrapper(a, b); ok {
		return eq
	}
	if eq, ok := compareWrapper(b, a); ok {
		return eq
	}
	return false
}

// compareWrapper reports ok=false when w is not a wrapper or c is not a
// candidate type w knows about.
func compareWrapper(w, c any) (eq, ok bool) {
	switch w := w.(type) {
	case Bool:
		return w.compare(c)
	case *Bool:
		if w != nil {
			return w.compare(c)
		}
	case Float:
		return w.compare(c)
	case *Float:
		if w != nil {
			return w.compare(c)
		}
	}
	return false, false
}

func (b Bool) compare(c any) (bool, bool) {
	switch c := c.(type) {
	case nil:
		return !b.intent, true
	case string:
		return b.EqualString(c), true
	case []byte:
		return b.EqualString(string(c)), true
	case int:
		return EqualInt(b, c), true
	case int8:
		return EqualInt(b, c), true
	case int16:
		return EqualInt(b, c), true
	case int32:
		return EqualInt(b, c), true
	case int64:
		return EqualInt(b, c), true
	case uint:
		return EqualInt(b, c), true
	case uint8:
		return EqualInt(b, c), true
	case uint16:
		return EqualInt(b, c), true
	case uint32:
		return EqualInt(b, c), true
	case uint64:
		return EqualInt(b, c), true
	case uintptr:
		return EqualInt(b, c), true
	case Optional:
		if isNilPointer(c) {
			return !b.intent, true
		}
		return b.EqualOption(c), true
	case Outcome:
		if isNilPointer(c) {
			return !b.intent, true
		}
		return b.EqualResult(c), true
	case error:
		return b.EqualError(c), true
	}
	return false, false
}

// isNilPointer catches a nil *Option or *Result, whose value-receiver
// methods would panic. A nil pointer counts as absent or failed.
func isNilPointer(c any) bool {
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (f Float) compare(c any) (bool, bool) {
	switch c := c.(type) {
	case float64:
		return f.Equal(c), true
	case float32:
		return f.EqualFloat32(c), true
	}
	return false, false
}
