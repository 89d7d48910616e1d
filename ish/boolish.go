package ish

import (
	"golang.org/x/exp/constraints"
)

// Bool is a fuzzy boolean: true-ish or false-ish.
type Bool struct {
	intent bool
}

// True and False are the two fuzzy booleans.
var (
	True  = Bool{intent: true}
	False = Bool{intent: false}
)

// FromBool wraps b.
func FromBool(b bool) Bool {
	return Bool{intent: b}
}

// Intent returns the wrapped boolean.
func (b Bool) Intent() bool {
	return b.intent
}

// String returns "true-ish" or "false-ish".
func (b Bool) String() string {
	if b.intent {
		return "true-ish"
	}
	return "false-ish"
}

// GoString returns the wrapper with its intent, e.g. "ish.Bool{intent: true}".
func (b Bool) GoString() string {
	if b.intent {
		return "ish.Bool{intent: true}"
	}
	return "ish.Bool{intent: false}"
}

// ============================================================
// Text
// ============================================================

// EqualString reports whether s is in the vocabulary matching b's intent.
// Unrecognized text equals neither True nor False.
func (b Bool) EqualString(s string) bool {
	if b.intent {
		return IsTruthy(s)
	}
	return IsFalsy(s)
}

// ============================================================
// Integers
// ============================================================

// EqualInt64 reports whether n matches b. True-ish matches only 1;
// false-ish matches every value except 1, not just 0.
func (b Bool) EqualInt64(n int64) bool {
	if b.intent {
		return n == 1
	}
	return n != 1
}

// EqualInt compares b against an integer of any width. The value is
// converted to int64 first, wrapping the way Go conversions do.
func EqualInt[T constraints.Integer](b Bool, n T) bool {
	return b.EqualInt64(int64(n))
}

// ============================================================
// Optional and Result Values
// ============================================================

// Optional is a value that may be absent.
type Optional interface {
	IsSome() bool
}

// Outcome is the result of an operation that may have failed.
type Outcome interface {
	IsOk() bool
}

// EqualOption reports whether b's intent equals "o is present".
func (b Bool) EqualOption(o Optional) bool {
	return b.intent == o.IsSome()
}

// EqualResult reports whether b's intent equals "r succeeded".
func (b Bool) EqualResult(r Outcome) bool {
	return b.intent == r.IsOk()
}

// EqualError treats a nil error as success and anything else as failure.
func (b Bool) EqualError(err error) bool {
	return b.intent == (err == nil)
}

// EqualPtr treats a non-nil pointer as a present value.
func EqualPtr[T any](b Bool, p *T) bool {
	return b.intent == (p != nil)
}
