package ish

import "fmt"

// ============================================================
// Option
// ============================================================

// Option is a value that may be absent. The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// String returns "Some(v)" or "None".
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// ============================================================
// Result
// ============================================================

// Result is the outcome of an operation: a value on success, an error on
// failure. Err(nil) is still a failure.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// ResultOf adapts a Go (value, error) pair. A nil error is success.
func ResultOf[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk reports whether the operation succeeded.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Get returns the value and the error. A failed Result built with a nil
// error reports ErrNoValue.
func (r Result[T]) Get() (T, error) {
	if r.ok {
		return r.value, nil
	}
	if r.err == nil {
		return r.value, ErrNoValue
	}
	return r.value, r.err
}

// String returns "Ok(v)" or "Err(e)".
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
