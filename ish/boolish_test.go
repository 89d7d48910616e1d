package ish

import (
	"errors"
	"math"
	"testing"
)

// ============================================================
// Text
// ============================================================

func TestBool_TrueVocabulary(t *testing.T) {
	inputs := []string{
		"true", "TRUE", "True", " true ", "yes", "YES", "yeah", "YEAH",
		"yup", "on", "On", "👍", "\ttrue\n", "ＴＲＵＥ",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			if !True.EqualString(s) {
				t.Errorf("True.EqualString(%q) = false, want true", s)
			}
			if False.EqualString(s) {
				t.Errorf("False.EqualString(%q) = true, want false", s)
			}
		})
	}
}

func TestBool_FalseVocabulary(t *testing.T) {
	inputs := []string{
		"false", "FALSE", "faLSE", "no", "NO", "nope", "off", "OFF",
		"untrue", "nah", "norway", "Norway", "👎", "  off  ",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			if !False.EqualString(s) {
				t.Errorf("False.EqualString(%q) = false, want true", s)
			}
			if True.EqualString(s) {
				t.Errorf("True.EqualString(%q) = true, want false", s)
			}
		})
	}
}

func TestBool_UnrecognizedText(t *testing.T) {
	inputs := []string{
		"", " ", "banana", "penguins!", "ferret", "nopeee", "t", "f",
		"1", "0", "y", "n", "tru e", "yes!",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			if True.EqualString(s) {
				t.Errorf("True.EqualString(%q) = true, want false", s)
			}
			if False.EqualString(s) {
				t.Errorf("False.EqualString(%q) = true, want false", s)
			}
		})
	}
}

// ============================================================
// Integers
// ============================================================

func TestBool_EqualInt64(t *testing.T) {
	tests := []struct {
		n         int64
		wantTrue  bool
		wantFalse bool
	}{
		{1, true, false},
		{0, false, true},
		{-1, false, true},
		{2, false, true},
		{math.MaxInt64, false, true},
		{math.MinInt64, false, true},
	}

	for _, tt := range tests {
		if got := True.EqualInt64(tt.n); got != tt.wantTrue {
			t.Errorf("True.EqualInt64(%d) = %v, want %v", tt.n, got, tt.wantTrue)
		}
		if got := False.EqualInt64(tt.n); got != tt.wantFalse {
			t.Errorf("False.EqualInt64(%d) = %v, want %v", tt.n, got, tt.wantFalse)
		}
	}
}

func TestBool_EqualIntWidths(t *testing.T) {
	if !EqualInt(True, int8(1)) || !EqualInt(True, int16(1)) || !EqualInt(True, int32(1)) ||
		!EqualInt(True, int64(1)) || !EqualInt(True, 1) {
		t.Error("True should equal 1 for every signed width")
	}
	if !EqualInt(True, uint8(1)) || !EqualInt(True, uint16(1)) || !EqualInt(True, uint32(1)) ||
		!EqualInt(True, uint64(1)) || !EqualInt(True, uint(1)) || !EqualInt(True, uintptr(1)) {
		t.Error("True should equal 1 for every unsigned width")
	}
	if EqualInt(True, uint8(0)) || EqualInt(True, int8(-1)) {
		t.Error("True should not equal 0 or -1")
	}
	if !EqualInt(False, uint8(0)) || !EqualInt(False, uint16(7)) || !EqualInt(False, int32(-1)) {
		t.Error("False should equal every value except 1")
	}
	if EqualInt(False, uint32(1)) {
		t.Error("False should not equal 1")
	}
	// Widening wraps; MaxUint64 becomes -1.
	if EqualInt(True, uint64(math.MaxUint64)) || !EqualInt(False, uint64(math.MaxUint64)) {
		t.Error("MaxUint64 should be false-ish")
	}
}

// ============================================================
// Optional and Result Values
// ============================================================

func TestBool_EqualOption(t *testing.T) {
	if !True.EqualOption(Some(42)) || True.EqualOption(None[int]()) {
		t.Error("True should equal Some and not None")
	}
	if !False.EqualOption(None[string]()) || False.EqualOption(Some("")) {
		t.Error("False should equal None and not Some")
	}
	var zero Option[int]
	if !False.EqualOption(zero) {
		t.Error("zero Option should be None")
	}
}

func TestBool_EqualResult(t *testing.T) {
	boom := errors.New("boom")
	if !True.EqualResult(Ok(struct{}{})) || True.EqualResult(Err[struct{}](boom)) {
		t.Error("True should equal Ok and not Err")
	}
	if !False.EqualResult(Err[int](boom)) || False.EqualResult(Ok(0)) {
		t.Error("False should equal Err and not Ok")
	}
	if !False.EqualResult(Err[int](nil)) {
		t.Error("Err(nil) should still be a failure")
	}
}

func TestBool_EqualError(t *testing.T) {
	if !True.EqualError(nil) || True.EqualError(errors.New("x")) {
		t.Error("True should equal a nil error only")
	}
	if !False.EqualError(errors.New("x")) || False.EqualError(nil) {
		t.Error("False should equal a non-nil error only")
	}
}

func TestBool_EqualPtr(t *testing.T) {
	n := 0
	if !EqualPtr(True, &n) || EqualPtr[int](True, nil) {
		t.Error("True should equal a non-nil pointer only")
	}
	if !EqualPtr[string](False, nil) || EqualPtr(False, &n) {
		t.Error("False should equal a nil pointer only")
	}
}

// ============================================================
// Rendering
// ============================================================

func TestBool_Rendering(t *testing.T) {
	tests := []struct {
		b      Bool
		str    string
		goStr  string
		intent bool
	}{
		{True, "true-ish", "ish.Bool{intent: true}", true},
		{False, "false-ish", "ish.Bool{intent: false}", false},
		{FromBool(true), "true-ish", "ish.Bool{intent: true}", true},
	}

	for _, tt := range tests {
		if got := tt.b.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.b.GoString(); got != tt.goStr {
			t.Errorf("GoString() = %q, want %q", got, tt.goStr)
		}
		if got := tt.b.Intent(); got != tt.intent {
			t.Errorf("Intent() = %v, want %v", got, tt.intent)
		}
	}
}
