package softerr

import (
	"errors"
	"testing"

	"github.com/dbasic/gwvalue/mbf"
)

func TestActiveHandlerReportsAndRecovers(t *testing.T) {
	var reported []string
	h := New(func(msg string) { reported = append(reported, msg) })

	v, err := h.WrapSingle(mbf.Single(0), mbf.ErrOverflow)
	if err != nil {
		t.Fatalf("WrapSingle returned %v, expected recovery", err)
	}
	if v != 0 {
		t.Fatalf("substituted value changed: %v", v)
	}
	_, err = h.WrapSingle(mbf.Single(0), mbf.ErrDivByZero)
	if err != nil {
		t.Fatalf("WrapSingle returned %v, expected recovery", err)
	}

	if len(reported) != 2 || reported[0] != "Overflow" || reported[1] != "Division by Zero" {
		t.Fatalf("reported = %v", reported)
	}
}

func TestPausedHandlerSubstitutesSilently(t *testing.T) {
	var reported []string
	h := New(func(msg string) { reported = append(reported, msg) })
	h.Pause(true)
	if !h.Paused() {
		t.Fatal("Paused() = false after Pause(true)")
	}

	if _, err := h.WrapDouble(mbf.Double(0), mbf.ErrOverflow); err != nil {
		t.Fatalf("WrapDouble returned %v, expected recovery", err)
	}
	if len(reported) != 0 {
		t.Fatalf("paused handler still reported: %v", reported)
	}

	h.Pause(false)
	if _, err := h.WrapDouble(mbf.Double(0), mbf.ErrOverflow); err != nil {
		t.Fatalf("WrapDouble returned %v, expected recovery", err)
	}
	if len(reported) != 1 {
		t.Fatalf("resumed handler did not report: %v", reported)
	}
}

func TestNonSoftErrorsPassThrough(t *testing.T) {
	h := New(nil)
	sentinel := errors.New("hard failure")
	if _, err := h.WrapSingle(0, sentinel); err != sentinel {
		t.Fatalf("WrapSingle swallowed %v", err)
	}
	if _, err := h.WrapSingle(0, nil); err != nil {
		t.Fatalf("WrapSingle invented an error: %v", err)
	}
}
