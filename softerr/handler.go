// Package softerr implements the value engine's soft-error handler: the
// interpreter-scoped object that intercepts float overflow and
// division-by-zero, substitutes the signed maximum of the result's
// precision, and optionally reports the condition instead of unwinding.
package softerr

import (
	"errors"

	"github.com/dbasic/gwvalue/mbf"
)

// Handler holds the paused/active state. It is process- (interpreter-)
// scoped and orthogonal to any individual value descriptor.
type Handler struct {
	paused bool
	report func(msg string)
}

// New returns a Handler that calls report for every soft condition seen
// while active (not paused). report may be nil to discard messages.
func New(report func(msg string)) *Handler {
	return &Handler{report: report}
}

// Pause suspends (true) or resumes (false) error reporting. While paused,
// soft conditions still substitute the signed maximum but are not
// reported.
func (h *Handler) Pause(doPause bool) { h.paused = doPause }

// Paused reports the current suspend state.
func (h *Handler) Paused() bool { return h.paused }

func (h *Handler) emit(msg string) {
	if h.paused || h.report == nil {
		return
	}
	h.report(msg)
}

func softMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, mbf.ErrOverflow):
		return "Overflow", true
	case errors.Is(err, mbf.ErrDivByZero):
		return "Division by Zero", true
	default:
		return "", false
	}
}

// WrapSingle absorbs a soft mbf error: it reports the condition (unless
// paused) and returns the substituted value with a nil error. Any other,
// non-soft error is passed through unchanged.
func (h *Handler) WrapSingle(v mbf.Single, err error) (mbf.Single, error) {
	if msg, soft := softMessage(err); soft {
		h.emit(msg)
		return v, nil
	}
	return v, err
}

// WrapDouble is Double's analogue of WrapSingle.
func (h *Handler) WrapDouble(v mbf.Double, err error) (mbf.Double, error) {
	if msg, soft := softMessage(err); soft {
		h.emit(msg)
		return v, nil
	}
	return v, err
}
