// Package errors provides structured error reporting for the disclosure engine.
//
// The engine never fails a widget because of degenerate input. Conditions such
// as a detached anchor or an empty placement list are absorbed locally and
// reported here so a panel that never appears can still be diagnosed.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Sentinel causes carried by OverlayError.Err.
var (
	ErrNoAnchor          = stderrors.New("anchor missing or detached")
	ErrEmptyPlacements   = stderrors.New("placement list is empty")
	ErrUnknownPlacement  = stderrors.New("unknown placement name")
	ErrAnimationTimeout  = stderrors.New("animation completion never fired")
	ErrTornDown          = stderrors.New("overlay already torn down")
	ErrEmptyContent      = stderrors.New("overlay content is empty")
	ErrUnsupportedSchema = stderrors.New("unsupported config schema version")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindAnchor indicates a missing or unattached anchor reference.
	KindAnchor
	// KindPlacement indicates a degenerate placement list or name.
	KindPlacement
	// KindAnimation indicates an enter/leave animation that had to be forced.
	KindAnimation
	// KindTeardown indicates an intent that arrived after teardown.
	KindTeardown
	// KindConfig indicates invalid configuration input.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindContent indicates a show refused because the panel has nothing
	// to display.
	KindContent
)

func (k ErrorKind) String() string {
	switch k {
	case KindAnchor:
		return "anchor"
	case KindPlacement:
		return "placement"
	case KindAnimation:
		return "animation"
	case KindTeardown:
		return "teardown"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	case KindContent:
		return "content"
	default:
		return "unknown"
	}
}

// OverlayError represents an absorbed condition in the disclosure engine.
type OverlayError struct {
	// Op is the operation that hit the condition (e.g., "overlay.Show").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error, usually one of the sentinels above.
	Err error
	// Widget names the widget instance, if known.
	Widget string
	// Timestamp is when the condition was observed.
	Timestamp time.Time
}

func (e *OverlayError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *OverlayError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "disclosure.OnVisibleChange").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when a degenerate condition is absorbed.
	HandleError(err *OverlayError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
