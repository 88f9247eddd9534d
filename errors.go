package funcfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for preprocessing and rendering. Preprocessing failures
// arrive wrapped in a *ParseError and render failures in a *RenderError,
// so errors.Is matches these through either wrapper.
var (
	// ErrUnterminated is returned when a placeholder is opened but the
	// template ends before its closing brace.
	ErrUnterminated = errors.New("unterminated placeholder")

	// ErrMismatchedBrace is returned for a stray closing brace outside a
	// placeholder, or an opening brace inside one. Literal braces must be
	// doubled.
	ErrMismatchedBrace = errors.New("mismatched brace")

	// ErrUnknownFormatter is returned when a placeholder names a formatter
	// that the FormatMap does not contain.
	ErrUnknownFormatter = errors.New("unknown formatter")

	// ErrNoValue is a convention for formatters: return an error wrapping
	// ErrNoValue when the render context simply has no value for the
	// placeholder, as opposed to a real failure.
	ErrNoValue = errors.New("no value")
)

// ParseError reports a failure to preprocess a template: a syntax problem
// or a placeholder that no formatter is registered for.
type ParseError struct {
	Name   string // placeholder name, when the failure concerns one
	Offset int    // byte offset of the failure in the template
	Err    error  // the sentinel classifying the failure
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrUnknownFormatter) {
		return fmt.Sprintf("offset %d: %v %q", e.Offset, e.Err, e.Name)
	}
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the sentinel classifying the failure.
func (e *ParseError) Unwrap() error { return e.Err }

// RenderError reports a formatter that failed during rendering. The
// formatter's own error is preserved and reachable through Unwrap.
type RenderError struct {
	Name string // the placeholder whose formatter failed
	Err  error  // the error the formatter returned
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("formatter %q: %v", e.Name, e.Err)
}

// Unwrap returns the formatter's error.
func (e *RenderError) Unwrap() error { return e.Err }
