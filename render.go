package funcfmt

import (
	"context"
	"io"
	"strings"
)

// Render evaluates the pieces against data and returns the assembled
// output. Literal pieces contribute their text verbatim; formatter pieces
// contribute whatever their formatter returns for data. The first formatter
// error stops the render, and the error comes back wrapped in a
// *RenderError naming the placeholder. On error the returned string is
// empty, never partial output.
func (p FormatPieces[T]) Render(data *T) (string, error) {
	var b strings.Builder
	b.Grow(p.sizeHint())
	if err := p.RenderTo(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo streams the rendered output into w, avoiding the intermediate
// string. Formatter failures come back wrapped in a *RenderError; writer
// errors come back as-is. Bytes written before a failure stay written, so
// callers that need all-or-nothing output should use Render instead.
func (p FormatPieces[T]) RenderTo(w io.Writer, data *T) error {
	for _, pc := range p {
		if err := pc.renderTo(w, data); err != nil {
			return err
		}
	}
	return nil
}

// RenderContext is Render with a cancellation check between pieces. Once
// ctx is done it returns ctx.Err() and an empty string. Formatters are not
// handed the context; a formatter that blocks should watch its own.
func (p FormatPieces[T]) RenderContext(ctx context.Context, data *T) (string, error) {
	var b strings.Builder
	b.Grow(p.sizeHint())
	for _, pc := range p {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := pc.renderTo(&b, data); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func (pc formatPiece[T]) renderTo(w io.Writer, data *T) error {
	if pc.fn == nil {
		_, err := io.WriteString(w, pc.text)
		return err
	}
	s, err := pc.fn(data)
	if err != nil {
		return &RenderError{Name: pc.name, Err: err}
	}
	_, err = io.WriteString(w, s)
	return err
}

// sizeHint guesses the output size for pre-allocation: exact literal bytes
// plus a flat guess per formatter piece.
func (p FormatPieces[T]) sizeHint() int {
	n := 0
	for _, pc := range p {
		if pc.fn == nil {
			n += len(pc.text)
		} else {
			n += 16
		}
	}
	return n
}
