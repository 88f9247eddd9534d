package funcfmt

import "strings"

// FormatterFunc produces the replacement text for one placeholder. It
// receives the render context by pointer and returns the text to insert.
// A formatter that has no value for the given context should return an
// error wrapping ErrNoValue.
type FormatterFunc[T any] func(data *T) (string, error)

// FormatMap holds the named formatters a template may reference. It is a
// plain map, so registering a name twice keeps the later formatter.
type FormatMap[T any] map[string]FormatterFunc[T]

// formatPiece is one element of a compiled template: a run of literal text,
// or a formatter reference resolved at preprocessing time.
type formatPiece[T any] struct {
	text string // literal text, used when fn is nil
	name string // placeholder name, set alongside fn
	fn   FormatterFunc[T]
}

// FormatPieces is the compiled form of a template: the ordered pieces
// produced by ToFormatPieces. Compile once, render as many times as needed.
// Rendering does not mutate the pieces, so a FormatPieces value may be
// shared across goroutines as long as its formatters tolerate concurrent
// calls.
type FormatPieces[T any] []formatPiece[T]

// ToFormatPieces preprocesses tmpl into a reusable piece sequence,
// resolving every placeholder against the map as it scans.
//
// Template syntax: {name} invokes the formatter registered under "name".
// Doubled braces are escapes, so "{{" renders as "{" and "}}" as "}".
// Anything else is literal text and renders verbatim, with consecutive
// literal characters kept as a single piece.
//
// The scan fails fast with a *ParseError: ErrUnknownFormatter for a
// placeholder the map does not cover, ErrUnterminated for a placeholder
// still open at the end of the template, and ErrMismatchedBrace for stray
// braces. No pieces are returned on error.
func (m FormatMap[T]) ToFormatPieces(tmpl string) (FormatPieces[T], error) {
	// Ballpark: a literal run between placeholders, plus the placeholders.
	pieces := make(FormatPieces[T], 0, strings.Count(tmpl, "{")*2+1)
	err := scanTemplate(tmpl,
		func(text string) {
			pieces = append(pieces, formatPiece[T]{text: text})
		},
		func(name string, offset int) error {
			fn, ok := m[name]
			if !ok {
				return &ParseError{Name: name, Offset: offset, Err: ErrUnknownFormatter}
			}
			pieces = append(pieces, formatPiece[T]{name: name, fn: fn})
			return nil
		})
	if err != nil {
		return nil, err
	}
	return pieces, nil
}

// Format preprocesses tmpl and renders it against data in one call. Prefer
// ToFormatPieces followed by Render when the same template is rendered more
// than once.
func (m FormatMap[T]) Format(tmpl string, data *T) (string, error) {
	p, err := m.ToFormatPieces(tmpl)
	if err != nil {
		return "", err
	}
	return p.Render(data)
}
