// Package funcfmt renders templates whose placeholders are backed by
// caller-supplied formatter functions instead of struct fields or
// reflection. The render context is an opaque type parameter: funcfmt never
// inspects it, it only hands a pointer to each formatter and concatenates
// what comes back.
//
// # Syntax
//
// A template is literal text with formatter names in single braces:
//
//	report for {host}: {status}
//
// Doubled braces are escapes. "{{" renders as a literal "{" and "}}" as a
// literal "}". A single brace that is neither part of a placeholder nor
// doubled is a syntax error.
//
// # Two Phases
//
// Preprocessing turns a template into pieces exactly once, resolving every
// placeholder against a FormatMap up front:
//
//	fm := funcfmt.FormatMap[Entry]{
//		"host":   func(e *Entry) (string, error) { return e.Host, nil },
//		"status": func(e *Entry) (string, error) { return e.Status, nil },
//	}
//	pieces, err := fm.ToFormatPieces("report for {host}: {status}")
//
// Rendering walks the pieces against one context value, as often as needed:
//
//	for _, e := range entries {
//		line, err := pieces.Render(&e)
//		...
//	}
//
// Splitting the phases keeps per-render work proportional to the template's
// pieces: no re-parsing, no map lookups, no surprises about which names a
// template uses after it has compiled.
//
// # Errors
//
// Preprocessing fails fast with a *ParseError wrapping ErrUnknownFormatter,
// ErrUnterminated, or ErrMismatchedBrace, so a template that compiles can
// never fail a render over syntax or naming. Rendering fails only when a
// formatter does, and then with a *RenderError naming the placeholder and
// wrapping the formatter's error:
//
//	out, err := pieces.Render(&entry)
//	if errors.Is(err, funcfmt.ErrNoValue) {
//		// a formatter had nothing for this entry
//	}
//
// # Concurrency
//
// FormatPieces values are immutable after ToFormatPieces returns. Any
// number of goroutines may render the same pieces concurrently, each with
// its own context value, provided the formatters themselves are safe to
// call concurrently. FormatMap is a plain map and follows the usual rules:
// do not mutate it while another goroutine preprocesses with it.
//
// # Subpackages
//
//   - catalog: named template collections loaded from TOML or YAML files,
//     with optional live reload
//   - jsondoc: formatter tables over raw JSON documents, addressed by path
package funcfmt
