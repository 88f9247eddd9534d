package funcfmt

import "strings"

// scanTemplate makes one left-to-right pass over tmpl, delivering coalesced
// literal runs to literal and each placeholder name, with the byte offset of
// its opening brace, to placeholder. Doubled braces are collapsed into the
// literal run before delivery. A non-nil error from placeholder stops the
// scan immediately.
//
// Braces are plain ASCII bytes, so scanning bytes is safe for any UTF-8
// template: multi-byte runes pass through the literal path untouched.
func scanTemplate(tmpl string, literal func(text string), placeholder func(name string, offset int) error) error {
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			literal(lit.String())
			lit.Reset()
		}
	}

	for i := 0; i < len(tmpl); i++ {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			open := i
			j := i + 1
			for j < len(tmpl) && tmpl[j] != '}' {
				if tmpl[j] == '{' {
					return &ParseError{Offset: j, Err: ErrMismatchedBrace}
				}
				j++
			}
			if j == len(tmpl) {
				return &ParseError{Offset: open, Err: ErrUnterminated}
			}
			flush()
			if err := placeholder(tmpl[open+1:j], open); err != nil {
				return err
			}
			i = j
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return &ParseError{Offset: i, Err: ErrMismatchedBrace}
		default:
			lit.WriteByte(tmpl[i])
		}
	}
	flush()
	return nil
}

// Placeholders returns the formatter names tmpl references, in order of
// first appearance and without duplicates. It applies the same syntax rules
// as ToFormatPieces but resolves nothing, so it never reports an unknown
// formatter; use it to discover what a template needs before building a
// FormatMap for it.
func Placeholders(tmpl string) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})
	err := scanTemplate(tmpl, func(string) {}, func(name string, _ int) error {
		if _, ok := seen[name]; ok {
			return nil
		}
		seen[name] = struct{}{}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
