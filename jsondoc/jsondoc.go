package jsondoc

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/randalmurphal/funcfmt"
)

// Document is a raw JSON document used as the render context. The bytes are
// searched in place on every formatter call; nothing is unmarshalled.
type Document []byte

// Valid reports whether the document is well-formed JSON.
func (d Document) Valid() bool {
	return gjson.ValidBytes(d)
}

// Field returns a formatter that extracts the value at a gjson path, such
// as "user.name" or "items.0.id".
//
// Scalars render with their natural string form, so numbers lose no
// precision and an explicit null renders as an empty string. Objects and
// arrays render as their raw JSON. A path missing from the document fails
// the render with an error wrapping funcfmt.ErrNoValue.
func Field(path string) funcfmt.FormatterFunc[Document] {
	return func(doc *Document) (string, error) {
		res := gjson.GetBytes(*doc, path)
		if !res.Exists() {
			return "", fmt.Errorf("path %q: %w", path, funcfmt.ErrNoValue)
		}
		return res.String(), nil
	}
}

// Fields builds a formatter table from placeholder names to gjson paths.
// It is the usual way to wire a template to a JSON shape:
//
//	fm := jsondoc.Fields(map[string]string{
//		"name": "user.name",
//		"city": "user.address.city",
//	})
//	pieces, err := fm.ToFormatPieces("{name} lives in {city}")
func Fields(paths map[string]string) funcfmt.FormatMap[Document] {
	m := make(funcfmt.FormatMap[Document], len(paths))
	for name, path := range paths {
		m[name] = Field(path)
	}
	return m
}
