// Package jsondoc adapts raw JSON documents as funcfmt render contexts.
//
// Instead of unmarshalling JSON into structs and writing a formatter per
// field, point each placeholder at a gjson path and render straight off the
// bytes:
//
//	fm := jsondoc.Fields(map[string]string{
//		"name":  "user.name",
//		"event": "type",
//	})
//	pieces, err := fm.ToFormatPieces("{name} triggered {event}")
//	...
//	doc := jsondoc.Document(payload)
//	line, err := pieces.Render(&doc)
//
// Missing paths fail the render with an error wrapping funcfmt.ErrNoValue,
// which keeps absent data distinguishable from empty strings.
package jsondoc
