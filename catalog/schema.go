package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// FileSchema returns the JSON Schema for the catalog file layout, indented
// for writing to disk. Point an editor or CI check at it to validate
// catalog documents before they are loaded.
func FileSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&File{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	return data, nil
}
