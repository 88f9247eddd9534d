package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/funcfmt"
)

// Definition is one named template as written in a catalog file.
type Definition struct {
	// Template is the funcfmt template text.
	Template string `toml:"template" yaml:"template" json:"template"`

	// Description says what the template is for. Informational only.
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
}

// File is the on-disk catalog layout: a table of definitions keyed by
// template name.
//
// TOML:
//
//	[templates.greeting]
//	template = "Hello, {name}!"
//	description = "salutation line"
//
// YAML:
//
//	templates:
//	  greeting:
//	    template: "Hello, {name}!"
//	    description: salutation line
type File struct {
	Templates map[string]Definition `toml:"templates" yaml:"templates" json:"templates"`
}

// LoadFile reads a catalog file and stores its templates, compiled. The
// format is chosen by extension: .toml, .yaml, or .yml.
//
// The update is all-or-nothing. Every definition must parse and compile
// before anything is stored; on error the catalog keeps its previous
// contents. Loaded entries replace same-named ones and leave the rest
// alone, so a catalog may be assembled from several files.
func (c *Catalog[T]) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	f, err := decodeFile(path, data)
	if err != nil {
		return err
	}

	compiled := make(map[string]funcfmt.FormatPieces[T], len(f.Templates))
	for name, def := range f.Templates {
		p, err := c.formatters.ToFormatPieces(def.Template)
		if err != nil {
			return fmt.Errorf("template %q: %w", name, err)
		}
		compiled[name] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for name, p := range compiled {
		c.pieces[name] = p
		c.defs[name] = f.Templates[name]
	}
	return nil
}

// decodeFile unmarshals catalog bytes according to the path's extension.
func decodeFile(path string, data []byte) (*File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse toml catalog: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse yaml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &f, nil
}
