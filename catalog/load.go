// ABOUTME: Loads a catalog from a YAML mapping of sample ID to label and filename.
// ABOUTME: Walks the yaml.Node tree so key order in the file becomes display order.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type entryDoc struct {
	Label       string `yaml:"label"`
	Filename    string `yaml:"filename"`
	Description string `yaml:"description"`
}

// LoadFile reads and parses the catalog file at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document of the form
//
//	bridge:
//	  label: Serial Bridge Demo
//	  filename: bridge-sample.html
//
// Entries keep the order in which their keys appear.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("catalog is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: catalog must be a mapping of sample ids", root.Line)
	}
	if len(root.Content) == 0 {
		return nil, errors.New("catalog defines no samples")
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: sample %q must be a mapping", val.Line, key.Value)
		}

		var d entryDoc
		if err := val.Decode(&d); err != nil {
			return nil, fmt.Errorf("line %d: sample %q: %w", val.Line, key.Value, err)
		}
		entries = append(entries, Entry{
			ID:          key.Value,
			Label:       d.Label,
			Filename:    d.Filename,
			Description: d.Description,
		})
	}

	return New(entries...)
}
