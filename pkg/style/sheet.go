package style

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML style sheet into Attributes. Properties absent from
// the document keep their defaults.
func Parse(data []byte) (Attributes, error) {
	attrs := DefaultAttributes()
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return Attributes{}, fmt.Errorf("failed to parse style sheet: %w", err)
	}
	return attrs, nil
}

// Load reads a YAML style sheet from disk. A missing file yields the
// defaults, matching optional-config behavior.
func Load(path string) (Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultAttributes(), nil
		}
		return Attributes{}, fmt.Errorf("failed to read style sheet: %w", err)
	}
	return Parse(data)
}
