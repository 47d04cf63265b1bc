package sizes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads an ordered size list from a YAML file of the form
//
//	- {width: 64, height: 64, name: icon-64.png}
func LoadFile(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sizes file: %w", err)
	}

	var specs []Spec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse sizes file: %w", err)
	}

	if err := ValidateAll(specs); err != nil {
		return nil, fmt.Errorf("invalid sizes file %s: %w", path, err)
	}
	return specs, nil
}
