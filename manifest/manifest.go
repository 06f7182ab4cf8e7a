/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is a build-time listing of discoverable type names.
// Generating one ahead of time lets startup skip artifact scanning:
// the listed names are resolved through the loader exactly as scanned
// candidates would be.
type Manifest struct {
	// Models lists fully-qualified entity type names.
	Models []string `yaml:"models"`

	// Serializers lists fully-qualified serializer type names.
	Serializers []string `yaml:"serializers"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// IsEmpty reports whether the manifest declares no types at all.
func (m *Manifest) IsEmpty() bool {
	return len(m.Models) == 0 && len(m.Serializers) == 0
}
