package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const configHeader = `# helix configuration.
# Every key can be overridden with a HELIX_* environment variable,
# e.g. HELIX_TARGET or HELIX_REGISTRATION_SCRIPT.
`

// DefaultConfigYAML returns the default configuration as a commented YAML
// document, as written by helix config init.
func DefaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	return buf.Bytes(), nil
}
