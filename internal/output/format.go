package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format specifies how a run result is printed.
type Format string

const (
	// FormatTree prints a file tree of created files.
	FormatTree Format = "tree"

	// FormatYAML prints the result as YAML.
	FormatYAML Format = "yaml"

	// FormatJSON prints the result as JSON.
	FormatJSON Format = "json"
)

// Formats returns all valid formats.
func Formats() []string {
	return []string{string(FormatTree), string(FormatYAML), string(FormatJSON)}
}

// ParseFormat parses s case-insensitively.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatTree, FormatYAML, FormatJSON:
		return f, true
	default:
		return "", false
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// WriteManifest encodes v to w as YAML or JSON.
func WriteManifest(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q cannot encode a manifest", f)
	}
}
