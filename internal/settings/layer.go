package settings

import (
	"fmt"
	"strings"
)

// Layer is the architectural classification of a project.
type Layer string

const (
	// Feature layer projects implement a single business capability.
	Feature Layer = "Feature"

	// Foundation layer projects provide shared frameworks and services.
	Foundation Layer = "Foundation"

	// Project layer projects compose features into a site.
	Project Layer = "Project"
)

// Layers returns all layers in prompt order.
func Layers() []Layer {
	return []Layer{Feature, Foundation, Project}
}

// ParseLayer accepts a layer name in any letter case.
func ParseLayer(s string) (Layer, error) {
	for _, l := range Layers() {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown layer %q", s)
}

// String returns the layer name.
func (l Layer) String() string {
	return string(l)
}

// Lower returns the lower-case layer name.
func (l Layer) Lower() string {
	return strings.ToLower(string(l))
}
