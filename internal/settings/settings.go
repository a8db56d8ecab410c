// Package settings holds the immutable inputs of one scaffolding run.
package settings

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	oerrors "github.com/helixkit/helix/internal/errors"
)

// DefaultSourceFolder is the solution-relative folder holding layer directories.
const DefaultSourceFolder = "src"

var nameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// Options is the mutable input collected by the caller before a run.
type Options struct {
	ProjectName            string
	VendorPrefix           string
	Layer                  Layer
	ModuleGroup            string
	SerializationEnabled   bool
	SourceFolder           string
	TargetFrameworkVersion string

	// GenerateBuildConfigs is nil when the registration variant has no
	// build-config flag.
	GenerateBuildConfigs *bool

	// ProjectGUID is generated when empty.
	ProjectGUID string
}

// Settings is the validated, read-only record a materialization run consumes.
// Derived values are computed on every call and never stored.
type Settings struct {
	projectName          string
	vendorPrefix         string
	layer                Layer
	moduleGroup          string
	serializationEnabled bool
	sourceFolder         string
	target               string
	generateBuildConfigs *bool
	projectGUID          string
}

// New validates opts and returns the Settings for one run.
func New(opts Options) (Settings, error) {
	name := strings.TrimSpace(opts.ProjectName)
	if name == "" {
		return Settings{}, oerrors.NewValidationError(
			"project name cannot be empty", "projectName",
			"Pass the name without the layer prefix, e.g. helix add Catalog")
	}
	if !nameRegex.MatchString(name) {
		return Settings{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q", name), "projectName",
			"Use letters, digits, '.', '_' or '-', starting with a letter or '_'")
	}

	vendor := strings.TrimSpace(opts.VendorPrefix)
	if vendor != "" && !nameRegex.MatchString(vendor) {
		return Settings{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid vendor prefix %q", vendor), "vendorPrefix",
			"Leave it empty or use letters, digits, '.', '_' or '-'")
	}

	layer, err := ParseLayer(string(opts.Layer))
	if err != nil {
		return Settings{}, oerrors.NewValidationError(err.Error(), "layer",
			"Valid layers: Feature, Foundation, Project")
	}

	group := strings.TrimSpace(opts.ModuleGroup)
	if group != "" && !nameRegex.MatchString(group) {
		return Settings{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid module group %q", group), "moduleGroup",
			"Leave it empty or use letters, digits, '.', '_' or '-'")
	}

	source := opts.SourceFolder
	if source == "" {
		source = DefaultSourceFolder
	}
	if filepath.IsAbs(source) {
		return Settings{}, oerrors.NewValidationError(
			fmt.Sprintf("source folder %q must be relative to the solution root", source),
			"sourceFolder", "")
	}

	target := opts.TargetFrameworkVersion
	if target == "" {
		target = DefaultTarget
	}
	if !IsValidTarget(target) {
		return Settings{}, oerrors.NewValidationError(
			fmt.Sprintf("unsupported target framework %q", target), "target",
			"Valid targets: "+strings.Join(Targets(), ", "))
	}

	guid := opts.ProjectGUID
	if guid == "" {
		guid = uuid.NewString()
	} else if _, err := uuid.Parse(guid); err != nil {
		return Settings{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid project guid %q", guid), "projectGuid", "")
	}

	var build *bool
	if opts.GenerateBuildConfigs != nil {
		v := *opts.GenerateBuildConfigs
		build = &v
	}

	return Settings{
		projectName:          name,
		vendorPrefix:         vendor,
		layer:                layer,
		moduleGroup:          group,
		serializationEnabled: opts.SerializationEnabled,
		sourceFolder:         filepath.Clean(source),
		target:               target,
		generateBuildConfigs: build,
		projectGUID:          strings.ToLower(guid),
	}, nil
}

func (s Settings) ProjectName() string            { return s.projectName }
func (s Settings) VendorPrefix() string           { return s.vendorPrefix }
func (s Settings) Layer() Layer                   { return s.layer }
func (s Settings) ModuleGroup() string            { return s.moduleGroup }
func (s Settings) SerializationEnabled() bool     { return s.serializationEnabled }
func (s Settings) SourceFolder() string           { return s.sourceFolder }
func (s Settings) TargetFrameworkVersion() string { return s.target }
func (s Settings) ProjectGUID() string            { return s.projectGUID }

// GenerateBuildConfigs returns the flag and whether it was set at all.
func (s Settings) GenerateBuildConfigs() (bool, bool) {
	if s.generateBuildConfigs == nil {
		return false, false
	}
	return *s.generateBuildConfigs, true
}

// LayerPrefixedProjectName is {vendor}.{layer}.{project}, or {layer}.{project}
// without a vendor prefix.
func (s Settings) LayerPrefixedProjectName() string {
	if s.vendorPrefix == "" {
		return fmt.Sprintf("%s.%s", s.layer, s.projectName)
	}
	return fmt.Sprintf("%s.%s.%s", s.vendorPrefix, s.layer, s.projectName)
}

// ProjectPath is the solution-relative directory receiving the project code.
func (s Settings) ProjectPath() string {
	return filepath.Join(s.moduleDir(), "code")
}

// SerializationPath is the solution-relative directory for serialized items.
func (s Settings) SerializationPath() string {
	return filepath.Join(s.moduleDir(), "serialization")
}

// moduleDir skips the module group segment when it is empty.
func (s Settings) moduleDir() string {
	return filepath.Join(s.sourceFolder, string(s.layer), s.moduleGroup, s.projectName)
}
