// Package config provides configuration loading and management.
package config

// RegistrationConfig configures the external solution-registration tool.
type RegistrationConfig struct {
	// Shell is the PowerShell executable used to run Script.
	// Env: HELIX_REGISTRATION_SHELL, Default: "powershell"
	Shell string `mapstructure:"shell" yaml:"shell"`

	// Script is the add-project script. Empty disables registration.
	// Env: HELIX_REGISTRATION_SCRIPT
	Script string `mapstructure:"script" yaml:"script"`
}

// NamesConfig controls how name tokens are rewritten.
type NamesConfig struct {
	// ReplaceAll rewrites every occurrence of _Layer, _Module and _Vendor in a
	// name instead of only the first one.
	ReplaceAll bool `mapstructure:"replaceAll" yaml:"replaceAll"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the helix CLI configuration, loaded from
// ~/.helix/config.yaml and HELIX_* environment variables.
type Config struct {
	// SourceFolder is the solution-relative folder holding layer directories.
	// Env: HELIX_SOURCEFOLDER, Default: "src"
	SourceFolder string `mapstructure:"sourceFolder" yaml:"sourceFolder"`

	// Target is the .NET Framework target version.
	// Env: HELIX_TARGET, Default: "v4.8"
	Target string `mapstructure:"target" yaml:"target"`

	// Templates is a directory replacing the embedded template set.
	// Env: HELIX_TEMPLATES
	Templates string `mapstructure:"templates" yaml:"templates,omitempty"`

	// Serialization is the default for the serialization feature.
	Serialization bool `mapstructure:"serialization" yaml:"serialization"`

	// GenerateBuildConfigs is the default for build configuration generation.
	GenerateBuildConfigs bool `mapstructure:"generateBuildConfigs" yaml:"generateBuildConfigs"`

	Names        NamesConfig        `mapstructure:"names" yaml:"names"`
	Registration RegistrationConfig `mapstructure:"registration" yaml:"registration"`
	Log          LogConfig          `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		SourceFolder:         "src",
		Target:               "v4.8",
		Serialization:        true,
		GenerateBuildConfigs: true,
		Registration: RegistrationConfig{
			Shell: "powershell",
		},
	}
}
