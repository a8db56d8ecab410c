package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for helix configuration.
const envPrefix = "HELIX"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with defaults registered.
func NewLoader() *Loader {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("sourceFolder", def.SourceFolder)
	v.SetDefault("target", def.Target)
	v.SetDefault("templates", def.Templates)
	v.SetDefault("serialization", def.Serialization)
	v.SetDefault("generateBuildConfigs", def.GenerateBuildConfigs)
	v.SetDefault("names.replaceAll", def.Names.ReplaceAll)
	v.SetDefault("registration.shell", def.Registration.Shell)
	v.SetDefault("registration.script", def.Registration.Script)

	// HELIX_REGISTRATION_SCRIPT -> registration.script
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("log.timestamps", "HELIX_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// A missing file is not an error; defaults and environment still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// InFile reports whether key was present in the loaded config file.
func (l *Loader) InFile(key string) bool {
	return l.v.InConfig(key)
}
