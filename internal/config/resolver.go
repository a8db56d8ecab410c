package config

import (
	"os"
	"strconv"

	"github.com/helixkit/helix/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value with its provenance.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions describes the candidate values of one key.
type ResolveOptions struct {
	// Key is the config file key, used for logging.
	Key string
	// Flag is the flag value; FlagSet reports whether the user passed it.
	Flag    string
	FlagSet bool
	// EnvVar is the environment variable consulted.
	EnvVar string
	// Config is the value from the config file; ConfigSet reports presence.
	Config    string
	ConfigSet bool
	// Default is the built-in default.
	Default string
}

// Resolve applies the precedence flag > env > config > default.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue, envSet := "", false
	if opts.EnvVar != "" {
		envValue, envSet = os.LookupEnv(opts.EnvVar)
	}

	switch {
	case opts.FlagSet:
		result.Value, result.Source = opts.Flag, SourceFlag
		if envSet {
			result.Shadowed[SourceEnv] = envValue
		}
		if opts.ConfigSet {
			result.Shadowed[SourceConfig] = opts.Config
		}
	case envSet:
		result.Value, result.Source = envValue, SourceEnv
		if opts.ConfigSet {
			result.Shadowed[SourceConfig] = opts.Config
		}
	case opts.ConfigSet:
		result.Value, result.Source = opts.Config, SourceConfig
	default:
		result.Value, result.Source = opts.Default, SourceDefault
	}

	return result
}

// Bool parses the resolved value, falling back to def on malformed input.
func (r ResolvedValue) Bool(def bool) bool {
	b, err := strconv.ParseBool(r.Value)
	if err != nil {
		return def
	}
	return b
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		keyvals := []interface{}{"key", v.Key, "value", v.Value, "source", string(v.Source)}
		for src, shadowed := range v.Shadowed {
			keyvals = append(keyvals, "shadowed_"+string(src), shadowed)
		}
		output.Debug("resolved config", keyvals...)
	}
}
