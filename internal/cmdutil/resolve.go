package cmdutil

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/helixkit/helix/internal/config"
)

// Environment variables consulted during resolution. They match the keys
// viper derives from the HELIX prefix.
const (
	EnvSourceFolder         = "HELIX_SOURCEFOLDER"
	EnvTarget               = "HELIX_TARGET"
	EnvTemplates            = "HELIX_TEMPLATES"
	EnvSerialization        = "HELIX_SERIALIZATION"
	EnvGenerateBuildConfigs = "HELIX_GENERATEBUILDCONFIGS"
	EnvNamesReplaceAll      = "HELIX_NAMES_REPLACEALL"
	EnvRegistrationShell    = "HELIX_REGISTRATION_SHELL"
	EnvRegistrationScript   = "HELIX_REGISTRATION_SCRIPT"
)

// ConfigView is the loaded configuration together with the knowledge of
// which keys the config file set.
type ConfigView struct {
	Config *config.Config
	InFile func(key string) bool
}

func (v ConfigView) config() *config.Config {
	if v.Config == nil {
		return config.DefaultConfig()
	}
	return v.Config
}

func (v ConfigView) inFile(key string) bool {
	return v.InFile != nil && v.InFile(key)
}

// ResolvedProject holds every value the add command resolves with
// flag > env > config > default precedence.
type ResolvedProject struct {
	SourceFolder         config.ResolvedValue
	Target               config.ResolvedValue
	Templates            config.ResolvedValue
	Serialization        config.ResolvedValue
	GenerateBuildConfigs config.ResolvedValue
	ReplaceAll           config.ResolvedValue
	Shell                config.ResolvedValue
	Script               config.ResolvedValue
}

// All returns the values in a fixed order for logging.
func (r *ResolvedProject) All() []config.ResolvedValue {
	return []config.ResolvedValue{
		r.SourceFolder, r.Target, r.Templates, r.Serialization,
		r.GenerateBuildConfigs, r.ReplaceAll, r.Shell, r.Script,
	}
}

// ResolveProject resolves the add command's configurable values. Flags that
// cmd does not define count as unset.
func ResolveProject(cmd *cobra.Command, pf *ProjectFlags, tf *TemplateFlags, view ConfigView) *ResolvedProject {
	cfg := view.config()
	def := config.DefaultConfig()
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	return &ResolvedProject{
		SourceFolder: config.Resolve(config.ResolveOptions{
			Key: "sourceFolder", Flag: pf.SourceFolder, FlagSet: changed("source-folder"),
			EnvVar: EnvSourceFolder, Config: cfg.SourceFolder, ConfigSet: view.inFile("sourceFolder"),
			Default: def.SourceFolder,
		}),
		Target: config.Resolve(config.ResolveOptions{
			Key: "target", Flag: pf.Target, FlagSet: changed("target"),
			EnvVar: EnvTarget, Config: cfg.Target, ConfigSet: view.inFile("target"),
			Default: def.Target,
		}),
		Templates: config.Resolve(config.ResolveOptions{
			Key: "templates", Flag: tf.Templates, FlagSet: changed("templates"),
			EnvVar: EnvTemplates, Config: cfg.Templates, ConfigSet: view.inFile("templates"),
			Default: def.Templates,
		}),
		Serialization: config.Resolve(config.ResolveOptions{
			Key: "serialization", Flag: strconv.FormatBool(pf.Serialization), FlagSet: changed("serialization"),
			EnvVar: EnvSerialization, Config: strconv.FormatBool(cfg.Serialization), ConfigSet: view.inFile("serialization"),
			Default: strconv.FormatBool(def.Serialization),
		}),
		GenerateBuildConfigs: config.Resolve(config.ResolveOptions{
			Key: "generateBuildConfigs", Flag: strconv.FormatBool(pf.GenerateBuildConfigs), FlagSet: changed("generate-build-configs"),
			EnvVar: EnvGenerateBuildConfigs, Config: strconv.FormatBool(cfg.GenerateBuildConfigs), ConfigSet: view.inFile("generateBuildConfigs"),
			Default: strconv.FormatBool(def.GenerateBuildConfigs),
		}),
		ReplaceAll: config.Resolve(config.ResolveOptions{
			Key: "names.replaceAll", EnvVar: EnvNamesReplaceAll,
			Config: strconv.FormatBool(cfg.Names.ReplaceAll), ConfigSet: view.inFile("names.replaceAll"),
			Default: strconv.FormatBool(def.Names.ReplaceAll),
		}),
		Shell: config.Resolve(config.ResolveOptions{
			Key: "registration.shell", EnvVar: EnvRegistrationShell,
			Config: cfg.Registration.Shell, ConfigSet: view.inFile("registration.shell"),
			Default: def.Registration.Shell,
		}),
		Script: config.Resolve(config.ResolveOptions{
			Key: "registration.script", EnvVar: EnvRegistrationScript,
			Config: cfg.Registration.Script, ConfigSet: view.inFile("registration.script"),
			Default: def.Registration.Script,
		}),
	}
}
