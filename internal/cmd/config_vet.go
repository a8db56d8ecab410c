package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/helixkit/helix/internal/config"
	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the helix configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. target is a supported framework version
  4. sourceFolder is relative
  5. templates and registration.script exist, if set

The config path is resolved using precedence:
  --config flag > HELIX_CONFIG env > ~/.helix/config.yaml

Examples:
  # Validate default configuration
  helix config vet

  # Validate custom config path
  helix config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(_ *cobra.Command, _ []string) error {
	path, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}

	output.Debug("validating config", "path", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'helix config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	if configLoadErr != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  configLoadErr.Error(),
			Location: path,
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := config.Validate(GetConfig()); err != nil {
		return err
	}

	output.Println("Configuration is valid: " + path)
	return nil
}
