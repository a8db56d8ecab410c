package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/helixkit/helix/internal/config"
	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the helix configuration file with default values.

The file is written to the path given by --config, HELIX_CONFIG, or
~/.helix/config.yaml. Set registration.script to the solution's
add-project.ps1 to enable solution registration.

Examples:
  # Initialize configuration
  helix config init

  # Overwrite existing configuration
  helix config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(force bool) error {
	path, err := config.ExpandPath(GetConfigPath())
	if err != nil || path == "" {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine config file path")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err
	}

	// Secure permissions: 0700 for the directory, 0600 for the file
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.FileSystem("create directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.FileSystem("write", path, err)
	}

	output.Println(fmt.Sprintf("Configuration initialized at %s", path))
	output.Println("Validate with: helix config vet")
	return nil
}
