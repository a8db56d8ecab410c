// Package cmdutil provides shared command utilities for the add and templates
// commands. It centralizes flag groups, configuration resolution, the
// materialization preamble, and result output.
package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
	"github.com/helixkit/helix/internal/settings"
)

// ProjectFlags holds the flags describing the project to add.
type ProjectFlags struct {
	Layer                string
	ModuleGroup          string
	Serialization        bool
	GenerateBuildConfigs bool
	SourceFolder         string
	Target               string
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	layers := make([]string, 0, len(settings.Layers()))
	for _, l := range settings.Layers() {
		layers = append(layers, l.String())
	}

	cmd.Flags().StringVarP(&f.Layer, "layer", "l", settings.Feature.String(),
		fmt.Sprintf("Helix layer (%s)", strings.Join(layers, ", ")))
	cmd.Flags().StringVarP(&f.ModuleGroup, "module-group", "m", "",
		"Optional module group folder below the layer")
	cmd.Flags().BoolVar(&f.Serialization, "serialization", true,
		"Include Unicorn serialization (default: from config)")
	cmd.Flags().BoolVar(&f.GenerateBuildConfigs, "generate-build-configs", true,
		"Generate build configurations on registration (default: from config)")
	cmd.Flags().StringVar(&f.SourceFolder, "source-folder", "",
		"Source code folder (default: from config)")
	cmd.Flags().StringVar(&f.Target, "target", "",
		fmt.Sprintf("Target .NET Framework version (%s)", strings.Join(settings.Targets(), ", ")))
}

// TemplateFlags holds the template root selection.
type TemplateFlags struct {
	Templates string
}

// AddTo registers the template flags on the given cobra command.
func (f *TemplateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Templates, "templates", "",
		"Template directory replacing the built-in templates (default: from config)")
}

// SolutionFlags holds the flags locating and driving the target solution.
type SolutionFlags struct {
	SolutionRoot string
	DryRun       bool
	Output       string
}

// AddTo registers the solution flags on the given cobra command.
func (f *SolutionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.SolutionRoot, "solution-root", ".",
		"Directory containing the solution file")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Record the solution registration instead of running the script")
	cmd.Flags().StringVarP(&f.Output, "output", "o", string(output.FormatTree),
		fmt.Sprintf("Output format (%s)", strings.Join(output.Formats(), ", ")))
}

// Format validates and returns the output format.
func (f *SolutionFlags) Format() (output.Format, error) {
	format, ok := output.ParseFormat(f.Output)
	if !ok {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", f.Output), "output",
			"Valid formats: "+strings.Join(output.Formats(), ", "))
	}
	return format, nil
}

// ResolveSolutionRoot returns the absolute solution root. It must be an
// existing directory.
func ResolveSolutionRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving solution root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", oerrors.NewNotFoundError("solution root does not exist", abs,
				"Pass --solution-root with the directory holding the .sln file.")
		}
		return "", oerrors.FileSystem("stat", abs, err)
	}
	if !info.IsDir() {
		return "", oerrors.NewNotFoundError("solution root is not a directory", abs, "")
	}
	return abs, nil
}
