package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/helixkit/helix/internal/cmdutil"
	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
	"github.com/helixkit/helix/internal/scaffold"
	"github.com/helixkit/helix/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	var tf cmdutil.TemplateFlags
	var solutionRoot string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the project templates",
		Long: `List the files of the template set helix add would use, and the
solution-specific templates in helix-template/ if the solution has any.

Examples:
  # List the built-in templates
  helix templates

  # List a custom template directory
  helix templates --templates ~/helix/templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, &tf, solutionRoot)
		},
	}

	tf.AddTo(cmd)
	cmd.Flags().StringVar(&solutionRoot, "solution-root", ".",
		"Directory containing the solution file")

	return cmd
}

func runTemplates(cmd *cobra.Command, tf *cmdutil.TemplateFlags, solutionRoot string) error {
	resolved := cmdutil.ResolveProject(cmd, &cmdutil.ProjectFlags{}, tf, configView())
	dir := resolved.Templates.Value

	source, err := templates.Open(dir)
	if err != nil {
		return oerrors.NewExitError(err)
	}
	files, err := templates.ListFiles(source)
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}

	label := dir
	if label == "" {
		label = "built-in"
	}
	w := cmd.OutOrStdout()
	fmt.Fprint(w, output.RenderFileTree(label, describeTemplates(files)))

	root, err := cmdutil.ResolveSolutionRoot(solutionRoot)
	if err != nil {
		output.Debug("no solution root", "error", err)
		return nil
	}
	overrides, err := templates.ListFiles(afero.NewIOFS(afero.NewBasePathFs(afero.NewOsFs(), filepath.Join(root, scaffold.OverrideRoot))))
	if err != nil {
		output.Debug("no solution-specific templates", "dir", scaffold.OverrideRoot)
		return nil
	}
	if len(overrides) > 0 {
		fmt.Fprintln(w)
		fmt.Fprint(w, output.RenderFileTree(scaffold.OverrideRoot, describeTemplates(overrides)))
	}
	return nil
}

// describeTemplates maps template paths to their role.
func describeTemplates(files []string) map[string]string {
	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f] = templateRole(f)
	}
	return out
}

func templateRole(name string) string {
	base := strings.ToLower(filepath.Base(name))
	switch {
	case name == scaffold.FallbackSerializationConfig:
		return "Serialization fallback"
	case strings.HasSuffix(base, scaffold.SerializationProjectSuffix):
		return "Project file (serialization)"
	case strings.HasSuffix(base, scaffold.ProjectFileSuffix):
		return "Project file"
	case strings.HasSuffix(base, scaffold.SerializationConfigSuffix):
		return "Serialization config"
	case strings.HasPrefix(name, scaffold.PublishProfilesDir+"/"):
		return "Publish profile, needs " + scaffold.PublishSettingsFile
	default:
		return ""
	}
}
