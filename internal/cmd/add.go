package cmd

import (
	"github.com/spf13/cobra"

	"github.com/helixkit/helix/internal/cmdutil"
	oerrors "github.com/helixkit/helix/internal/errors"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	var pf cmdutil.ProjectFlags
	var tf cmdutil.TemplateFlags
	var sf cmdutil.SolutionFlags

	cmd := &cobra.Command{
		Use:   "add <ProjectName> [VendorPrefix]",
		Short: "Add a project to the solution",
		Long: `Add a Helix project to the solution in the current directory.

The project is created at <source-folder>/<layer>/[<module-group>/]<name>/code
from the built-in templates (or --templates). Files in helix-template/ at the
solution root are copied on top, with _Layer, _Module and _Vendor replaced in
file names and Layer, ProjectName and VendorPrefix folders renamed.

With serialization enabled, a serialization folder and a Unicorn
configuration are created, unless helix-template/ provides its own
serialization.config.

Finally the project is registered in the solution's .sln file by running the
configured add-project script in the background.

Values not given as flags come from HELIX_* environment variables, then
~/.helix/config.yaml, then built-in defaults.

Examples:
  # Add Feature.Catalog
  helix add Catalog

  # Add Acme.Foundation.Indexing without serialization
  helix add Indexing Acme --layer Foundation --serialization=false

  # Preview the registration call and print the result as YAML
  helix add Catalog --dry-run -o yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args, &pf, &tf, &sf)
		},
	}

	pf.AddTo(cmd)
	tf.AddTo(cmd)
	sf.AddTo(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string, pf *cmdutil.ProjectFlags, tf *cmdutil.TemplateFlags, sf *cmdutil.SolutionFlags) error {
	format, err := sf.Format()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err}
	}

	if configLoadErr != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.Wrap(oerrors.ErrValidation, configLoadErr.Error()),
		}
	}

	vendor := ""
	if len(args) > 1 {
		vendor = args[1]
	}

	result, err := cmdutil.Materialize(cmd.Context(), cmdutil.MaterializeOpts{
		ProjectName:  args[0],
		VendorPrefix: vendor,
		Project:      pf,
		Resolved:     cmdutil.ResolveProject(cmd, pf, tf, configView()),
		SolutionRoot: sf.SolutionRoot,
		DryRun:       sf.DryRun,
	})

	// A failed registration still leaves a complete project to report.
	if result != nil {
		if werr := cmdutil.WriteResult(cmd.OutOrStdout(), result, format, sf.DryRun); werr != nil && err == nil {
			return werr
		}
	}
	return err
}
