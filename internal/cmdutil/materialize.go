package cmdutil

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/helixkit/helix/internal/config"
	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
	"github.com/helixkit/helix/internal/registrar"
	"github.com/helixkit/helix/internal/scaffold"
	"github.com/helixkit/helix/internal/settings"
	"github.com/helixkit/helix/internal/templates"
)

// MaterializeOpts holds the inputs for Materialize.
type MaterializeOpts struct {
	ProjectName  string
	VendorPrefix string

	// Project carries the layer and module group. Its other fields are
	// ignored in favor of Resolved.
	Project *ProjectFlags

	// Resolved must come from ResolveProject.
	Resolved *ResolvedProject

	SolutionRoot string
	DryRun       bool

	// Registrar replaces the registrar chosen from configuration.
	Registrar registrar.Registrar
}

// Materialize executes the add preamble and the engine: it validates
// settings, opens the template root, picks the registrar, and materializes
// into the solution root.
//
// Failures are returned as *ExitError. Engine failures are printed here and
// carry Printed; a registration failure still returns the result.
func Materialize(ctx context.Context, opts MaterializeOpts) (*scaffold.Result, error) {
	if opts.Project == nil || opts.Resolved == nil {
		return nil, &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: fmt.Errorf("project options not resolved")}
	}
	r := opts.Resolved
	config.LogResolvedValues(r.All())

	root, err := ResolveSolutionRoot(opts.SolutionRoot)
	if err != nil {
		return nil, oerrors.NewExitError(err)
	}

	s, err := settings.New(settings.Options{
		ProjectName:            opts.ProjectName,
		VendorPrefix:           opts.VendorPrefix,
		Layer:                  settings.Layer(opts.Project.Layer),
		ModuleGroup:            opts.Project.ModuleGroup,
		SerializationEnabled:   r.Serialization.Bool(true),
		SourceFolder:           r.SourceFolder.Value,
		TargetFrameworkVersion: r.Target.Value,
		GenerateBuildConfigs:   output.BoolPtr(r.GenerateBuildConfigs.Bool(true)),
	})
	if err != nil {
		return nil, oerrors.NewExitError(err)
	}

	source, err := templates.Open(r.Templates.Value)
	if err != nil {
		return nil, oerrors.NewExitError(err)
	}

	reg, err := chooseRegistrar(opts, root)
	if err != nil {
		return nil, oerrors.NewExitError(err)
	}

	engine := scaffold.New(scaffold.Options{
		Templates:        source,
		Dest:             afero.NewBasePathFs(afero.NewOsFs(), root),
		SolutionRoot:     root,
		Registrar:        reg,
		ReplaceAllTokens: r.ReplaceAll.Bool(false),
	})

	output.Debug("materializing",
		"project", s.LayerPrefixedProjectName(),
		"solution-root", root,
		"templates", r.Templates.Value,
		"dry-run", opts.DryRun,
	)

	result, err := engine.Materialize(ctx, s)
	if err != nil {
		PrintError("add failed", err)
		exitErr := oerrors.NewExitError(err)
		exitErr.Printed = true
		return result, exitErr
	}
	return result, nil
}

// chooseRegistrar returns the registrar for this run, or nil to skip
// registration.
func chooseRegistrar(opts MaterializeOpts, root string) (registrar.Registrar, error) {
	switch {
	case opts.Registrar != nil:
		return opts.Registrar, nil
	case opts.DryRun:
		return &registrar.Recorder{}, nil
	case opts.Resolved.Script.Value == "":
		output.Warn("registration.script is not set, skipping solution registration")
		return nil, nil
	}

	script, err := config.ExpandPath(opts.Resolved.Script.Value)
	if err != nil {
		return nil, fmt.Errorf("expanding registration script path: %w", err)
	}
	return registrar.NewPowerShell(opts.Resolved.Shell.Value, script, root), nil
}
