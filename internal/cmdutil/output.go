package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
	"github.com/helixkit/helix/internal/scaffold"
)

// PrintError prints err in a user-friendly format. Detail errors get a short
// summary line followed by their multi-line rendering.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Message))
		output.Details(detail.Error())
		return
	}
	output.Error(msg, "error", err)
}

// WriteResult prints a run result in the given format.
func WriteResult(w io.Writer, result *scaffold.Result, format output.Format, dryRun bool) error {
	if format != output.FormatTree {
		return output.WriteManifest(w, format, result)
	}

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		rel, err := filepath.Rel(result.ProjectPath, f)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = f
		}
		files[rel] = FileDescription(f)
	}

	fmt.Fprintf(w, "Created project %s in %s\n\n",
		output.StyleNoun.Render(result.ProjectName), result.ProjectPath)
	fmt.Fprint(w, output.RenderFileTree(result.ProjectPath, files))
	if result.SerializationPath != "" {
		fmt.Fprintf(w, "\nSerialization folder: %s\n", result.SerializationPath)
	}

	if reg := result.Registration; reg != nil {
		fmt.Fprintln(w)
		if dryRun {
			fmt.Fprintf(w, "Would register in %s:\n  %s\n", filepath.Base(reg.SolutionFile), reg.String())
		} else {
			fmt.Fprintf(w, "Registering in %s (running in background)\n", filepath.Base(reg.SolutionFile))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%s ready", result.ProjectName)))
	return nil
}

// FileDescription returns a short description for a materialized file.
func FileDescription(name string) string {
	lower := strings.ToLower(filepath.Base(name))
	switch {
	case strings.HasSuffix(lower, scaffold.ProjectFileSuffix):
		return "Project file"
	case lower == "assemblyinfo.cs":
		return "Assembly metadata"
	case strings.HasSuffix(lower, scaffold.SerializationConfigSuffix):
		return "Unicorn configuration"
	case strings.HasSuffix(lower, ".pubxml"):
		return "Publish profile"
	default:
		return ""
	}
}
