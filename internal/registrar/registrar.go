// Package registrar hands a materialized project to the external
// solution-registration tool.
package registrar

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/afero"

	oerrors "github.com/helixkit/helix/internal/errors"
)

// SolutionSuffix is the extension of solution files, matched case-insensitively.
const SolutionSuffix = ".sln"

// Registration is the fully resolved parameter set for adding one project to
// a solution.
type Registration struct {
	SolutionFile       string `json:"solutionFile" yaml:"solutionFile"`
	Name               string `json:"name" yaml:"name"`
	Layer              string `json:"layer" yaml:"layer"`
	ProjectPath        string `json:"projectPath" yaml:"projectPath"`
	SolutionFolderName string `json:"solutionFolderName" yaml:"solutionFolderName"`

	// GenerateBuildConfigs is nil for tool variants without the flag.
	GenerateBuildConfigs *bool `json:"generateBuildConfigs,omitempty" yaml:"generateBuildConfigs,omitempty"`
}

// Args returns the flat parameter list passed to the tool.
func (r Registration) Args() []string {
	args := []string{
		"-SolutionFile", r.SolutionFile,
		"-Name", r.Name,
		"-Type", r.Layer,
		"-ProjectPath", r.ProjectPath,
		"-SolutionFolderName", r.SolutionFolderName,
	}
	if r.GenerateBuildConfigs != nil {
		args = append(args, "-GenerateBuildConfigs", strconv.FormatBool(*r.GenerateBuildConfigs))
	}
	return args
}

// String renders the parameters as a single PowerShell argument string.
// Path-like values are single-quoted.
func (r Registration) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "-SolutionFile %s -Name %s -Type %s -ProjectPath %s -SolutionFolderName %s",
		quote(r.SolutionFile), r.Name, r.Layer, quote(r.ProjectPath), quote(r.SolutionFolderName))
	if r.GenerateBuildConfigs != nil {
		fmt.Fprintf(&b, " -GenerateBuildConfigs %t", *r.GenerateBuildConfigs)
	}
	return b.String()
}

// quote single-quotes s, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Registrar registers a project in a solution.
type Registrar interface {
	Register(ctx context.Context, reg Registration) error
}

// FindSolution returns the name of the solution file in the root of fsys.
// When several exist the lexically first wins.
func FindSolution(fsys afero.Fs) (string, error) {
	entries, err := afero.ReadDir(fsys, ".")
	if err != nil {
		return "", oerrors.FileSystem("read", "solution root", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToUpper(e.Name()), strings.ToUpper(SolutionSuffix)) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", oerrors.NewNotFoundError("no solution file in the solution root", "",
			"Run helix from the directory containing the .sln file or pass --solution-root.")
	}

	sort.Strings(names)
	return names[0], nil
}

// Recorder keeps registrations in memory instead of running a tool.
type Recorder struct {
	mu   sync.Mutex
	regs []Registration
}

// Register records reg.
func (r *Recorder) Register(_ context.Context, reg Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regs = append(r.regs, reg)
	return nil
}

// Registrations returns the recorded registrations.
func (r *Recorder) Registrations() []Registration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Registration(nil), r.regs...)
}
