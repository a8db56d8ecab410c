package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
	"github.com/helixkit/helix/internal/registrar"
	"github.com/helixkit/helix/internal/settings"
	"github.com/helixkit/helix/internal/templates"
)

// Well-known names in the template roots and the solution root.
const (
	// OverrideRoot is the solution-specific template directory, relative to
	// the solution root.
	OverrideRoot = "helix-template"

	// FallbackSerializationConfig is the generic serialization
	// configuration in the primary root. It is only used by the fallback
	// step, never copied by the walk.
	FallbackSerializationConfig = "_serialization.config"

	// PublishSettingsFile enables publish profiles when present in the
	// solution root.
	PublishSettingsFile = "publishsettings.targets"

	// PublishProfilesDir holds the publish profile templates.
	PublishProfilesDir = "Properties/PublishProfiles"
)

// Options configures an Engine.
type Options struct {
	// Templates is the primary template root.
	Templates fs.FS

	// Dest is the output tree, rooted at the solution root.
	Dest afero.Fs

	// SolutionRoot is the absolute solution root, used for the path handed
	// to the registrar. May be empty.
	SolutionRoot string

	// Registrar receives the finished project. Nil skips registration.
	Registrar registrar.Registrar

	// ReplaceAllTokens replaces every occurrence of a name token instead of
	// only the first.
	ReplaceAllTokens bool
}

// Engine materializes projects from templates.
type Engine struct {
	templates    fs.FS
	dest         afero.Fs
	solutionRoot string
	registrar    registrar.Registrar
	replaceAll   bool
}

// New creates an engine.
func New(opts Options) *Engine {
	return &Engine{
		templates:    opts.Templates,
		dest:         opts.Dest,
		solutionRoot: opts.SolutionRoot,
		registrar:    opts.Registrar,
		replaceAll:   opts.ReplaceAllTokens,
	}
}

// Result describes one materialized project.
type Result struct {
	ProjectName                    string                  `json:"projectName" yaml:"projectName"`
	ProjectPath                    string                  `json:"projectPath" yaml:"projectPath"`
	ProjectFile                    string                  `json:"projectFile" yaml:"projectFile"`
	SerializationPath              string                  `json:"serializationPath,omitempty" yaml:"serializationPath,omitempty"`
	Files                          []string                `json:"files" yaml:"files"`
	UsingCustomSerializationConfig bool                    `json:"usingCustomSerializationConfig" yaml:"usingCustomSerializationConfig"`
	Registration                   *registrar.Registration `json:"registration,omitempty" yaml:"registration,omitempty"`
}

// run holds the state of one Materialize call.
type run struct {
	settings settings.Settings
	renderer *templates.Renderer
	conflict *ConflictState
	files    map[string]struct{}
}

// Materialize writes the project described by s into the output tree.
//
// The only fatal template condition is a missing primary root. File-system
// failures abort the run. A registration failure is returned together with
// the otherwise complete result.
func (e *Engine) Materialize(ctx context.Context, s settings.Settings) (*Result, error) {
	if s.ProjectName() == "" {
		return nil, oerrors.NewValidationError("settings are not initialized", "ProjectName",
			"Create settings with settings.New.")
	}
	if e.templates == nil || e.dest == nil {
		return nil, fmt.Errorf("engine is missing its template source or destination")
	}

	if _, err := fs.ReadDir(e.templates, "."); err != nil {
		return nil, oerrors.NewNotFoundError("template root is not readable", "",
			"Check the templates setting or omit it to use the built-in templates.")
	}

	tokens := NewTokens(s)
	r := &run{
		settings: s,
		renderer: templates.NewRenderer(tokens),
		conflict: &ConflictState{},
		files:    make(map[string]struct{}),
	}

	log := output.ProjectLogger(s.LayerPrefixedProjectName())
	log.Debug("materializing project", "path", s.ProjectPath(), "serialization", s.SerializationEnabled())

	if err := e.copyPrimary(r); err != nil {
		return nil, err
	}
	if err := e.copyOverrides(r); err != nil {
		return nil, err
	}
	if s.SerializationEnabled() {
		if err := e.copySerialization(r); err != nil {
			return nil, err
		}
	}

	finalName := s.LayerPrefixedProjectName() + ProjectFileSuffix
	_, keepInline := r.files[filepath.Join(s.ProjectPath(), finalName)]
	projectFile, err := FinalizeProjectFile(e.dest, s.ProjectPath(), finalName, keepInline)
	if err != nil {
		return nil, err
	}
	if _, ok := r.files[filepath.Join(s.ProjectPath(), PlaceholderProjectFile)]; ok {
		delete(r.files, filepath.Join(s.ProjectPath(), PlaceholderProjectFile))
		r.files[projectFile] = struct{}{}
	}

	result := &Result{
		ProjectName:                    s.LayerPrefixedProjectName(),
		ProjectPath:                    s.ProjectPath(),
		ProjectFile:                    projectFile,
		Files:                          r.sortedFiles(),
		UsingCustomSerializationConfig: r.conflict.UsingCustomSerializationConfig(),
	}
	if s.SerializationEnabled() {
		result.SerializationPath = s.SerializationPath()
	}

	reg, err := e.register(ctx, s)
	result.Registration = reg
	if err != nil {
		return result, fmt.Errorf("registering %s: %w", s.LayerPrefixedProjectName(), err)
	}

	log.Info("project created", "files", len(result.Files))
	return result, nil
}

// copyPrimary walks the primary root into the project path.
func (e *Engine) copyPrimary(r *run) error {
	publish, err := afero.Exists(e.dest, PublishSettingsFile)
	if err != nil {
		return oerrors.FileSystem("stat", PublishSettingsFile, err)
	}
	if !publish {
		output.Debug("no publish settings, skipping publish profiles")
	}

	w := e.walker(r, e.templates, NewTokenRewriter(r.settings, e.replaceAll))
	w.Exclude = func(rel string) bool {
		if rel == FallbackSerializationConfig {
			return true
		}
		return !publish && isWithin(rel, PublishProfilesDir)
	}
	return e.walk(r, w, "primary")
}

// copyOverrides walks the solution-specific root, if any.
func (e *Engine) copyOverrides(r *run) error {
	ok, err := afero.DirExists(e.dest, OverrideRoot)
	if err != nil {
		return oerrors.FileSystem("stat", OverrideRoot, err)
	}
	if !ok {
		output.Debug("no solution-specific templates", "dir", OverrideRoot)
		return nil
	}

	source := afero.NewIOFS(afero.NewBasePathFs(e.dest, OverrideRoot))
	w := e.walker(r, source, NewSegmentRewriter(r.settings, e.replaceAll))
	return e.walk(r, w, OverrideRoot)
}

// copySerialization creates the serialization folder and, unless an
// override configuration was materialized, the generic configuration.
func (e *Engine) copySerialization(r *run) error {
	s := r.settings
	if err := e.dest.MkdirAll(s.SerializationPath(), 0o755); err != nil {
		return oerrors.FileSystem("create directory", s.SerializationPath(), err)
	}

	if r.conflict.UsingCustomSerializationConfig() {
		output.Debug("project-specific serialization config in use, skipping fallback")
		return nil
	}

	content, err := fs.ReadFile(e.templates, FallbackSerializationConfig)
	if errors.Is(err, fs.ErrNotExist) {
		output.Warn("template set has no serialization config", "template", FallbackSerializationConfig)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading template %s: %w", FallbackSerializationConfig, err)
	}

	rendered, err := r.renderer.RenderFile(FallbackSerializationConfig, content)
	if err != nil {
		return err
	}

	target := filepath.Join(s.ProjectPath(), "App_Config", "Include", s.LayerPrefixedProjectName(), "serialization.config")
	if err := writeFile(e.dest, target, rendered); err != nil {
		return err
	}
	r.files[target] = struct{}{}
	return nil
}

// register hands the project to the registrar. A missing solution file is
// not an error.
func (e *Engine) register(ctx context.Context, s settings.Settings) (*registrar.Registration, error) {
	if e.registrar == nil {
		output.Debug("no registrar configured, skipping solution registration")
		return nil, nil
	}

	solution, err := registrar.FindSolution(e.dest)
	if errors.Is(err, oerrors.ErrNotFound) {
		output.Warn("no solution file found, skipping solution registration")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	reg := registrar.Registration{
		SolutionFile:       filepath.Join(e.solutionRoot, solution),
		Name:               s.LayerPrefixedProjectName(),
		Layer:              s.Layer().String(),
		ProjectPath:        s.ProjectPath(),
		SolutionFolderName: s.ProjectName(),
	}
	if v, ok := s.GenerateBuildConfigs(); ok {
		reg.GenerateBuildConfigs = &v
	}

	if err := e.registrar.Register(ctx, reg); err != nil {
		return &reg, err
	}
	return &reg, nil
}

func (e *Engine) walker(r *run, source fs.FS, names NameRewriteStrategy) *Walker {
	return &Walker{
		Source:   source,
		Dest:     e.dest,
		Root:     r.settings.ProjectPath(),
		Policy:   Policy{Serialization: r.settings.SerializationEnabled(), Names: names},
		Renderer: r.renderer,
		Conflict: r.conflict,
	}
}

func (e *Engine) walk(r *run, w *Walker, label string) error {
	if err := w.Walk("", ""); err != nil {
		return fmt.Errorf("copying %s templates: %w", label, err)
	}
	for _, f := range w.Written() {
		r.files[f] = struct{}{}
	}
	return nil
}

func (r *run) sortedFiles() []string {
	files := make([]string, 0, len(r.files))
	for f := range r.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// isWithin reports whether the slash path rel is dir or below it.
func isWithin(rel, dir string) bool {
	rel = path.Clean(rel)
	return rel == dir || strings.HasPrefix(rel, dir+"/")
}
