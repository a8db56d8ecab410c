package scaffold

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
	"github.com/helixkit/helix/internal/templates"
)

// Walker copies one template tree into the output tree.
type Walker struct {
	// Source is the template tree. Paths are slash-separated.
	Source fs.FS

	// Dest is the output file system, rooted at the solution root.
	Dest afero.Fs

	// Root is the Dest-relative directory receiving the tree.
	Root string

	// Policy decides per file and supplies the name rewrite strategy.
	Policy Policy

	// Renderer renders file contents.
	Renderer *templates.Renderer

	// Conflict is the run's conflict state. Must not be nil.
	Conflict *ConflictState

	// Exclude skips source entries by slash-separated relative path.
	Exclude func(rel string) bool

	written []string
}

// Walk copies the source directory rel into the destination directory dest,
// both relative to their roots. The initial call is Walk("", "").
func (w *Walker) Walk(rel, dest string) error {
	dir := rel
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(w.Source, dir)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		srcRel := path.Join(rel, entry.Name())

		if w.Exclude != nil && w.Exclude(srcRel) {
			output.Debug("template entry reserved", "path", srcRel)
			continue
		}

		if entry.IsDir() {
			childDest := filepath.Join(dest, w.Policy.Names.RewriteDir(entry.Name()))
			target := filepath.Join(w.Root, childDest)
			if err := w.Dest.MkdirAll(target, 0o755); err != nil {
				return oerrors.FileSystem("create directory", target, err)
			}
			if err := w.Walk(srcRel, childDest); err != nil {
				return err
			}
			continue
		}

		decision := w.Policy.Decide(entry.Name())
		if decision.Action == Skip {
			output.Debug("template skipped", "path", srcRel)
			continue
		}

		target := filepath.Join(w.Root, dest, decision.Name)
		if err := w.copyFile(srcRel, target); err != nil {
			return err
		}
		if decision.Action == CopyAndMarkOverride {
			w.Conflict.MarkOverride()
			output.Debug("project-specific serialization config", "path", target)
		}
	}

	return nil
}

// Written returns the Dest-relative paths written so far, in write order.
func (w *Walker) Written() []string {
	return append([]string(nil), w.written...)
}

func (w *Walker) copyFile(srcRel, target string) error {
	content, err := fs.ReadFile(w.Source, srcRel)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", srcRel, err)
	}

	rendered, err := w.Renderer.RenderFile(srcRel, content)
	if err != nil {
		return err
	}

	if err := writeFile(w.Dest, target, rendered); err != nil {
		return err
	}

	output.Debug("created file", "template", srcRel, "path", target)
	w.written = append(w.written, target)
	return nil
}
