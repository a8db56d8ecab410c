// Package templates provides the embedded project template set, template
// root resolution, and content rendering.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/helixkit/helix/internal/config"
	oerrors "github.com/helixkit/helix/internal/errors"
)

// The all: prefix is required because template names start with '_'.
//
//go:embed all:add
var addFS embed.FS

// DefaultRoot is the directory of the embedded template set.
const DefaultRoot = "add"

// Default returns the embedded template set rooted at its top directory.
func Default() fs.FS {
	sub, err := fs.Sub(addFS, DefaultRoot)
	if err != nil {
		// fs.Sub only fails for an invalid path, which DefaultRoot is not.
		panic(fmt.Sprintf("templates: %v", err))
	}
	return sub
}

// Open resolves the primary template root. An empty dir selects the embedded
// set; otherwise dir must exist and be a directory.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Default(), nil
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("expanding template path: %w", err)
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("template directory does not exist", expanded,
				"Set 'templates' in the config file or pass --templates with an existing directory.")
		}
		return nil, oerrors.FileSystem("stat", expanded, err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewNotFoundError("template path is not a directory", expanded, "")
	}

	return os.DirFS(expanded), nil
}

// ListFiles returns all file paths in a template tree, slash-separated and
// relative to its root.
func ListFiles(fsys fs.FS) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path.Clean(p))
		return nil
	})

	return files, err
}
