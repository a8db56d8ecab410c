package scaffold

import (
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
)

// PlaceholderProjectFile is the project file name templates are copied under
// until the finalizer gives it its computed name.
const PlaceholderProjectFile = "_project.csproj"

// FinalizeProjectFile converges projectPath on a single project file named
// finalName and returns its path. A missing placeholder is a no-op. When
// keepInline is set, finalName was written by this run under its computed
// name; the placeholder is then removed instead of renamed over it. Without
// keepInline, an existing finalName is stale and gets replaced.
func FinalizeProjectFile(fsys afero.Fs, projectPath, finalName string, keepInline bool) (string, error) {
	placeholder := filepath.Join(projectPath, PlaceholderProjectFile)
	final := filepath.Join(projectPath, finalName)

	if placeholder == final {
		return final, nil
	}

	hasPlaceholder, err := afero.Exists(fsys, placeholder)
	if err != nil {
		return "", oerrors.FileSystem("stat", placeholder, err)
	}
	if !hasPlaceholder {
		return final, nil
	}

	if keepInline {
		output.Debug("project file already named, dropping placeholder", "path", final)
		if err := fsys.Remove(placeholder); err != nil {
			return "", oerrors.FileSystem("remove", placeholder, err)
		}
		return final, nil
	}

	if err := fsys.Rename(placeholder, final); err != nil {
		return "", oerrors.FileSystem("rename", placeholder, err)
	}
	output.Debug("renamed project file", "from", placeholder, "to", final)
	return final, nil
}
