package scaffold

import (
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/helixkit/helix/internal/errors"
)

const fileMode = 0o644

// writeFile writes data to target through a temporary sibling that is
// renamed into place, so target is never left truncated.
func writeFile(fsys afero.Fs, target string, data []byte) error {
	dir := filepath.Dir(target)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return oerrors.FileSystem("create directory", dir, err)
	}

	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return oerrors.FileSystem("create temp file in", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return oerrors.FileSystem("write", target, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return oerrors.FileSystem("write", target, err)
	}
	if err := fsys.Chmod(tmpName, fileMode); err != nil {
		_ = fsys.Remove(tmpName)
		return oerrors.FileSystem("chmod", target, err)
	}
	if err := fsys.Rename(tmpName, target); err != nil {
		_ = fsys.Remove(tmpName)
		return oerrors.FileSystem("rename", target, err)
	}

	return nil
}
