package scaffold

import (
	"io/fs"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/helixkit/helix/internal/settings"
)

const testGUID = "0b7c3c8e-2f0d-4a57-9d2c-6f1e5a4b3c2d"

// newSettings builds Catalog/Feature settings, letting mod adjust the options.
func newSettings(t *testing.T, mod func(*settings.Options)) settings.Settings {
	t.Helper()
	opts := settings.Options{
		ProjectName:          "Catalog",
		Layer:                settings.Feature,
		SerializationEnabled: true,
		SourceFolder:         "src",
		ProjectGUID:          testGUID,
	}
	if mod != nil {
		mod(&opts)
	}
	s, err := settings.New(opts)
	require.NoError(t, err)
	return s
}

// listFiles returns every regular file in fsys, slash-separated and sorted.
func listFiles(t *testing.T, fsys afero.Fs) []string {
	t.Helper()
	var files []string
	err := afero.Walk(fsys, ".", func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, filepath.ToSlash(p))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func readFile(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, name)
	require.NoError(t, err)
	return string(data)
}

func writeFiles(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
}
