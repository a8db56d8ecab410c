package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".helix"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".helix", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv("HELIX_CONFIG", "/custom/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/helix", "/etc/helix"},
		{"relative", "templates", "templates"},
		{"home", "~", home},
		{"home subpath", "~/templates", filepath.Join(home, "templates")},
		{"other user", "~bob/x", "~bob/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
