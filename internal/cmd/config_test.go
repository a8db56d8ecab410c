package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/helixkit/helix/internal/errors"
)

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv("HELIX_CONFIG", path)

	_, err := runHelix(t, "config", "init")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sourceFolder: src")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigInit_ExistingRequiresForce(t *testing.T) {
	path := writeConfig(t, "target: v4.5\n")

	_, err := runHelix(t, "config", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	_, err = runHelix(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "target: v4.8")
}

func TestConfigVet(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		isolatedConfig(t)
		_, err := runHelix(t, "config", "vet")
		assert.ErrorIs(t, err, oerrors.ErrNotFound)
	})

	t.Run("defaults are valid", func(t *testing.T) {
		isolatedConfig(t)
		_, err := runHelix(t, "config", "init")
		require.NoError(t, err)

		_, err = runHelix(t, "config", "vet")
		assert.NoError(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		writeConfig(t, "target: [oops\n")
		_, err := runHelix(t, "config", "vet")
		assert.ErrorIs(t, err, oerrors.ErrValidation)
	})

	t.Run("bad values", func(t *testing.T) {
		writeConfig(t, "target: v9.9\nregistration:\n  script: /nonexistent/add-project.ps1\n")
		_, err := runHelix(t, "config", "vet")
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
		assert.Contains(t, err.Error(), "registration.script")
	})
}

func TestVersionCmd_Execute(t *testing.T) {
	isolatedConfig(t)

	_, err := runHelix(t, "version")
	assert.NoError(t, err)
}
