package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/helixkit/helix/internal/errors"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Paths(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "add-project.ps1")
	require.NoError(t, os.WriteFile(script, nil, 0o644))

	cfg := DefaultConfig()
	cfg.Templates = dir
	cfg.Registration.Script = script
	assert.NoError(t, Validate(cfg))

	cfg.Templates = script
	cfg.Registration.Script = dir
	err := Validate(cfg)
	require.Error(t, err)

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Contains(t, detail.Context["templates"], "is not a directory")
	assert.Contains(t, detail.Context["registration.script"], "is a directory")
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceFolder = "/abs/src"
	cfg.Target = "v9.9"
	cfg.Templates = filepath.Join(t.TempDir(), "missing")

	err := Validate(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Len(t, detail.Context, 3)
	assert.Contains(t, detail.Message, "sourceFolder, target, templates")
	assert.Contains(t, detail.Context["templates"], "does not exist")
}

func TestDefaultConfigYAML(t *testing.T) {
	data, err := DefaultConfigYAML()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "# helix configuration.")
	assert.Contains(t, out, "sourceFolder: src")
	assert.Contains(t, out, "target: v4.8")
	assert.Contains(t, out, "serialization: true")
	assert.Contains(t, out, "shell: powershell")

	// The document loads back into the same values.
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().SourceFolder, cfg.SourceFolder)
	assert.Equal(t, DefaultConfig().Registration.Shell, cfg.Registration.Shell)
}
