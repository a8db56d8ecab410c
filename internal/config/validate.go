package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/settings"
)

// Validate checks cfg for values that would fail a later add. All problems
// are reported together, keyed by config key.
func Validate(cfg *Config) error {
	problems := make(map[string]string)

	if filepath.IsAbs(cfg.SourceFolder) {
		problems["sourceFolder"] = "must be relative to the solution root"
	}
	if cfg.Target != "" && !settings.IsValidTarget(cfg.Target) {
		problems["target"] = fmt.Sprintf("unsupported %q, valid: %s", cfg.Target, strings.Join(settings.Targets(), ", "))
	}
	if cfg.Templates != "" {
		if msg := checkPath(cfg.Templates, true); msg != "" {
			problems["templates"] = msg
		}
	}
	if cfg.Registration.Script != "" {
		if msg := checkPath(cfg.Registration.Script, false); msg != "" {
			problems["registration.script"] = msg
		}
	}

	if len(problems) == 0 {
		return nil
	}

	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &oerrors.DetailError{
		Type:    "validation failed",
		Message: fmt.Sprintf("%d invalid configuration value(s): %s", len(problems), strings.Join(keys, ", ")),
		Context: problems,
		Cause:   oerrors.ErrValidation,
	}
}

// checkPath returns a problem description, or "" when p exists with the
// expected kind.
func checkPath(p string, wantDir bool) string {
	expanded, err := ExpandPath(p)
	if err != nil {
		return err.Error()
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Sprintf("%s does not exist", expanded)
		}
		return err.Error()
	}
	if wantDir && !info.IsDir() {
		return fmt.Sprintf("%s is not a directory", expanded)
	}
	if !wantDir && info.IsDir() {
		return fmt.Sprintf("%s is a directory", expanded)
	}
	return ""
}
