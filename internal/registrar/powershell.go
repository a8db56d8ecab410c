package registrar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	oerrors "github.com/helixkit/helix/internal/errors"
	"github.com/helixkit/helix/internal/output"
)

// DefaultShell is the PowerShell executable used when none is configured.
const DefaultShell = "powershell"

// PowerShell runs the add-project script.
//
// Register is fire-and-forget: it returns once the process has started and
// never waits for it. The exit status is only logged (and passed to OnExit)
// from a background goroutine; if helix exits first, the result is not
// observed at all.
type PowerShell struct {
	// Shell is the executable, e.g. powershell or pwsh.
	Shell string

	// Script is the path of the add-project script.
	Script string

	// Dir is the working directory, normally the solution root.
	Dir string

	Stdout io.Writer
	Stderr io.Writer

	// OnExit, when set, receives the process result.
	OnExit func(error)

	// commandFunc builds the command. Replaced in tests.
	commandFunc func(name string, args ...string) *exec.Cmd
}

// NewPowerShell creates a registrar for script run by shell.
func NewPowerShell(shell, script, dir string) *PowerShell {
	if shell == "" {
		shell = DefaultShell
	}
	return &PowerShell{
		Shell:       shell,
		Script:      script,
		Dir:         dir,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		commandFunc: exec.Command,
	}
}

// Command returns the executable and arguments used for reg.
func (p *PowerShell) Command(reg Registration) (string, []string) {
	args := []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File", p.Script}
	return p.Shell, append(args, reg.Args()...)
}

// Register starts the script and returns without waiting for it.
func (p *PowerShell) Register(ctx context.Context, reg Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(p.Script); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return oerrors.NewNotFoundError("registration script does not exist", p.Script,
				"Set registration.script in the config file or HELIX_REGISTRATION_SCRIPT.")
		}
		return oerrors.FileSystem("stat", p.Script, err)
	}

	name, args := p.Command(reg)
	newCmd := p.commandFunc
	if newCmd == nil {
		newCmd = exec.Command
	}
	cmd := newCmd(name, args...)
	cmd.Dir = p.Dir
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return oerrors.NewNotFoundError(fmt.Sprintf("%s not found in PATH", name), "",
				"Install PowerShell or set registration.shell.")
		}
		return fmt.Errorf("starting %s: %w", name, err)
	}

	output.Debug("registration started", "pid", cmd.Process.Pid, "params", reg.String())

	go func() {
		err := cmd.Wait()
		if err != nil {
			output.Warn("solution registration failed", "project", reg.Name, "error", err)
		} else {
			output.Debug("solution registration finished", "project", reg.Name)
		}
		if p.OnExit != nil {
			p.OnExit(err)
		}
	}()

	return nil
}
