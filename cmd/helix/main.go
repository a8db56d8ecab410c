// Package main is the entry point for the helix CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/helixkit/helix/internal/cmd"
	oerrors "github.com/helixkit/helix/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// The command layer may have printed the details already
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
