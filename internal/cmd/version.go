package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixkit/helix/internal/output"
	"github.com/helixkit/helix/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show helix version information.

Displays:
  - helix version, commit, and build date
  - Go version and platform`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	info := version.GetInfo()

	output.Println(fmt.Sprintf("helix version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:    %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:     %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:        %s", info.GoVersion))
	output.Println(fmt.Sprintf("  Platform:  %s", info.Platform))

	return nil
}
