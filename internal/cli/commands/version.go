package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo describes the binary reported by the version command.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Print the rflint version along with the build date and commit it was built from.`,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "rflint v%s\n", info.Version)
			_, _ = fmt.Fprintln(w, "Static analysis for Robot Framework files")
			if info.BuildDate != "" && info.BuildDate != "unknown" {
				_, _ = fmt.Fprintf(w, "  built:  %s\n", info.BuildDate)
			}
			if info.GitCommit != "" && info.GitCommit != "unknown" {
				_, _ = fmt.Fprintf(w, "  commit: %s\n", info.GitCommit)
			}
		},
	}
}
