package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steuerlink/steuerlink/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "steuerlink",
		Short:   "Swiss tax computation and eCH-0119 export",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newComputeCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newRatesCommand())
	rootCmd.AddCommand(newDocumentsCommand())

	return rootCmd
}
