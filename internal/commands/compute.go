package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steuerlink/steuerlink/internal/tax"
)

func newComputeCommand() *cobra.Command {
	var configPath string
	var full bool

	cmd := &cobra.Command{
		Use:   "compute <declaration.json>",
		Short: "Compute tax amounts for a declaration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(configPath)
			if err != nil {
				return err
			}

			tr, _, err := readDeclaration(args[0])
			if err != nil {
				return err
			}
			warnUnfinished(e.logger, tr)

			computed, err := tax.Compute(tr.Data, e.cache)
			if err != nil {
				return fmt.Errorf("computing tax return: %w", err)
			}

			if full {
				return printJSON(computed)
			}
			return printJSON(tax.Summarize(computed))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "steuerlink.yaml", "config file")
	cmd.Flags().BoolVar(&full, "full", false, "print the full computed return instead of the summary")

	return cmd
}
