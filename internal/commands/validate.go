package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steuerlink/steuerlink/internal/canton/zh"
	"github.com/steuerlink/steuerlink/internal/ech0119"
	"github.com/steuerlink/steuerlink/internal/tax"
)

func newValidateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate <declaration.json>",
		Short: "Map a declaration and print the eCH-0119 validation report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(configPath)
			if err != nil {
				return err
			}

			tr, user, err := readDeclaration(args[0])
			if err != nil {
				return err
			}

			if err := ech0119.Precheck(tr, user); err != nil {
				return fmt.Errorf("export precondition: %w", err)
			}

			computed, err := tax.Compute(tr.Data, e.cache)
			if err != nil {
				return fmt.Errorf("computing tax return: %w", err)
			}

			registry := zh.DefaultRegistry()
			msg, err := ech0119.Map(tr, user, computed, registry, e.cfg.Project.Canton)
			if err != nil {
				return fmt.Errorf("mapping to eCH-0119: %w", err)
			}

			report := ech0119.Validate(msg, computed, registry, e.logger)
			if err := printJSON(report); err != nil {
				return err
			}
			if !report.IsValid {
				return fmt.Errorf("validation failed with %d error(s)", report.ErrorCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "steuerlink.yaml", "config file")

	return cmd
}
