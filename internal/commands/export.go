package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steuerlink/steuerlink/internal/canton/zh"
	"github.com/steuerlink/steuerlink/internal/ech0119"
)

func newExportCommand() *cobra.Command {
	var configPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <declaration.json>",
		Short: "Export a declaration as an eCH-0119 XML document",
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
			warnUnfinished(e.logger, tr)

			registry := zh.DefaultRegistry()
			xmlOut, _, err := ech0119.Export(tr, user, e.cache, registry, e.cfg.Project.Canton, e.logger)
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Print(xmlOut)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(xmlOut), 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Printf("Wrote eCH-0119 export to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "steuerlink.yaml", "config file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}
