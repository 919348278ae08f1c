package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steuerlink/steuerlink/internal/canton/zh"
	"github.com/steuerlink/steuerlink/internal/config"
	"github.com/steuerlink/steuerlink/internal/ech0119"
)

// documentInfo pairs an internal document type with the canton's submission
// code, when the canton defines one.
type documentInfo struct {
	Type string `json:"type"`
	Code string `json:"code,omitempty"`
}

func newDocumentsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "documents [canton]",
		Short: "List the documents a canton requires with a submission",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var code string
			if len(args) > 0 {
				code = args[0]
			} else {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				code = cfg.Project.Canton
			}

			registry := zh.DefaultRegistry()
			if !registry.Has(code) {
				return fmt.Errorf("unknown canton %q, registered: %s", code, strings.Join(registry.Codes(), ", "))
			}
			cfg, _ := registry.Get(code)

			docs := cfg.DocumentRequirements
			if provider, ok := cfg.Extension.(ech0119.RequiredDocumentsProvider); ok {
				docs = provider.RequiredDocuments()
			}

			mapper, hasMapper := cfg.Extension.(ech0119.DocumentTypeMapper)
			out := make([]documentInfo, 0, len(docs))
			for _, d := range docs {
				info := documentInfo{Type: d}
				if hasMapper {
					if c, ok := mapper.MapDocumentType(d); ok {
						info.Code = c
					}
				}
				out = append(out, info)
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "steuerlink.yaml", "config file")

	return cmd
}
