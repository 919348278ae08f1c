package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/steuerlink/steuerlink/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new steuerlink project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	for _, d := range []string{"rates", "declarations", "exports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "steuerlink.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := "exports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Initialized steuerlink project at %s\n", dir)
	return nil
}
