package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRatesCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rates <bfs-number>",
		Short: "Look up municipality tax rates by BFS number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bfs, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing BFS number %q: %w", args[0], err)
			}

			e, err := loadEnv(configPath)
			if err != nil {
				return err
			}

			m, ok := e.cache.Get(bfs)
			if !ok {
				return fmt.Errorf("unknown municipality BFS number %d", bfs)
			}
			return printJSON(m)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "steuerlink.yaml", "config file")

	return cmd
}
