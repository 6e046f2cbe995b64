package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all multiplexer pane targets",
	Long: `List all terminal multiplexer panes as targets.

Each line is a pane target (e.g., "mysession:0.1"). Optionally filter by
session name using a regex pattern. Panes the multiplexer reports as
focused are marked with "*".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := getTable()
		if err != nil {
			return err
		}
		m, err := getMultiplexer(cfg, table)
		if err != nil {
			return err
		}

		panes, err := m.ListPanes(cmd.Context(), flagFilter)
		if err != nil {
			return fmt.Errorf("failed to list panes: %w", err)
		}

		for _, p := range panes {
			marker := " "
			if p.Active {
				marker = "*"
			}
			fmt.Printf("%s %s\t%s\n", marker, p.Target, p.Command)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagFilter, "filter", "", "regex pattern to filter by session name")
	rootCmd.AddCommand(listCmd)
}
