package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/timvw/panehop/internal/direction"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose host, multiplexer, and mapping configuration",
	Long: `Print what panehop detects in the current environment: the host
terminal, the multiplexer and whether its session is active, the direction
mapping table, and which backend binaries are on PATH.

Purely diagnostic — always exits 0.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Printf("config:       error: %v\n", err)
			return
		}
		if cfg.ConfigFile != "" {
			fmt.Printf("config:       %s\n", cfg.ConfigFile)
		} else {
			fmt.Printf("config:       (defaults)\n")
		}

		table, err := getTable()
		if err != nil {
			fmt.Printf("mapping:      error: %v\n", err)
			return
		}

		if h, err := getHost(cfg, table); err != nil {
			fmt.Printf("host:         not detected (%v)\n", err)
		} else {
			fmt.Printf("host:         %s\n", h.Name())
		}

		if m, err := getMultiplexer(cfg, table); err != nil {
			fmt.Printf("multiplexer:  not detected (%v)\n", err)
		} else {
			active := "inactive (navigation stays host-only)"
			if m.Active() {
				active = "active session"
			}
			fmt.Printf("multiplexer:  %s, %s\n", m.Name(), active)
		}

		fmt.Printf("forward:      timeout %s\n", cfg.ForwardTimeoutDuration)

		fmt.Println("\nmapping table:")
		for _, d := range direction.All {
			m, _ := table.Lookup(d)
			fmt.Printf("  %-6s tmux %-3s  zellij %-6s  wezterm %-6s  kitty %s\n",
				d, m.TmuxFlag, m.ZellijArg, m.WezTermArg, m.KittyMatch)
		}

		fmt.Println("\nbinaries:")
		for _, bin := range []string{"tmux", "zellij", "wezterm", "kitten"} {
			if path, err := exec.LookPath(bin); err == nil {
				fmt.Printf("  %-8s %s\n", bin, path)
			} else {
				fmt.Printf("  %-8s not found\n", bin)
			}
		}

		fmt.Println("\nenvironment:")
		for _, key := range []string{"TMUX", "ZELLIJ", "WEZTERM_PANE", "KITTY_WINDOW_ID"} {
			if v := os.Getenv(key); v != "" {
				fmt.Printf("  %-16s set\n", key)
			} else {
				fmt.Printf("  %-16s unset\n", key)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
