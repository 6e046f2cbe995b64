package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/panehop/internal/config"
	"github.com/timvw/panehop/internal/direction"
	"github.com/timvw/panehop/internal/host"
	"github.com/timvw/panehop/internal/mux"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	// Global flags. Empty means "defer to config file / env / detection".
	flagHost    string
	flagMux     string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "panehop",
	Short: "Seamless focus navigation between terminal splits and multiplexer panes",
	Long: `panehop routes directional focus-move requests between a host terminal's
own split system and a surrounding terminal multiplexer.

Bind your directional keys to "panehop navigate <direction>": when the host
can move focus internally it does, and when the request hits the edge of
the host's splits inside a tmux or zellij session, panehop forwards it to
the multiplexer's pane selection instead.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "host terminal: wezterm, kitty, command (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&flagMux, "mux", "", "terminal multiplexer: tmux, zellij (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log routing decisions and swallowed failures to stderr")
}

// loadConfig loads file + env configuration and applies explicit flags on
// top. Flags always win.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagMux != "" {
		cfg.Mux = flagMux
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// getTable returns the validated direction mapping table. A table that
// fails its invariant is a hard startup error, never a silent fallback.
func getTable() (direction.Table, error) {
	table := direction.DefaultTable()
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("direction mapping: %w", err)
	}
	return table, nil
}

// getHost returns the configured or auto-detected host terminal.
func getHost(cfg *config.Config, table direction.Table) (host.Host, error) {
	switch cfg.Host {
	case "":
		if cfg.CommandHost.Configured() {
			return commandHost(cfg)
		}
		return host.Detect(table)
	case "command":
		return commandHost(cfg)
	default:
		return host.FromName(cfg.Host, table)
	}
}

func commandHost(cfg *config.Config) (host.Host, error) {
	return host.NewCommandHost(cfg.CommandHost.Name, cfg.CommandHost.FocusQuery, cfg.CommandHost.Move)
}

// getMultiplexer returns the configured or auto-detected multiplexer.
func getMultiplexer(cfg *config.Config, table direction.Table) (mux.Multiplexer, error) {
	if cfg.Mux != "" {
		return mux.FromName(cfg.Mux, table)
	}
	return mux.Detect(table)
}
