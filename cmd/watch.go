package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/panehop/internal/events"
	telem "github.com/timvw/panehop/internal/otel"
	"github.com/timvw/panehop/internal/watch"
)

var flagTheme string
var flagEventSocket string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive TUI showing a live feed of navigation events",
	Long: `Launch a terminal UI that collects navigation events from every
"panehop navigate" invocation on this machine and shows them as a live
feed: which host handled each move, whether it was routed internally,
forwarded to the multiplexer, or dropped.

Events arrive over a unix datagram socket; emission on the navigate side
is fire-and-forget, so running (or not running) the watcher never affects
navigation latency.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.ConfigFile != "" {
			fmt.Fprintf(os.Stderr, "config: loaded %s\n", cfg.ConfigFile)
		}

		// Wire build version into OTEL service metadata
		telem.Version = Version
		tel, err := telem.Init(ctx, telem.OTELConfig{
			Endpoint: cfg.OTELEndpoint,
			Headers:  cfg.OTELHeaders,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: otel init failed: %v\n", err)
		}
		if tel != nil {
			defer tel.Shutdown(ctx)
		}

		socketPath := flagEventSocket
		if socketPath == "" {
			socketPath = cfg.EventSocket
		}
		if socketPath == "" {
			socketPath = events.DefaultSocketPath()
		}

		store := events.NewStore(cfg.EventTTLDuration)
		collector := events.NewCollector(store, socketPath)
		if err := collector.Start(ctx); err != nil {
			return fmt.Errorf("event collector: %w", err)
		}

		theme := flagTheme
		if theme == "" {
			theme = cfg.Theme
		}

		tui := &watch.TUI{
			Store:           store,
			SocketPath:      collector.SocketPath(),
			RefreshInterval: cfg.RefreshDuration,
			ThemeName:       theme,
		}
		return tui.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: dark, light")
	watchCmd.Flags().StringVar(&flagEventSocket, "event-socket", "", "unix datagram socket path for navigation events")
	rootCmd.AddCommand(watchCmd)
}
