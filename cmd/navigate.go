package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/timvw/panehop/internal/direction"
	"github.com/timvw/panehop/internal/events"
	telem "github.com/timvw/panehop/internal/otel"
	"github.com/timvw/panehop/internal/router"
)

var navigateCmd = &cobra.Command{
	Use:     "navigate <left|right|up|down>",
	Aliases: []string{"nav"},
	Short:   "Move focus one pane in a direction",
	Long: `Move focus one step in the given direction.

Outside a multiplexer session this is exactly the host terminal's native
focus move. Inside a session, a move that hits the edge of the host's
splits is forwarded to the multiplexer's pane selection. Forwarding is
best-effort: a missing or failing multiplexer never makes this command
fail, focus simply stays where it is.

Directions accept full names (left) and vim-style letters (h, j, k, l).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		d, err := direction.Parse(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		table, err := getTable()
		if err != nil {
			return err
		}

		h, err := getHost(cfg, table)
		if err != nil {
			return err
		}

		// A missing multiplexer downgrades to host-only navigation.
		m, err := getMultiplexer(cfg, table)
		if err != nil {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "panehop: %v (host-only navigation)\n", err)
			}
			m = nil
		}

		// Telemetry is a no-op without an endpoint; init stays cheap.
		telem.Version = Version
		tel, err := telem.Init(ctx, telem.OTELConfig{
			Endpoint: cfg.OTELEndpoint,
			Headers:  cfg.OTELHeaders,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: otel init failed: %v\n", err)
			tel = nil
		}
		if tel != nil {
			defer tel.Shutdown(ctx)
		}

		socketPath := cfg.EventSocket
		if socketPath == "" {
			socketPath = events.DefaultSocketPath()
		}

		r := &router.Router{
			Host:           h,
			Mux:            m,
			Table:          table,
			Reporter:       events.NewReporter(socketPath),
			ForwardTimeout: cfg.ForwardTimeoutDuration,
			Verbose:        cfg.Verbose,
		}
		if tel != nil {
			r.Metrics = tel.Metrics

			var span trace.Span
			ctx, span = tel.Tracer.Start(ctx, "navigate",
				trace.WithAttributes(
					attribute.String("direction", d.String()),
					attribute.String("host", h.Name()),
				))
			defer span.End()
		}

		return r.Navigate(ctx, d)
	},
}

func init() {
	rootCmd.AddCommand(navigateCmd)
}
