// Package router implements the navigation dispatch: decide per request
// whether a directional focus move is handled by the host terminal's own
// split system or forwarded to the surrounding multiplexer.
package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/timvw/panehop/internal/direction"
	"github.com/timvw/panehop/internal/events"
	"github.com/timvw/panehop/internal/host"
	"github.com/timvw/panehop/internal/mux"
	telem "github.com/timvw/panehop/internal/otel"
)

// DefaultForwardTimeout bounds the multiplexer forward so a wedged
// multiplexer cannot hang the host's input handling. Pane selection
// normally completes in low tens of milliseconds.
const DefaultForwardTimeout = 200 * time.Millisecond

// Router dispatches navigation requests. Each Navigate call is a
// stateless, synchronous transition; the router holds no state across
// calls beyond its injected collaborators.
type Router struct {
	Host  host.Host
	Mux   mux.Multiplexer // nil disables forwarding entirely
	Table direction.Table

	Metrics  *telem.Metrics   // optional
	Reporter *events.Reporter // optional

	ForwardTimeout time.Duration // 0 means DefaultForwardTimeout
	Verbose        bool
	Stderr         io.Writer // defaults to os.Stderr
}

// Navigate moves focus one step in direction d.
//
// Outside a multiplexer session this is exactly one native host move.
// Inside a session the move doubles as an edge probe: if the focused
// handle did not change, the request is forwarded to the multiplexer.
// Forward failures are swallowed (best-effort enhancement); host API
// failures propagate to the caller.
func (r *Router) Navigate(ctx context.Context, d direction.Direction) error {
	if _, ok := r.Table.Lookup(d); !ok {
		// Never substitute a default direction; a wrong-way move is
		// worse for the user than no move at all.
		fmt.Fprintf(r.stderr(), "panehop: no mapping for direction %s, ignoring request\n", d)
		r.record(ctx, d, events.RouteDropped, "", "")
		return nil
	}

	if r.Mux == nil || !r.Mux.Active() {
		if err := r.Host.MoveFocus(ctx, d); err != nil {
			return fmt.Errorf("host move %s: %w", d, err)
		}
		r.record(ctx, d, events.RouteInternal, "", "")
		return nil
	}

	before, after, err := r.probe(ctx, d)
	if err != nil {
		return err
	}

	if before != after {
		// The probe is the move: focus already changed, nothing to undo.
		r.record(ctx, d, events.RouteInternal, before, after)
		return nil
	}

	// At edge: forward to the multiplexer under a short timeout.
	timeout := r.ForwardTimeout
	if timeout <= 0 {
		timeout = DefaultForwardTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := r.Mux.SelectPane(fctx, d); err != nil {
		reason := "exec"
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(fctx.Err(), context.DeadlineExceeded) {
			reason = "timeout"
		}
		if r.Verbose {
			fmt.Fprintf(r.stderr(), "panehop: forward %s to %s failed (%s): %v\n", d, r.Mux.Name(), reason, err)
		}
		if r.Metrics != nil {
			r.Metrics.RecordForwardFailure(ctx, reason)
		}
		r.record(ctx, d, events.RouteDropped, before, before)
		return nil
	}

	r.record(ctx, d, events.RouteForwarded, before, before)
	return nil
}

// probe issues the host's native move and reports the focused handle
// before and after. An unchanged handle means the host is at an edge in
// that direction (a single-window host is at an edge for every direction).
func (r *Router) probe(ctx context.Context, d direction.Direction) (before, after string, err error) {
	start := time.Now()

	before, err = r.Host.FocusedPane(ctx)
	if err != nil {
		return "", "", fmt.Errorf("focus query: %w", err)
	}
	if err = r.Host.MoveFocus(ctx, d); err != nil {
		return "", "", fmt.Errorf("host move %s: %w", d, err)
	}
	after, err = r.Host.FocusedPane(ctx)
	if err != nil {
		return "", "", fmt.Errorf("focus query: %w", err)
	}

	if r.Metrics != nil {
		r.Metrics.RecordProbe(ctx, float64(time.Since(start).Microseconds())/1000.0)
	}
	return before, after, nil
}

func (r *Router) record(ctx context.Context, d direction.Direction, route, from, to string) {
	if r.Metrics != nil {
		r.Metrics.RecordNavigation(ctx, r.Host.Name(), d.String(), route)
	}
	if r.Reporter != nil {
		muxName := ""
		if r.Mux != nil {
			muxName = r.Mux.Name()
		}
		r.Reporter.Emit(events.Event{
			Host:      r.Host.Name(),
			Mux:       muxName,
			Direction: d.String(),
			Route:     route,
			From:      from,
			To:        to,
			TS:        time.Now().UTC(),
		})
	}
}

func (r *Router) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
