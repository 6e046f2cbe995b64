// Package mux provides an abstraction over terminal multiplexers (tmux,
// zellij). The router only needs session detection and a directional
// pane-selection command; pane listing exists for the list and doctor
// commands.
package mux

import (
	"context"

	"github.com/timvw/panehop/internal/direction"
)

// Multiplexer abstracts terminal multiplexer operations.
type Multiplexer interface {
	// Name returns the multiplexer name (e.g., "tmux", "zellij").
	Name() string

	// Active reports whether the current process runs inside a session
	// of this multiplexer. Read from the environment at call time, never
	// cached — the process may be reparented after launch.
	Active() bool

	// SelectPane forwards a directional pane selection to the
	// multiplexer. Selecting against an edge is not an error.
	SelectPane(ctx context.Context, d direction.Direction) error

	// ListPanes returns all panes, optionally filtered by a session name
	// regex pattern. An empty filter returns all panes. Multiplexers
	// without a pane listing return an error.
	ListPanes(ctx context.Context, filter string) ([]Pane, error)
}

// Pane represents a terminal multiplexer pane.
type Pane struct {
	// Target is the fully qualified pane identifier (e.g., "session:0.0").
	Target string `json:"target"`
	// Session is the session name.
	Session string `json:"session"`
	// Window is the window index.
	Window int `json:"window"`
	// Pane is the pane index.
	Pane int `json:"pane"`
	// Active indicates the pane currently holding the multiplexer's focus.
	Active bool `json:"active"`
	// Command is the current command running in the pane (e.g., "zsh").
	Command string `json:"command"`
}

// Runner executes an external command and returns its stdout.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}
