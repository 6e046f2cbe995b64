package mux

import (
	"context"
	"fmt"
	"os"

	"github.com/timvw/panehop/internal/direction"
)

// Zellij implements the Multiplexer interface for zellij.
type Zellij struct {
	table  direction.Table
	runner Runner
}

// NewZellij creates a new zellij multiplexer.
func NewZellij(table direction.Table) *Zellij {
	return &Zellij{table: table, runner: execRunner{}}
}

// Name returns "zellij".
func (z *Zellij) Name() string {
	return "zellij"
}

// Active reports whether $ZELLIJ is set. Re-read on every call.
func (z *Zellij) Active() bool {
	return os.Getenv("ZELLIJ") != ""
}

// SelectPane issues "zellij action move-focus <dir>" for the given direction.
func (z *Zellij) SelectPane(ctx context.Context, d direction.Direction) error {
	m, ok := z.table.Lookup(d)
	if !ok {
		return fmt.Errorf("no mapping for direction %s", d)
	}
	if _, err := z.runner.Output(ctx, "zellij", "action", "move-focus", m.ZellijArg); err != nil {
		return fmt.Errorf("zellij action move-focus %s: %w", m.ZellijArg, err)
	}
	return nil
}

// ListPanes is not supported: zellij has no machine-readable pane listing
// comparable to tmux list-panes.
func (z *Zellij) ListPanes(ctx context.Context, filter string) ([]Pane, error) {
	return nil, fmt.Errorf("zellij does not expose a pane listing")
}
