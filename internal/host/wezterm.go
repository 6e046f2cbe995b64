package host

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/timvw/panehop/internal/direction"
)

// WezTerm implements Host using the wezterm CLI.
type WezTerm struct {
	table  direction.Table
	runner Runner
}

// NewWezTerm creates a WezTerm host backed by the wezterm binary.
func NewWezTerm(table direction.Table) *WezTerm {
	return &WezTerm{table: table, runner: execRunner{}}
}

// Name returns "wezterm".
func (w *WezTerm) Name() string {
	return "wezterm"
}

// FocusedPane returns the focused pane ID reported by
// "wezterm cli list-clients --format json".
func (w *WezTerm) FocusedPane(ctx context.Context) (string, error) {
	out, err := w.runner.Output(ctx, "wezterm", "cli", "list-clients", "--format", "json")
	if err != nil {
		return "", fmt.Errorf("wezterm cli list-clients: %w", err)
	}

	var clients []struct {
		FocusedPaneID *int64 `json:"focused_pane_id"`
	}
	if err := json.Unmarshal([]byte(out), &clients); err != nil {
		return "", fmt.Errorf("wezterm cli list-clients: invalid JSON: %w", err)
	}
	for _, c := range clients {
		if c.FocusedPaneID != nil {
			return strconv.FormatInt(*c.FocusedPaneID, 10), nil
		}
	}
	return "", fmt.Errorf("wezterm cli list-clients: no client with a focused pane")
}

// MoveFocus issues "wezterm cli activate-pane-direction <Dir>".
// WezTerm silently keeps focus when there is no pane in that direction.
func (w *WezTerm) MoveFocus(ctx context.Context, d direction.Direction) error {
	m, ok := w.table.Lookup(d)
	if !ok {
		return fmt.Errorf("no mapping for direction %s", d)
	}
	if _, err := w.runner.Output(ctx, "wezterm", "cli", "activate-pane-direction", m.WezTermArg); err != nil {
		return fmt.Errorf("wezterm cli activate-pane-direction %s: %w", m.WezTermArg, err)
	}
	return nil
}
