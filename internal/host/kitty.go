package host

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/timvw/panehop/internal/direction"
)

// Kitty implements Host using kitty's remote control protocol ("kitten @").
// Requires allow_remote_control in the user's kitty.conf.
type Kitty struct {
	table  direction.Table
	runner Runner
}

// NewKitty creates a Kitty host backed by the kitten binary.
func NewKitty(table direction.Table) *Kitty {
	return &Kitty{table: table, runner: execRunner{}}
}

// Name returns "kitty".
func (k *Kitty) Name() string {
	return "kitty"
}

// kittyOSWindow mirrors the subset of "kitten @ ls" output we need.
type kittyOSWindow struct {
	IsFocused bool `json:"is_focused"`
	Tabs      []struct {
		IsFocused bool `json:"is_focused"`
		Windows   []struct {
			ID        int64 `json:"id"`
			IsFocused bool  `json:"is_focused"`
		} `json:"windows"`
	} `json:"tabs"`
}

// FocusedPane walks the "kitten @ ls" JSON for the focused window in the
// focused tab of the focused OS window.
func (k *Kitty) FocusedPane(ctx context.Context) (string, error) {
	out, err := k.runner.Output(ctx, "kitten", "@", "ls")
	if err != nil {
		return "", fmt.Errorf("kitten @ ls: %w", err)
	}

	var osWindows []kittyOSWindow
	if err := json.Unmarshal([]byte(out), &osWindows); err != nil {
		return "", fmt.Errorf("kitten @ ls: invalid JSON: %w", err)
	}
	for _, ow := range osWindows {
		if !ow.IsFocused {
			continue
		}
		for _, tab := range ow.Tabs {
			if !tab.IsFocused {
				continue
			}
			for _, win := range tab.Windows {
				if win.IsFocused {
					return strconv.FormatInt(win.ID, 10), nil
				}
			}
		}
	}
	return "", fmt.Errorf("kitten @ ls: no focused window found")
}

// MoveFocus issues "kitten @ focus-window --match neighbor:<dir>".
// Kitty exits non-zero when no neighbor matches; that is the at-edge
// outcome, not a failure, so it is mapped to a nil error.
func (k *Kitty) MoveFocus(ctx context.Context, d direction.Direction) error {
	m, ok := k.table.Lookup(d)
	if !ok {
		return fmt.Errorf("no mapping for direction %s", d)
	}
	if _, err := k.runner.Output(ctx, "kitten", "@", "focus-window", "--match", m.KittyMatch); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "no matching window") {
			return nil
		}
		return fmt.Errorf("kitten @ focus-window --match %s: %w", m.KittyMatch, err)
	}
	return nil
}
