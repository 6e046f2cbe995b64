package host

import (
	"fmt"
	"os"

	"github.com/timvw/panehop/internal/direction"
)

// Detect auto-detects the host terminal from its environment markers.
// WezTerm and kitty both export a per-pane variable that survives into
// child shells, so presence is a reliable signal.
func Detect(table direction.Table) (Host, error) {
	if os.Getenv("WEZTERM_PANE") != "" {
		return NewWezTerm(table), nil
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return NewKitty(table), nil
	}
	return nil, fmt.Errorf("no supported host terminal detected (set --host or configure command_host)")
}

// FromName creates a built-in Host by name. Config-driven command hosts
// are constructed by the caller, which owns the config.
func FromName(name string, table direction.Table) (Host, error) {
	switch name {
	case "wezterm":
		return NewWezTerm(table), nil
	case "kitty":
		return NewKitty(table), nil
	default:
		return nil, fmt.Errorf("unknown host %q (supported: wezterm, kitty, command)", name)
	}
}
