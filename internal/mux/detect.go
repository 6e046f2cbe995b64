package mux

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/timvw/panehop/internal/direction"
)

// Detect auto-detects the active terminal multiplexer.
// It checks environment variables first, then falls back to checking
// if a tmux server is running.
func Detect(table direction.Table) (Multiplexer, error) {
	if os.Getenv("TMUX") != "" {
		return NewTmux(table), nil
	}
	if os.Getenv("ZELLIJ") != "" {
		return NewZellij(table), nil
	}

	// Fall back to checking for a running tmux server.
	if tmuxPath, err := exec.LookPath("tmux"); err == nil && tmuxPath != "" {
		cmd := exec.Command("tmux", "list-sessions")
		if err := cmd.Run(); err == nil {
			return NewTmux(table), nil
		}
	}

	return nil, fmt.Errorf("no supported terminal multiplexer detected (set $TMUX or $ZELLIJ, or install tmux)")
}

// FromName creates a Multiplexer by name.
func FromName(name string, table direction.Table) (Multiplexer, error) {
	switch name {
	case "tmux":
		return NewTmux(table), nil
	case "zellij":
		return NewZellij(table), nil
	default:
		return nil, fmt.Errorf("unknown multiplexer: %q (supported: tmux, zellij)", name)
	}
}
