package mux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/timvw/panehop/internal/direction"
)

// Tmux implements the Multiplexer interface for tmux.
type Tmux struct {
	table  direction.Table
	runner Runner
}

// NewTmux creates a new tmux multiplexer.
func NewTmux(table direction.Table) *Tmux {
	return &Tmux{table: table, runner: execRunner{}}
}

// Name returns "tmux".
func (t *Tmux) Name() string {
	return "tmux"
}

// Active reports whether $TMUX is set. Re-read on every call.
func (t *Tmux) Active() bool {
	return os.Getenv("TMUX") != ""
}

// SelectPane issues "tmux select-pane <flag>" for the given direction.
func (t *Tmux) SelectPane(ctx context.Context, d direction.Direction) error {
	m, ok := t.table.Lookup(d)
	if !ok {
		return fmt.Errorf("no mapping for direction %s", d)
	}
	if _, err := t.run(ctx, "select-pane", m.TmuxFlag); err != nil {
		return fmt.Errorf("tmux select-pane %s: %w", m.TmuxFlag, err)
	}
	return nil
}

// ListPanes returns all tmux panes, optionally filtered by session name pattern.
func (t *Tmux) ListPanes(ctx context.Context, filter string) ([]Pane, error) {
	// Format: session_name:window_index.pane_index\tpane_active\tcurrent_command
	format := "#{session_name}:#{window_index}.#{pane_index}\t#{pane_active}\t#{pane_current_command}"
	out, err := t.run(ctx, "list-panes", "-a", "-F", format)
	if err != nil {
		return nil, fmt.Errorf("tmux list-panes: %w", err)
	}

	var re *regexp.Regexp
	if filter != "" {
		re, err = regexp.Compile(filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", filter, err)
		}
	}

	var panes []Pane
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}

		pane, err := parseTarget(parts[0])
		if err != nil {
			continue
		}
		pane.Active = parts[1] == "1"
		pane.Command = parts[2]

		if re != nil && !re.MatchString(pane.Session) {
			continue
		}

		panes = append(panes, pane)
	}

	return panes, nil
}

// run executes a tmux command through the runner and returns its stdout.
func (t *Tmux) run(ctx context.Context, args ...string) (string, error) {
	return t.runner.Output(ctx, "tmux", args...)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%w: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}

// parseTarget parses a tmux target string "session:window.pane" into a Pane.
func parseTarget(target string) (Pane, error) {
	colonIdx := strings.LastIndex(target, ":")
	if colonIdx < 0 {
		return Pane{}, fmt.Errorf("invalid target %q: missing ':'", target)
	}

	session := target[:colonIdx]
	rest := target[colonIdx+1:]

	dotIdx := strings.LastIndex(rest, ".")
	if dotIdx < 0 {
		return Pane{}, fmt.Errorf("invalid target %q: missing '.'", target)
	}

	window, err := strconv.Atoi(rest[:dotIdx])
	if err != nil {
		return Pane{}, fmt.Errorf("invalid window index in %q: %w", target, err)
	}

	pane, err := strconv.Atoi(rest[dotIdx+1:])
	if err != nil {
		return Pane{}, fmt.Errorf("invalid pane index in %q: %w", target, err)
	}

	return Pane{
		Target:  target,
		Session: session,
		Window:  window,
		Pane:    pane,
	}, nil
}
