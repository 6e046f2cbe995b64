package host

import (
	"context"
	"fmt"
	"strings"

	"github.com/timvw/panehop/internal/direction"
)

// CommandHost implements Host for any terminal application that exposes a
// focus-query command and per-direction focus-move commands. Both are
// supplied by the user's config file, making the host layer polymorphic
// over programs panehop has no built-in support for.
type CommandHost struct {
	name       string
	focusQuery []string
	move       map[direction.Direction][]string
	runner     Runner
}

// NewCommandHost builds a CommandHost from config-file argv lists.
// The move map is keyed by direction name ("left", "right", "up", "down")
// and must cover all four directions.
func NewCommandHost(name string, focusQuery []string, move map[string][]string) (*CommandHost, error) {
	if name == "" {
		name = "command"
	}
	if len(focusQuery) == 0 {
		return nil, fmt.Errorf("command host: focus_query is required")
	}

	parsed := make(map[direction.Direction][]string, len(direction.All))
	for key, argv := range move {
		d, err := direction.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("command host: %w", err)
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("command host: move command for %s is empty", d)
		}
		parsed[d] = argv
	}
	for _, d := range direction.All {
		if _, ok := parsed[d]; !ok {
			return nil, fmt.Errorf("command host: no move command for %s", d)
		}
	}

	return &CommandHost{
		name:       name,
		focusQuery: focusQuery,
		move:       parsed,
		runner:     execRunner{},
	}, nil
}

// Name returns the configured host name.
func (c *CommandHost) Name() string {
	return c.name
}

// FocusedPane runs the configured focus-query command and returns its
// trimmed stdout as the pane handle.
func (c *CommandHost) FocusedPane(ctx context.Context) (string, error) {
	out, err := c.runner.Output(ctx, c.focusQuery[0], c.focusQuery[1:]...)
	if err != nil {
		return "", fmt.Errorf("focus query %q: %w", c.focusQuery[0], err)
	}
	handle := strings.TrimSpace(out)
	if handle == "" {
		return "", fmt.Errorf("focus query %q: empty output", c.focusQuery[0])
	}
	return handle, nil
}

// MoveFocus runs the configured move command for d.
func (c *CommandHost) MoveFocus(ctx context.Context, d direction.Direction) error {
	argv, ok := c.move[d]
	if !ok {
		return fmt.Errorf("no move command for direction %s", d)
	}
	if _, err := c.runner.Output(ctx, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("move command %q: %w", argv[0], err)
	}
	return nil
}
