// Package host abstracts the terminal application that owns the local
// split layout (WezTerm, kitty, or any program with a command surface).
//
// A Host only needs two primitives: a focused-pane query and a directional
// focus move. The router probes for edges by moving and comparing the
// focused handle, so no layout introspection is required.
package host

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/timvw/panehop/internal/direction"
)

// Host abstracts the terminal application's focus API.
type Host interface {
	// Name returns the host name (e.g., "wezterm", "kitty").
	Name() string

	// FocusedPane returns an opaque handle identifying the currently
	// focused pane. Two calls return the same handle iff focus did not
	// move between them.
	FocusedPane(ctx context.Context) (string, error)

	// MoveFocus issues the host's native directional focus move.
	// Moving against an edge is not an error; focus simply stays put.
	MoveFocus(ctx context.Context, d direction.Direction) error
}

// Runner executes an external command and returns its stdout.
// Implementations other than execRunner exist only in tests.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
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
