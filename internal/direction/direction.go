// Package direction defines the four navigational vectors and the static
// mapping from each vector to the command arguments of every supported
// host and multiplexer backend.
package direction

import (
	"fmt"
	"strings"
)

// Direction is one of the four navigational vectors.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// All lists every direction, in declaration order.
var All = []Direction{Left, Right, Up, Down}

// String returns the lowercase direction name (e.g., "left").
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Parse converts a direction argument to a Direction.
// Accepts full names ("left") and vim-style single letters ("h").
func Parse(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "h":
		return Left, nil
	case "right", "l":
		return Right, nil
	case "up", "k":
		return Up, nil
	case "down", "j":
		return Down, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (expected left, right, up, down)", s)
	}
}

// Mapping holds the per-backend command arguments for one direction.
type Mapping struct {
	// TmuxFlag is the tmux select-pane flag (e.g., "-L").
	TmuxFlag string
	// ZellijArg is the zellij move-focus argument (e.g., "left").
	ZellijArg string
	// WezTermArg is the wezterm activate-pane-direction argument (e.g., "Left").
	WezTermArg string
	// KittyMatch is the kitty focus-window match expression (e.g., "neighbor:left").
	KittyMatch string
}

// Table maps each Direction to its backend arguments. Built once at
// startup and never mutated afterwards.
type Table map[Direction]Mapping

// DefaultTable returns the mapping table for all supported backends.
func DefaultTable() Table {
	return Table{
		Left:  {TmuxFlag: "-L", ZellijArg: "left", WezTermArg: "Left", KittyMatch: "neighbor:left"},
		Right: {TmuxFlag: "-R", ZellijArg: "right", WezTermArg: "Right", KittyMatch: "neighbor:right"},
		Up:    {TmuxFlag: "-U", ZellijArg: "up", WezTermArg: "Up", KittyMatch: "neighbor:up"},
		Down:  {TmuxFlag: "-D", ZellijArg: "down", WezTermArg: "Down", KittyMatch: "neighbor:down"},
	}
}

// Validate checks the table invariant: exactly one entry per direction and
// no duplicate flags. A table that fails validation must not be used.
func (t Table) Validate() error {
	if len(t) != len(All) {
		return fmt.Errorf("mapping table has %d entries, want %d", len(t), len(All))
	}
	seen := make(map[string]Direction, len(All))
	for _, d := range All {
		m, ok := t[d]
		if !ok {
			return fmt.Errorf("mapping table has no entry for %s", d)
		}
		if m.TmuxFlag == "" {
			return fmt.Errorf("mapping for %s has an empty tmux flag", d)
		}
		if prev, dup := seen[m.TmuxFlag]; dup {
			return fmt.Errorf("mapping flag %q assigned to both %s and %s", m.TmuxFlag, prev, d)
		}
		seen[m.TmuxFlag] = d
	}
	return nil
}

// Lookup returns the mapping for d. The second return value is false when
// the table has no entry; callers must treat that as a configuration error
// and never substitute a default direction.
func (t Table) Lookup(d Direction) (Mapping, bool) {
	m, ok := t[d]
	return m, ok
}
