package events

import (
	"fmt"
	"strings"
	"time"
)

// Route describes how a navigation request was dispatched.
const (
	RouteInternal  = "internal"  // host moved focus within its own splits
	RouteForwarded = "forwarded" // at edge, forwarded to the multiplexer
	RouteDropped   = "dropped"   // forward failed or mapping was missing
)

// Event records a single navigation dispatch. Emitted by the navigate
// command and consumed by the watch TUI.
type Event struct {
	Host      string    `json:"host"`
	Mux       string    `json:"mux,omitempty"`
	Direction string    `json:"direction"`
	Route     string    `json:"route"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	TS        time.Time `json:"ts"`
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Host) == "" {
		return fmt.Errorf("host is required")
	}
	if !isValidDirection(e.Direction) {
		return fmt.Errorf("invalid direction %q", e.Direction)
	}
	if !isValidRoute(e.Route) {
		return fmt.Errorf("invalid route %q", e.Route)
	}
	if e.TS.IsZero() {
		return fmt.Errorf("ts is required")
	}
	return nil
}

func isValidRoute(route string) bool {
	switch route {
	case RouteInternal, RouteForwarded, RouteDropped:
		return true
	default:
		return false
	}
}

func isValidDirection(dir string) bool {
	switch dir {
	case "left", "right", "up", "down":
		return true
	default:
		return false
	}
}
