package router

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/timvw/panehop/internal/direction"
	"github.com/timvw/panehop/internal/mux"
)

// mockHost implements host.Host. Focus handles are served from a queue so
// a test can script "focus moved" vs "focus stayed put".
type mockHost struct {
	handles    []string // consumed by successive FocusedPane calls
	handleIdx  int
	moves      int
	queries    int
	moveErr    error
	queryErr   error
	lastedMove direction.Direction
}

func (h *mockHost) Name() string { return "mock" }

func (h *mockHost) FocusedPane(_ context.Context) (string, error) {
	h.queries++
	if h.queryErr != nil {
		return "", h.queryErr
	}
	if h.handleIdx >= len(h.handles) {
		return h.handles[len(h.handles)-1], nil
	}
	handle := h.handles[h.handleIdx]
	h.handleIdx++
	return handle, nil
}

func (h *mockHost) MoveFocus(_ context.Context, d direction.Direction) error {
	h.moves++
	h.lastedMove = d
	return h.moveErr
}

// mockMux implements mux.Multiplexer with a scriptable session flag.
type mockMux struct {
	active    bool
	selects   int
	lastDir   direction.Direction
	selectErr error
	slow      time.Duration // SelectPane blocks until ctx expiry when > 0
}

func (m *mockMux) Name() string { return "mockmux" }
func (m *mockMux) Active() bool { return m.active }

func (m *mockMux) SelectPane(ctx context.Context, d direction.Direction) error {
	m.selects++
	m.lastDir = d
	if m.slow > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.slow):
		}
	}
	return m.selectErr
}

func (m *mockMux) ListPanes(_ context.Context, _ string) ([]mux.Pane, error) {
	return nil, nil
}

func newRouter(h *mockHost, m *mockMux) *Router {
	return &Router{
		Host:   h,
		Mux:    m,
		Table:  direction.DefaultTable(),
		Stderr: &bytes.Buffer{},
	}
}

func TestNavigateOutsideSession(t *testing.T) {
	for _, d := range direction.All {
		h := &mockHost{handles: []string{"1"}}
		m := &mockMux{active: false}
		r := newRouter(h, m)

		if err := r.Navigate(context.Background(), d); err != nil {
			t.Fatalf("Navigate(%s): %v", d, err)
		}
		if h.moves != 1 {
			t.Errorf("Navigate(%s): %d host moves, want 1", d, h.moves)
		}
		if h.queries != 0 {
			t.Errorf("Navigate(%s): %d focus queries outside session, want 0", d, h.queries)
		}
		if m.selects != 0 {
			t.Errorf("Navigate(%s): %d forwards, want 0", d, m.selects)
		}
	}
}

func TestNavigateInSessionInternalMoveWins(t *testing.T) {
	for _, d := range direction.All {
		h := &mockHost{handles: []string{"1", "2"}} // focus changes
		m := &mockMux{active: true}
		r := newRouter(h, m)

		if err := r.Navigate(context.Background(), d); err != nil {
			t.Fatalf("Navigate(%s): %v", d, err)
		}
		if h.moves != 1 {
			t.Errorf("Navigate(%s): %d host moves, want 1", d, h.moves)
		}
		if m.selects != 0 {
			t.Errorf("Navigate(%s): internal move must suppress forwarding, got %d forwards", d, m.selects)
		}
	}
}

func TestNavigateAtEdgeForwards(t *testing.T) {
	for _, d := range direction.All {
		h := &mockHost{handles: []string{"1", "1"}} // single window: probe never moves
		m := &mockMux{active: true}
		r := newRouter(h, m)

		if err := r.Navigate(context.Background(), d); err != nil {
			t.Fatalf("Navigate(%s): %v", d, err)
		}
		if m.selects != 1 {
			t.Errorf("Navigate(%s): %d forwards, want 1", d, m.selects)
		}
		if m.lastDir != d {
			t.Errorf("Navigate(%s): forwarded %s", d, m.lastDir)
		}
	}
}

func TestNavigateAtEdgeTwiceForwardsTwice(t *testing.T) {
	h := &mockHost{handles: []string{"1", "1", "1", "1"}}
	m := &mockMux{active: true}
	r := newRouter(h, m)

	ctx := context.Background()
	if err := r.Navigate(ctx, direction.Right); err != nil {
		t.Fatalf("first Navigate: %v", err)
	}
	if err := r.Navigate(ctx, direction.Right); err != nil {
		t.Fatalf("second Navigate: %v", err)
	}
	if m.selects != 2 {
		t.Errorf("forwarding must not be deduplicated: %d forwards, want 2", m.selects)
	}
}

func TestNavigateMissingMappingIsLoggedNoOp(t *testing.T) {
	h := &mockHost{handles: []string{"1"}}
	m := &mockMux{active: true}
	tbl := direction.DefaultTable()
	delete(tbl, direction.Up)

	var stderr bytes.Buffer
	r := &Router{Host: h, Mux: m, Table: tbl, Stderr: &stderr}

	if err := r.Navigate(context.Background(), direction.Up); err != nil {
		t.Fatalf("Navigate with missing mapping must not fail: %v", err)
	}
	if h.moves != 0 {
		t.Errorf("missing mapping must not move focus, got %d moves", h.moves)
	}
	if m.selects != 0 {
		t.Errorf("missing mapping must not forward, got %d forwards", m.selects)
	}
	if stderr.Len() == 0 {
		t.Error("expected a logged configuration error")
	}
}

func TestNavigateForwardFailureIsSwallowed(t *testing.T) {
	h := &mockHost{handles: []string{"1", "1"}}
	m := &mockMux{active: true, selectErr: errors.New("tmux: exit status 1")}
	r := newRouter(h, m)

	if err := r.Navigate(context.Background(), direction.Left); err != nil {
		t.Fatalf("forward failure must be swallowed, got %v", err)
	}
	if m.selects != 1 {
		t.Errorf("%d forwards, want 1", m.selects)
	}
}

func TestNavigateForwardTimeout(t *testing.T) {
	h := &mockHost{handles: []string{"1", "1"}}
	m := &mockMux{active: true, slow: time.Second}
	r := newRouter(h, m)
	r.ForwardTimeout = 10 * time.Millisecond

	start := time.Now()
	if err := r.Navigate(context.Background(), direction.Down); err != nil {
		t.Fatalf("forward timeout must be swallowed, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Navigate blocked %v, timeout not applied", elapsed)
	}
}

func TestNavigateHostMoveErrorPropagates(t *testing.T) {
	h := &mockHost{handles: []string{"1"}, moveErr: errors.New("ipc failure")}
	m := &mockMux{active: false}
	r := newRouter(h, m)

	if err := r.Navigate(context.Background(), direction.Left); err == nil {
		t.Fatal("host move failure must propagate")
	}
}

func TestNavigateHostQueryErrorPropagates(t *testing.T) {
	h := &mockHost{queryErr: errors.New("ipc failure")}
	m := &mockMux{active: true}
	r := newRouter(h, m)

	if err := r.Navigate(context.Background(), direction.Left); err == nil {
		t.Fatal("focus query failure must propagate")
	}
}

func TestNavigateNilMuxNeverForwards(t *testing.T) {
	h := &mockHost{handles: []string{"1"}}
	r := &Router{Host: h, Table: direction.DefaultTable(), Stderr: &bytes.Buffer{}}

	if err := r.Navigate(context.Background(), direction.Right); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if h.moves != 1 {
		t.Errorf("%d host moves, want 1", h.moves)
	}
}
