package events

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func validEvent(ts time.Time) Event {
	return Event{
		Host:      "wezterm",
		Mux:       "tmux",
		Direction: "left",
		Route:     RouteForwarded,
		From:      "3",
		To:        "3",
		TS:        ts,
	}
}

func TestEventValidate(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		mutate  func(*Event)
		wantErr bool
	}{
		{name: "valid", mutate: func(e *Event) {}},
		{name: "missing host", mutate: func(e *Event) { e.Host = " " }, wantErr: true},
		{name: "bad direction", mutate: func(e *Event) { e.Direction = "north" }, wantErr: true},
		{name: "bad route", mutate: func(e *Event) { e.Route = "teleported" }, wantErr: true},
		{name: "zero ts", mutate: func(e *Event) { e.TS = time.Time{} }, wantErr: true},
		{name: "internal route", mutate: func(e *Event) { e.Route = RouteInternal }},
		{name: "dropped route", mutate: func(e *Event) { e.Route = RouteDropped }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent(now)
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestStoreNewestFirst(t *testing.T) {
	s := NewStore(time.Minute)
	base := time.Now()
	for i := 0; i < 3; i++ {
		e := validEvent(base.Add(time.Duration(i) * time.Second))
		s.Append(e)
	}

	snap := s.Snapshot(base.Add(3 * time.Second))
	if len(snap) != 3 {
		t.Fatalf("got %d events, want 3", len(snap))
	}
	for i := 1; i < len(snap); i++ {
		if snap[i].TS.After(snap[i-1].TS) {
			t.Fatal("snapshot not sorted newest first")
		}
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	s := NewStore(time.Minute)
	base := time.Now()
	s.Append(validEvent(base.Add(-2 * time.Minute)))
	s.Append(validEvent(base))

	snap := s.Snapshot(base)
	if len(snap) != 1 {
		t.Fatalf("got %d events after expiry, want 1", len(snap))
	}
}

func TestStoreZeroTTLKeepsAll(t *testing.T) {
	s := NewStore(0)
	base := time.Now()
	s.Append(validEvent(base.Add(-time.Hour)))
	s.Append(validEvent(base))

	if got := len(s.Snapshot(base)); got != 2 {
		t.Fatalf("got %d events with ttl=0, want 2", got)
	}
}

func TestStoreSizeBound(t *testing.T) {
	s := NewStore(0)
	s.max = 5
	base := time.Now()
	for i := 0; i < 20; i++ {
		s.Append(validEvent(base.Add(time.Duration(i) * time.Millisecond)))
	}
	if s.Len() != 5 {
		t.Fatalf("store holds %d events, want 5", s.Len())
	}
}

func TestCollectorReceivesReporterEvents(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "e.sock")
	store := NewStore(time.Minute)
	collector := NewCollector(store, socket)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := collector.Start(ctx); err != nil {
		t.Fatalf("collector start: %v", err)
	}

	reporter := NewReporter(socket)
	reporter.Emit(validEvent(time.Now()))
	reporter.Emit(Event{Host: "wezterm", Direction: "sideways", Route: RouteInternal, TS: time.Now()}) // invalid, must be ignored

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() < 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	snap := store.Snapshot(time.Now())
	if len(snap) != 1 {
		t.Fatalf("got %d stored events, want 1", len(snap))
	}
	if snap[0].Route != RouteForwarded {
		t.Errorf("stored route = %q, want %q", snap[0].Route, RouteForwarded)
	}
}

func TestReporterWithoutSocketIsSilent(t *testing.T) {
	reporter := NewReporter(filepath.Join(t.TempDir(), "missing.sock"))
	// Must not panic or block.
	reporter.Emit(validEvent(time.Now()))

	var nilReporter *Reporter
	nilReporter.Emit(validEvent(time.Now()))
}
