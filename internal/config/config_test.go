package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks all env vars Load consults so host env cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PANEHOP_HOST", "PANEHOP_MUX", "PANEHOP_FORWARD_TIMEOUT",
		"PANEHOP_VERBOSE", "PANEHOP_THEME", "PANEHOP_EVENT_SOCKET",
		"PANEHOP_EVENT_TTL", "PANEHOP_REFRESH",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_HEADERS",
	} {
		t.Setenv(key, "")
	}
}

// chtemp switches to an empty temp dir (and a temp HOME) so no real config
// file is picked up.
func chtemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", filepath.Join(dir, "home"))
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.ForwardTimeout != "200ms" {
		t.Errorf("ForwardTimeout: got %q, want %q", cfg.ForwardTimeout, "200ms")
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, "dark")
	}
	if cfg.EventTTL != "5m" {
		t.Errorf("EventTTL: got %q, want %q", cfg.EventTTL, "5m")
	}
	if cfg.Refresh != "1s" {
		t.Errorf("Refresh: got %q, want %q", cfg.Refresh, "1s")
	}
}

func TestLoadDefaultsWithoutFileOrEnv(t *testing.T) {
	clearEnv(t)
	chtemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("ConfigFile: got %q, want empty", cfg.ConfigFile)
	}
	if cfg.ForwardTimeoutDuration != 200*time.Millisecond {
		t.Errorf("ForwardTimeoutDuration: got %v", cfg.ForwardTimeoutDuration)
	}
	if cfg.EventTTLDuration != 5*time.Minute {
		t.Errorf("EventTTLDuration: got %v", cfg.EventTTLDuration)
	}
}

func TestLoadReadsFile(t *testing.T) {
	clearEnv(t)
	chtemp(t)

	yaml := `
host: kitty
mux: tmux
forward_timeout: 150ms
verbose: true
theme: light
command_host:
  name: myterm
  focus_query: [myterm, focused]
  move:
    left: [myterm, focus, left]
    right: [myterm, focus, right]
    up: [myterm, focus, up]
    down: [myterm, focus, down]
`
	if err := os.WriteFile(".panehop.yaml", []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigFile != ".panehop.yaml" {
		t.Errorf("ConfigFile: got %q", cfg.ConfigFile)
	}
	if cfg.Host != "kitty" || cfg.Mux != "tmux" {
		t.Errorf("backends: got host=%q mux=%q", cfg.Host, cfg.Mux)
	}
	if cfg.ForwardTimeoutDuration != 150*time.Millisecond {
		t.Errorf("ForwardTimeoutDuration: got %v", cfg.ForwardTimeoutDuration)
	}
	if !cfg.Verbose {
		t.Error("Verbose: got false")
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme: got %q", cfg.Theme)
	}
	if !cfg.CommandHost.Configured() {
		t.Fatal("CommandHost not loaded")
	}
	if got := cfg.CommandHost.Move["left"]; len(got) != 3 || got[2] != "left" {
		t.Errorf("CommandHost.Move[left]: got %v", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	chtemp(t)

	if err := os.WriteFile(".panehop.yaml", []byte("host: kitty\ntheme: light\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PANEHOP_HOST", "wezterm")
	t.Setenv("PANEHOP_VERBOSE", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "wezterm" {
		t.Errorf("Host: got %q, want env override wezterm", cfg.Host)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme: got %q, want file value light", cfg.Theme)
	}
	if !cfg.Verbose {
		t.Error("Verbose env override not applied")
	}
}

func TestLoadHomeConfigFallback(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	home := filepath.Join(dir, "home")
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".config", "panehop")
	if err := os.MkdirAll(path, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(path, "config.yaml"), []byte("mux: zellij\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mux != "zellij" {
		t.Errorf("Mux: got %q, want zellij", cfg.Mux)
	}
}

func TestInvalidDurationRejected(t *testing.T) {
	clearEnv(t)
	chtemp(t)
	t.Setenv("PANEHOP_FORWARD_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestZeroDisablesDurations(t *testing.T) {
	clearEnv(t)
	chtemp(t)
	t.Setenv("PANEHOP_EVENT_TTL", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EventTTLDuration != 0 {
		t.Errorf("EventTTLDuration: got %v, want 0", cfg.EventTTLDuration)
	}
}
