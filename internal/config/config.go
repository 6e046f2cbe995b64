// Package config loads panehop configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the cmd package)
//  2. Environment variables (PANEHOP_*)
//  3. Config file
//  4. Built-in defaults
//
// Config file search order:
//  1. .panehop.yaml in current directory
//  2. ~/.config/panehop/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CommandHost configures the generic command-driven host: a focus-query
// command plus one move command per direction, each as an argv list.
type CommandHost struct {
	Name       string              `yaml:"name"`
	FocusQuery []string            `yaml:"focus_query"`
	Move       map[string][]string `yaml:"move"`
}

// Configured reports whether the user defined a command host at all.
func (c CommandHost) Configured() bool {
	return len(c.FocusQuery) > 0 || len(c.Move) > 0
}

// Config holds all panehop configuration.
type Config struct {
	// Backend selection ("" means auto-detect)
	Host string `yaml:"host"`
	Mux  string `yaml:"mux"`

	// Router settings
	ForwardTimeout string `yaml:"forward_timeout"` // Go duration string, e.g. "200ms"
	Verbose        bool   `yaml:"verbose"`

	// Command host (used when host is "command")
	CommandHost CommandHost `yaml:"command_host"`

	// Watch TUI
	Theme       string `yaml:"theme"`
	EventSocket string `yaml:"event_socket"`
	EventTTL    string `yaml:"event_ttl"` // Go duration string, "0" keeps events forever
	Refresh     string `yaml:"refresh"`   // Go duration string, e.g. "1s"

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs

	// Parsed durations (not from YAML, set after loading)
	ForwardTimeoutDuration time.Duration `yaml:"-"`
	EventTTLDuration       time.Duration `yaml:"-"`
	RefreshDuration        time.Duration `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		ForwardTimeout: "200ms",
		Theme:          "dark",
		EventTTL:       "5m",
		Refresh:        "1s",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	// Try to load config file
	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	// Environment variables override everything
	mergeEnv(cfg)

	// Parse durations
	var err error
	cfg.ForwardTimeoutDuration, err = parseDurationOrDisable(cfg.ForwardTimeout, 200*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("invalid forward timeout %q: %w", cfg.ForwardTimeout, err)
	}
	cfg.EventTTLDuration, err = parseDurationOrDisable(cfg.EventTTL, 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid event TTL %q: %w", cfg.EventTTL, err)
	}
	cfg.RefreshDuration, err = parseDurationOrDisable(cfg.Refresh, time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh interval %q: %w", cfg.Refresh, err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	// 1. Current directory
	if data, err := os.ReadFile(".panehop.yaml"); err == nil {
		return ".panehop.yaml", data, nil
	}

	// 2. XDG config dir / ~/.config
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "panehop", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Host != "" {
		cfg.Host = file.Host
	}
	if file.Mux != "" {
		cfg.Mux = file.Mux
	}
	if file.ForwardTimeout != "" {
		cfg.ForwardTimeout = file.ForwardTimeout
	}
	if file.Verbose {
		cfg.Verbose = file.Verbose
	}
	if file.CommandHost.Configured() {
		cfg.CommandHost = file.CommandHost
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.EventSocket != "" {
		cfg.EventSocket = file.EventSocket
	}
	if file.EventTTL != "" {
		cfg.EventTTL = file.EventTTL
	}
	if file.Refresh != "" {
		cfg.Refresh = file.Refresh
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("PANEHOP_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PANEHOP_MUX"); v != "" {
		cfg.Mux = v
	}
	if v := os.Getenv("PANEHOP_FORWARD_TIMEOUT"); v != "" {
		cfg.ForwardTimeout = v
	}
	if v := os.Getenv("PANEHOP_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("PANEHOP_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("PANEHOP_EVENT_SOCKET"); v != "" {
		cfg.EventSocket = v
	}
	if v := os.Getenv("PANEHOP_EVENT_TTL"); v != "" {
		cfg.EventTTL = v
	}
	if v := os.Getenv("PANEHOP_REFRESH"); v != "" {
		cfg.Refresh = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}

// parseDurationOrDisable parses a duration string. Empty uses the default;
// "0" disables (returns 0).
func parseDurationOrDisable(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	if s == "0" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
