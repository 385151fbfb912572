package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultRun     string `koanf:"default_run"`     // run directory opened on start; empty means cwd
	MetricsFile    string `koanf:"metrics_file"`    // metrics stream filename inside the run dir
	CheckpointGlob string `koanf:"checkpoint_glob"` // pattern for checkpoint files
	RefreshFPS     int    `koanf:"refresh_fps"`     // UI frame rate (1-120, default: 30)
	Icons          string `koanf:"icons"`           // "nerd", "unicode", or "none"

	// Fault overlay settings
	Faults FaultsConfig `koanf:"faults"`

	// Desktop notification settings
	Notifications NotificationsConfig `koanf:"notifications"`
}

// FaultsConfig holds fault overlay configuration.
type FaultsConfig struct {
	MaxToasts            int     `koanf:"max_toasts"`             // toast queue bound (default: 5)
	ToastLifetimeSeconds float64 `koanf:"toast_lifetime_seconds"` // seconds a toast stays up (default: 4.0)
	PositionCorner       string  `koanf:"position_corner"`        // "top-right", "top-left", "bottom-right", "bottom-left"
	Enabled              *bool   `koanf:"enabled"`                // overlay on/off (default: true)
	PanicOnCritical      bool    `koanf:"panic_on_critical"`      // re-raise critical panics (default: false)
}

// NotificationsConfig holds desktop notification configuration.
type NotificationsConfig struct {
	Enabled   *bool `koanf:"enabled"`    // notify on critical faults (default: true)
	TimeoutMS int   `koanf:"timeout_ms"` // notification timeout (default: 5000)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Later files override earlier ones.
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DefaultRun: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in default_run
	if cfg.DefaultRun != "" {
		cfg.DefaultRun = expandPath(cfg.DefaultRun)
	}

	if cfg.MetricsFile == "" {
		cfg.MetricsFile = "metrics.jsonl"
	}
	if cfg.CheckpointGlob == "" {
		cfg.CheckpointGlob = "*.ply"
	}
	if cfg.RefreshFPS < 1 || cfg.RefreshFPS > 120 {
		cfg.RefreshFPS = 30
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// The user config first, then the working directory so a per-run
	// config.toml next to the training output wins.
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lumen", "config.toml"))
	}
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetFaults returns the fault overlay configuration with defaults applied.
func (c *Config) GetFaults() FaultsConfig {
	cfg := c.Faults

	if cfg.MaxToasts <= 0 {
		cfg.MaxToasts = 5
	}
	if cfg.ToastLifetimeSeconds <= 0 {
		cfg.ToastLifetimeSeconds = 4.0
	}
	if cfg.PositionCorner == "" {
		cfg.PositionCorner = "top-right"
	}

	return cfg
}

// FaultsEnabled returns whether the fault overlay is on (default: true).
func (c *Config) FaultsEnabled() bool {
	return c.Faults.Enabled == nil || *c.Faults.Enabled
}

// GetNotifications returns notification configuration with defaults applied.
func (c *Config) GetNotifications() NotificationsConfig {
	cfg := c.Notifications

	if cfg.TimeoutMS <= 0 {
		cfg.TimeoutMS = 5000
	}

	return cfg
}

// NotificationsEnabled returns whether desktop notifications are on (default: true).
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}
