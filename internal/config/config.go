// Package config loads tracknav's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "tracknav"

// Defaults applied to unset values.
const (
	DefaultPollInterval    = 100 * time.Millisecond
	DefaultTrackLength     = 3 * time.Minute
	DefaultLogLevel        = "info"
	defaultCatalogFileName = "catalog.db"
	defaultLogFileName     = "tracknav.log"
	defaultConfigFileName  = "config.toml"
	localConfigPath        = defaultConfigFileName
)

type Config struct {
	// Credentials handed to the session once at startup.
	Session SessionConfig `koanf:"session"`

	Library LibraryConfig `koanf:"library"`
	Player  PlayerConfig  `koanf:"player"`
	UI      UIConfig      `koanf:"ui"`
	Log     LogConfig     `koanf:"log"`
}

// SessionConfig holds the session credentials.
type SessionConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// LibraryConfig locates the catalog and the directories imported into it.
type LibraryConfig struct {
	Catalog string   `koanf:"catalog"` // SQLite file, default under the XDG data dir
	Sources []string `koanf:"sources"` // directories scanned by "tracknav import"
}

// PlayerConfig tunes the simulated player.
type PlayerConfig struct {
	DefaultTrackLength time.Duration `koanf:"default_track_length"` // for tracks of unknown duration
}

// UIConfig tunes the interaction loop.
type UIConfig struct {
	PollInterval time.Duration `koanf:"poll_interval"` // keyboard wait per loop iteration
}

// LogConfig configures the log file.
type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"` // debug, info, warn or error
}

// Load reads the configuration. An explicit path must exist and is the only
// file read. Otherwise the user config file and ./config.toml are read in
// that order, later files overriding earlier ones, and missing files are
// skipped.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	} else {
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", p, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnsureUserConfigDir creates the user configuration directory and returns
// the path of the config file inside it.
func EnsureUserConfigDir() (string, error) {
	return xdg.ConfigFile(filepath.Join(appName, defaultConfigFileName))
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tracknav/config.toml
		filepath.Join(xdg.ConfigHome, appName, defaultConfigFileName),
		// 2. ./config.toml (pwd, highest priority)
		localConfigPath,
	}
}

func (c *Config) withDefaults() {
	if c.Library.Catalog == "" {
		c.Library.Catalog = filepath.Join(xdg.DataHome, appName, defaultCatalogFileName)
	}
	c.Library.Catalog = expandPath(c.Library.Catalog)
	for i, src := range c.Library.Sources {
		c.Library.Sources[i] = expandPath(src)
	}

	if c.Player.DefaultTrackLength == 0 {
		c.Player.DefaultTrackLength = DefaultTrackLength
	}
	if c.UI.PollInterval == 0 {
		c.UI.PollInterval = DefaultPollInterval
	}

	if c.Log.File == "" {
		c.Log.File = filepath.Join(xdg.StateHome, appName, defaultLogFileName)
	}
	c.Log.File = expandPath(c.Log.File)
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// Validate reports values that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Player.DefaultTrackLength < 0 {
		errs = append(errs, errors.New("player.default_track_length must be positive"))
	}
	if c.UI.PollInterval < 0 {
		errs = append(errs, errors.New("ui.poll_interval must be positive"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	return errors.Join(errs...)
}

// HasCredentials returns true if a session username is configured.
func (c *Config) HasCredentials() bool {
	return c.Session.Username != ""
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
