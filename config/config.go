// Package config loads demo settings from TOML and DROPCHAIN_* env vars
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/dropchain/target"
)

// EnvPrefix is the prefix for env overrides, e.g. DROPCHAIN_LAYOUT_STRATEGY
const EnvPrefix = "DROPCHAIN"

// Config holds demo configuration
type Config struct {
	Layout LayoutConfig
	Audio  AudioConfig
	Log    LogConfig
}

// LayoutConfig holds the initial slot contents and the hit-test strategy
type LayoutConfig struct {
	Slots    [][]string // labels per root slot, head first
	Strategy string     // "center", "area" or "none"
}

// AudioConfig holds cue settings
type AudioConfig struct {
	Enabled bool
}

// LogConfig holds logger settings; logs are written only in debug mode
type LogConfig struct {
	Level string
	File  string
}

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Load reads configuration from path, or DROPCHAIN_CONFIG, or the default search paths
// A missing file in the search paths is not an error; an explicit missing file is
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("layout.slots", [][]string{{"A"}, {"B", "C"}, {}})
	v.SetDefault("layout.strategy", "center")
	v.SetDefault("audio.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join("logs", "dropchain.log"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dropchain"))
		}
		v.SetConfigName("dropchain")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects layouts the coordinator cannot build
func (c Config) Validate() error {
	if len(c.Layout.Slots) == 0 {
		return fmt.Errorf("layout.slots is empty: %w", ErrInvalidConfig)
	}

	seen := make(map[string]int)
	for i, slot := range c.Layout.Slots {
		for _, label := range slot {
			if label == "" {
				return fmt.Errorf("layout.slots[%d] has an empty label: %w", i, ErrInvalidConfig)
			}
			if prev, dup := seen[label]; dup {
				return fmt.Errorf("label %q in slots %d and %d: %w", label, prev, i, ErrInvalidConfig)
			}
			seen[label] = i
		}
	}

	if _, ok := target.DistanceByName(c.Layout.Strategy); !ok {
		return fmt.Errorf("layout.strategy %q: %w", c.Layout.Strategy, ErrInvalidConfig)
	}
	return nil
}
