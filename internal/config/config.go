package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "DECKSHELF_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DECKSHELF_*). A double underscore in a
// variable name separates nested keys: DECKSHELF_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps an environment variable name onto a koanf key path.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validThemeStores = map[ThemeStoreType]bool{
	ThemeStoreCookie: true,
	ThemeStoreSQLite: true,
}

var validLogFormats = map[LogFormat]bool{
	LogFormatConsole: true,
	LogFormatJSON:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Content.Source) == "" {
		return fmt.Errorf("content.source is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 0 and 65535", c.Server.Port)
	}

	if !validThemeStores[c.Theme.Store] {
		return fmt.Errorf("invalid theme.store %q: must be one of cookie, sqlite", c.Theme.Store)
	}
	if c.Theme.Store == ThemeStoreSQLite && c.DataDir == "" {
		return fmt.Errorf("data_dir is required when theme.store is sqlite")
	}

	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be one of console, json", c.Log.Format)
	}
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
		}
	}

	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
