package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides (PORTFOLIO_PORT -> port).
const EnvPrefix = "PORTFOLIO_"

// Config is the portfolio server configuration, corresponding to portfolio.yml.
type Config struct {
	Port                int           `yaml:"port" koanf:"port"`
	Mode                string        `yaml:"mode" koanf:"mode"`
	DatabasePath        string        `yaml:"database_path" koanf:"database_path"`
	StaticDir           string        `yaml:"static_dir" koanf:"static_dir"`
	ContactAddress      string        `yaml:"contact_address" koanf:"contact_address"`
	SceneURL            string        `yaml:"scene_url" koanf:"scene_url"`
	PreferenceRetention time.Duration `yaml:"preference_retention" koanf:"preference_retention"`
	CookieSecure        bool          `yaml:"cookie_secure" koanf:"cookie_secure"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Port:                8080,
		Mode:                "debug",
		DatabasePath:        "data/portfolio.db",
		StaticDir:           "static",
		ContactAddress:      "demo@example.com",
		SceneURL:            "https://prod.spline.design/4cHQr84zOGAHOehh/scene.splinecode",
		PreferenceRetention: 365 * 24 * time.Hour,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*). A plain PORT variable is
// honoured when PORTFOLIO_PORT is not set.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && os.Getenv(EnvPrefix+"PORT") == "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	return cfg, nil
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

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.ContactAddress == "" {
		return fmt.Errorf("contact_address is required")
	}
	if err := validateAddress(c.ContactAddress); err != nil {
		return fmt.Errorf("invalid contact_address %q: %w", c.ContactAddress, err)
	}
	if c.PreferenceRetention < 0 {
		return fmt.Errorf("preference_retention must be non-negative")
	}
	return nil
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
