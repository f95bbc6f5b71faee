package config

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "PROMOTRONIK_"

const maxChips = 12

type Dataset struct {
	Source string `yaml:"source" env:"DATASET"`
	Format string `yaml:"format" env:"FORMAT"`
}

type Chips struct {
	Limit int `yaml:"limit" env:"CHIPS"`
}

// Features switches the optional capabilities on and off.
type Features struct {
	Favorites bool `yaml:"favorites"`
	PriceSort bool `yaml:"price_sort"`
	Chips     bool `yaml:"chips"`
}

type Config struct {
	Title      string   `yaml:"title"`
	Dataset    Dataset  `yaml:"dataset"`
	Chips      Chips    `yaml:"chips"`
	Features   Features `yaml:"features"`
	Locale     string   `yaml:"locale" env:"LOCALE"`
	FaviconURL string   `yaml:"favicon_url"`
	CTALabel   string   `yaml:"cta_label"`
	StatePath  string   `yaml:"state_path,omitempty" env:"STATE_PATH"`

	path string
}

// ChipLimit returns the number of host chips, defaulting to 6.
func (c *Config) ChipLimit() int {
	if c.Chips.Limit <= 0 {
		return 6
	}
	return c.Chips.Limit
}

// DatasetFormat returns the snapshot format, defaulting to json.
func (c *Config) DatasetFormat() string {
	if c.Dataset.Format == "" {
		return "json"
	}
	return strings.ToLower(c.Dataset.Format)
}

// BaseDir is the directory relative dataset paths are resolved against.
func (c *Config) BaseDir() string {
	if c.path == "" {
		return "."
	}
	return filepath.Dir(c.path)
}

// Path is the file the config was read from, or would be written to.
func (c *Config) Path() string { return c.path }

// ResolvedStatePath returns the state database location.
func (c *Config) ResolvedStatePath() string {
	if c.StatePath != "" {
		return c.StatePath
	}
	return StatePath()
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "promotronik", "config.yaml")
}

func StatePath() string {
	return filepath.Join(xdg.StateHome, "promotronik", "state.db")
}

func DebugLogPath() string {
	return filepath.Join(xdg.StateHome, "promotronik", "debug.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file at path (or the default location) on top of the
// embedded defaults, then applies environment overrides. A missing file is
// created from the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Non-fatal: the embedded defaults are enough to run.
		_ = writeDefaults(path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	src := strings.TrimSpace(cfg.Dataset.Source)
	if src == "" {
		return fmt.Errorf("%w: dataset.source is required", ErrInvalid)
	}
	if strings.Contains(src, "://") {
		u, err := url.Parse(src)
		if err != nil {
			return fmt.Errorf("%w: dataset.source: %v", ErrInvalid, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%w: dataset.source scheme must be http or https, got %q", ErrInvalid, u.Scheme)
		}
	}

	switch cfg.DatasetFormat() {
	case "json", "feed":
	default:
		return fmt.Errorf("%w: unknown dataset.format %q (valid: json, feed)", ErrInvalid, cfg.Dataset.Format)
	}

	if cfg.Chips.Limit < 0 || cfg.Chips.Limit > maxChips {
		return fmt.Errorf("%w: chips.limit must be between 0 and %d, got %d", ErrInvalid, maxChips, cfg.Chips.Limit)
	}
	return nil
}
