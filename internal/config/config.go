package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvInflationRate  = "NESTEGG_INFLATION_RATE"
	EnvInvestmentRate = "NESTEGG_INVESTMENT_RATE"
	EnvCurrency       = "NESTEGG_CURRENCY"
	EnvExportPath     = "NESTEGG_EXPORT_PATH"
)

// Config holds all nestegg configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Planner    PlannerConfig    `toml:"planner"`
	Export     ExportConfig     `toml:"export"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// DefaultsConfig holds the rates used when the user does not supply them.
type DefaultsConfig struct {
	InflationRate  float64 `toml:"inflation_rate"`
	InvestmentRate float64 `toml:"investment_rate"`
	Currency       string  `toml:"currency"`
}

// PlannerConfig holds solver settings.
type PlannerConfig struct {
	Tolerance float64 `toml:"tolerance"`
}

// ExportConfig holds the default export destination.
type ExportConfig struct {
	Path string `toml:"path"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			InflationRate:  0.03,
			InvestmentRate: 0.05,
			Currency:       "USD",
		},
		Planner: PlannerConfig{
			Tolerance: 0.01,
		},
		Export: ExportConfig{
			Path: "retirement_schedule.csv",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nestegg")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nestegg")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top of the file.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads the config file without environment overrides.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvInflationRate); v != "" {
		r, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvInflationRate, err)
		}
		cfg.Defaults.InflationRate = r
	}
	if v := os.Getenv(EnvInvestmentRate); v != "" {
		r, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvInvestmentRate, err)
		}
		cfg.Defaults.InvestmentRate = r
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Defaults.Currency = strings.ToUpper(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvExportPath); v != "" {
		cfg.Export.Path = v
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
