// Package config loads and saves the ordertable configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ordertable/internal/orders"
	"ordertable/internal/table"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for the config file.
var DefaultPath = filepath.Join(".ordertable", "config.yaml")

// Config holds all ordertable configuration.
type Config struct {
	// SeedFile is a YAML list of orders; empty uses the built-in seed.
	SeedFile string `yaml:"seed_file"`
	// WatchSeed reloads the store when SeedFile changes on disk.
	WatchSeed bool `yaml:"watch_seed"`
	// Theme is "light" or "dark".
	Theme string `yaml:"theme"`

	Table TableConfig `yaml:"table"`

	// Validation names the edit validator: none, numeric or strict.
	Validation string `yaml:"validation"`

	Logging LoggingConfig `yaml:"logging"`
}

// TableConfig holds the initial view state.
type TableConfig struct {
	PageSize      int    `yaml:"page_size"`
	SortColumn    string `yaml:"sort_column"`
	SortDirection string `yaml:"sort_direction"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme: "light",
		Table: TableConfig{
			PageSize:      table.DefaultPageSize,
			SortColumn:    string(orders.FieldCost),
			SortDirection: "asc",
		},
		Validation: "none",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Dir:    filepath.Join(".ordertable", "logs"),
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("ORDERTABLE_SEED_FILE"); path != "" {
		c.SeedFile = path
	}
	if os.Getenv("ORDERTABLE_DARK_MODE") == "1" {
		c.Theme = "dark"
	}
	if size := os.Getenv("ORDERTABLE_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.Table.PageSize = n
		}
	}
	if level := os.Getenv("ORDERTABLE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
		c.Logging.DebugMode = true
	}
	if mode := os.Getenv("ORDERTABLE_VALIDATION"); mode != "" {
		c.Validation = mode
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark, got %q", c.Theme)
	}
	if !table.ValidPageSize(c.Table.PageSize) {
		return fmt.Errorf("table.page_size must be one of %v, got %d", table.PageSizes, c.Table.PageSize)
	}
	if _, err := c.InitialSort(); err != nil {
		return err
	}
	if _, err := c.Validator(); err != nil {
		return err
	}
	if c.WatchSeed && c.SeedFile == "" {
		return fmt.Errorf("watch_seed requires seed_file")
	}
	return nil
}

// InitialSort returns the configured starting sort.
func (c *Config) InitialSort() (table.SortState, error) {
	f, err := orders.ParseField(c.Table.SortColumn)
	if err != nil {
		return table.SortState{}, fmt.Errorf("table.sort_column: %w", err)
	}
	d, err := table.ParseDirection(c.Table.SortDirection)
	if err != nil {
		return table.SortState{}, fmt.Errorf("table.sort_direction: %w", err)
	}
	return table.SortState{Field: f, Direction: d}, nil
}

// Validator returns the configured edit validator.
func (c *Config) Validator() (table.Validator, error) {
	v, err := table.ValidatorByName(c.Validation)
	if err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return v, nil
}

// IsDark reports whether the dark theme is selected.
func (c *Config) IsDark() bool {
	return c.Theme == "dark"
}
