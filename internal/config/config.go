package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const dateLayout = "2006-01-02"

type Config struct {
	Seed      int64    `json:"seed" mapstructure:"seed"`
	Horizon   Horizon  `json:"horizon" mapstructure:"horizon"`
	Counts    Counts   `json:"counts" mapstructure:"counts"`
	OutputDir string   `json:"output_dir" mapstructure:"output_dir"`
	Database  Database `json:"database" mapstructure:"database"`
	KPI       KPI      `json:"kpi" mapstructure:"kpi"`
}

type Horizon struct {
	Start string `json:"start" mapstructure:"start"`
	End   string `json:"end" mapstructure:"end"`
}

type Counts struct {
	Operators int `json:"operators" mapstructure:"operators"`
	Reps      int `json:"reps" mapstructure:"reps"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	Path     string `json:"path" mapstructure:"path"`
}

type KPI struct {
	OutputDir string `json:"output_dir" mapstructure:"output_dir"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.Horizon.Start == "" {
		cfg.Horizon.Start = "2015-01-01"
	}
	if cfg.Horizon.End == "" {
		cfg.Horizon.End = "2025-12-31"
	}
	if cfg.Counts.Operators == 0 {
		cfg.Counts.Operators = 5000
	}
	if cfg.Counts.Reps == 0 {
		cfg.Counts.Reps = 60
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join("data", "raw")
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "sqlite"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join("data", "database", "foodline.db")
	}
	if cfg.KPI.OutputDir == "" {
		cfg.KPI.OutputDir = filepath.Join("dashboards", "data")
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	start, err := c.HorizonStart()
	if err != nil {
		return err
	}
	end, err := c.HorizonEnd()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("invalid horizon: end %s before start %s", c.Horizon.End, c.Horizon.Start)
	}

	if c.Counts.Operators < 1 {
		return fmt.Errorf("counts.operators must be positive")
	}
	if c.Counts.Reps < 1 {
		return fmt.Errorf("counts.reps must be positive")
	}

	return nil
}

func (c *Config) HorizonStart() (time.Time, error) {
	t, err := time.Parse(dateLayout, c.Horizon.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid horizon start %q: %w", c.Horizon.Start, err)
	}
	return t.UTC(), nil
}

func (c *Config) HorizonEnd() (time.Time, error) {
	t, err := time.Parse(dateLayout, c.Horizon.End)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid horizon end %q: %w", c.Horizon.End, err)
	}
	return t.UTC(), nil
}

// ShipmentsDir is where year-partitioned shipment files land.
func (c *Config) ShipmentsDir() string {
	return filepath.Join(c.OutputDir, "distributor_shipments")
}

// CRMDir is where account/opportunity/activity exports land.
func (c *Config) CRMDir() string {
	return filepath.Join(c.OutputDir, "crm_exports")
}

// GetDatabaseURL resolves the analytics store DSN. SQLite falls back to the
// configured file path when the env variable is unset.
func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL != "" {
		return dbURL, nil
	}
	if c.Database.Provider == "sqlite" || c.Database.Provider == "sqlite3" {
		return c.Database.Path, nil
	}
	return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.OutputDir,
		c.ShipmentsDir(),
		c.CRMDir(),
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
