// Package config loads the game's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable overriding the config file path.
const EnvPath = "IDLERPG_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "config/idlerpg.yaml"

// Save drivers.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Game holds all configuration for the idle game host.
type Game struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Loop timing
	TickInterval     time.Duration `yaml:"tick_interval"`     // combat tick (default: 100ms)
	AutosaveInterval time.Duration `yaml:"autosave_interval"` // periodic snapshot (default: 30s)
	StatusInterval   time.Duration `yaml:"status_interval"`   // status log line (default: 10s)
	AutoStart        bool          `yaml:"auto_start"`

	// Gameplay
	StartingZone      int    `yaml:"starting_zone"`
	Seed              uint64 `yaml:"seed"` // 0 = random
	InventoryCapacity int    `yaml:"inventory_capacity"`

	Save     SaveConfig     `yaml:"save"`
	Database DatabaseConfig `yaml:"database"`
}

// SaveConfig selects where snapshots are persisted.
type SaveConfig struct {
	Driver string `yaml:"driver"` // file | postgres
	Slot   string `yaml:"slot"`
	Dir    string `yaml:"dir"` // file driver only
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultGame returns Game config with sensible defaults.
func DefaultGame() Game {
	return Game{
		LogLevel:          "info",
		TickInterval:      100 * time.Millisecond,
		AutosaveInterval:  30 * time.Second,
		StatusInterval:    10 * time.Second,
		AutoStart:         true,
		StartingZone:      1,
		InventoryCapacity: 100,
		Save: SaveConfig{
			Driver: DriverFile,
			Slot:   "main",
			Dir:    "saves",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "idlerpg",
			Password: "idlerpg",
			DBName:   "idlerpg",
			SSLMode:  "disable",
		},
	}
}

// Validate rejects values the host cannot run with.
func (g Game) Validate() error {
	var errs []error
	if g.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", g.TickInterval))
	}
	if g.AutosaveInterval <= 0 {
		errs = append(errs, fmt.Errorf("autosave_interval must be positive, got %s", g.AutosaveInterval))
	}
	if g.StatusInterval <= 0 {
		errs = append(errs, fmt.Errorf("status_interval must be positive, got %s", g.StatusInterval))
	}
	if g.StartingZone < 1 {
		errs = append(errs, fmt.Errorf("starting_zone must be >= 1, got %d", g.StartingZone))
	}
	if g.InventoryCapacity < 1 {
		errs = append(errs, fmt.Errorf("inventory_capacity must be >= 1, got %d", g.InventoryCapacity))
	}
	if g.Save.Slot == "" {
		errs = append(errs, errors.New("save.slot is empty"))
	}
	switch g.Save.Driver {
	case DriverFile, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown save.driver %q", g.Save.Driver))
	}
	return errors.Join(errs...)
}

// PathFromEnv returns the config path from EnvPath, or DefaultPath.
func PathFromEnv() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// LoadGame loads game config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGame(path string) (Game, error) {
	cfg := DefaultGame()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
