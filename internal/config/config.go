// Package config provides configuration management for the exporter.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingDatabaseName = errors.New("database.name is required")
	ErrMissingDatabaseHost = errors.New("database.host is required")
	ErrMissingDatabaseUser = errors.New("database.user is required")
	ErrMissingPostsDir     = errors.New("output.posts_dir is required")
	ErrMissingPagesDir     = errors.New("output.pages_dir is required")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete exporter configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Output   OutputConfig   `yaml:"output"`
	Fixups   FixupsConfig   `yaml:"fixups"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig holds the source database connection settings.
type DatabaseConfig struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// OutputConfig defines where exported files are written.
type OutputConfig struct {
	PostsDir string `yaml:"posts_dir"`
	PagesDir string `yaml:"pages_dir"`
}

// FixupsConfig toggles the optional content fixups applied to exported
// bodies. Newline normalization is always on and not configurable.
type FixupsConfig struct {
	ConvertShortcodes bool `yaml:"convert_shortcodes"`
	FormatTables      bool `yaml:"format_tables"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// New builds a configuration from the positional command-line arguments,
// with default fixups and log level.
func New(db, host, user, password, postsDir, pagesDir string) *Config {
	return &Config{
		Database: DatabaseConfig{
			Name:     db,
			Host:     host,
			User:     user,
			Password: password,
		},
		Output: OutputConfig{
			PostsDir: postsDir,
			PagesDir: pagesDir,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return ErrMissingDatabaseName
	}

	if c.Database.Host == "" {
		return ErrMissingDatabaseHost
	}

	if c.Database.User == "" {
		return ErrMissingDatabaseUser
	}

	if c.Output.PostsDir == "" {
		return ErrMissingPostsDir
	}

	if c.Output.PagesDir == "" {
		return ErrMissingPagesDir
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// DSN builds the MySQL connection string for database/sql. The host may
// include a port; the driver defaults to 3306 otherwise.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Name,
	)
}

// String returns a string representation of the config without the password.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{DB: %s@%s/%s, Posts: %s, Pages: %s}",
		c.Database.User,
		c.Database.Host,
		c.Database.Name,
		c.Output.PostsDir,
		c.Output.PagesDir,
	)
}
