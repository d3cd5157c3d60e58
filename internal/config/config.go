package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config holds all configuration options for the task tracker service
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Mode            string        `mapstructure:"mode"` // debug or release
	TemplateGlob    string        `mapstructure:"template_glob"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir      string `mapstructure:"dir"`
	Filename string `mapstructure:"filename"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Dir        string `mapstructure:"dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Console    bool   `mapstructure:"console"`
}

// Default returns a configuration populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			TemplateGlob:    "web/templates/*.html",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Dir:      ".",
			Filename: "todolist.db",
		},
		Logging: LoggingConfig{
			Dir:        "logs",
			MaxSizeMB:  100,
			MaxBackups: 30,
			MaxAgeDays: 90,
			Console:    true,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Validate checks the configuration for obviously broken values
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr must not be empty")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("server mode must be debug or release, got %q", c.Server.Mode)
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}
