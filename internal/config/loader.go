package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load builds the configuration using the cascading strategy:
// defaults, then an optional config file in path, then TODO_* environment
// variables. Command line flags are applied by the caller on top.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.template_glob", "web/templates/*.html")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.dir", ".")
	v.SetDefault("database.filename", "todolist.db")
	v.SetDefault("logging.dir", "logs")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 30)
	v.SetDefault("logging.max_age_days", 90)
	v.SetDefault("logging.console", true)

	v.AddConfigPath(path)
	v.SetConfigName("todo-tracker")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; only environment and defaults apply
		// when it is absent.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
