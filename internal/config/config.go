package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds file logging settings. The TUI owns stdout, so logs go to
// a file.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds the chrome defaults handed to the navigation shell.
type UIConfig struct {
	HeaderShown      bool   `mapstructure:"header_shown"`
	Background       string `mapstructure:"background"`
	HeaderBackground string `mapstructure:"header_background"`
	HeaderTint       string `mapstructure:"header_tint"`
	LocationName     string `mapstructure:"location_name"`
}

// Load reads configuration from file and env. Env var overrides use prefix GATEHOUSE_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "gatehouse")

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir, "gatehouse.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "gatehouse.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.header_shown", true)
	v.SetDefault("ui.background", "#0f0f23")
	v.SetDefault("ui.header_background", "#151530")
	v.SetDefault("ui.header_tint", "#e0e0ff")
	v.SetDefault("ui.location_name", "Front Desk")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GATEHOUSE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gatehouse"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GATEHOUSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
