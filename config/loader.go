package config

// Viper configuration loader: reads config.yaml from the project and user config dirs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const defaultStoreFile = "tasks.json"

// Config holds all application configuration loaded from config.yaml
type Config struct {
	Logging struct {
		Level  string `mapstructure:"level" yaml:"level"`   // "debug", "info", "warn", "error"
		Format string `mapstructure:"format" yaml:"format"` // "text" or "pretty"
	} `mapstructure:"logging" yaml:"logging"`

	Store struct {
		File        string `mapstructure:"file" yaml:"file"` // .json, .yaml or .yml
		SchemaCheck bool   `mapstructure:"schemaCheck" yaml:"schemaCheck"`
	} `mapstructure:"store" yaml:"store"`

	Display struct {
		Style      string `mapstructure:"style" yaml:"style"` // glamour style: "auto", "dark", "light", "notty", "ascii"
		DateFormat string `mapstructure:"dateFormat" yaml:"dateFormat"`
		WordWrap   int    `mapstructure:"wordWrap" yaml:"wordWrap"`
	} `mapstructure:"display" yaml:"display"`
}

var appConfig *Config

// ErrConfigExists is returned by WriteConfigFile when the target exists and overwrite is off.
var ErrConfigExists = errors.New("config file already exists")

// flag name -> config key
var flagBindings = map[string]string{
	"log-level": "logging.level",
	"file":      "store.file",
	"style":     "display.style",
}

// LoadConfig loads configuration from config.yaml
// Priority order (first found wins): project config → user config → current directory
// Flags in flagSet that are listed in flagBindings override file and environment values.
func LoadConfig(flagSet *pflag.FlagSet) (*Config, error) {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	projectConfigDir := filepath.Dir(GetProjectConfigFile())
	viper.AddConfigPath(projectConfigDir)
	viper.AddConfigPath(GetConfigDir())
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("no config.yaml found, using defaults")
		} else {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	} else {
		slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
	}

	// Allow environment variables to override config file
	viper.SetEnvPrefix("TODO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := bindFlags(flagSet); err != nil {
		slog.Warn("failed to bind command line flags", "error", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("failed to unmarshal config", "error", err)
		return nil, err
	}

	appConfig = cfg
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("logging.level", "error")
	viper.SetDefault("logging.format", "text")

	viper.SetDefault("store.file", defaultStoreFile)
	viper.SetDefault("store.schemaCheck", true)

	viper.SetDefault("display.style", "auto")
	viper.SetDefault("display.dateFormat", "2006-01-02 15:04")
	viper.SetDefault("display.wordWrap", 100)
}

// bindFlags binds supported command line flags to viper so they can override config values.
func bindFlags(flagSet *pflag.FlagSet) error {
	if flagSet == nil {
		return nil
	}
	for name, key := range flagBindings {
		flag := flagSet.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// GetConfig returns the loaded configuration, loading defaults on first use
func GetConfig() *Config {
	if appConfig == nil {
		cfg, err := LoadConfig(nil)
		if err != nil {
			slog.Warn("failed to load config, using defaults", "error", err)
			setDefaults()
			cfg = &Config{}
			_ = viper.Unmarshal(cfg)
		}
		appConfig = cfg
	}
	return appConfig
}

// GetDateFormat returns the layout used to print dates
func GetDateFormat() string {
	layout := viper.GetString("display.dateFormat")
	if layout == "" {
		return "2006-01-02 15:04"
	}
	return layout
}

// GetStyle returns the glamour style name for rendering results
func GetStyle() string {
	style := viper.GetString("display.style")
	if style == "" {
		return "auto"
	}
	return style
}

// GetWordWrap returns the render width, never below 20
func GetWordWrap() int {
	width := viper.GetInt("display.wordWrap")
	if width < 20 {
		return 100
	}
	return width
}

// DefaultConfig returns the configuration used when no config.yaml exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "text"
	cfg.Store.File = defaultStoreFile
	cfg.Store.SchemaCheck = true
	cfg.Display.Style = "auto"
	cfg.Display.DateFormat = "2006-01-02 15:04"
	cfg.Display.WordWrap = 100
	return cfg
}

// WriteConfigFile writes cfg as YAML to path, creating parent directories.
// An existing file is left untouched unless overwrite is set.
func WriteConfigFile(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	//nolint:gosec // G301: 0755 is appropriate for config directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	//nolint:gosec // G306: 0644 is appropriate for config file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
