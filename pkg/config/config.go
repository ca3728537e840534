package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Grouping GroupingConfig `mapstructure:"grouping"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Preview  PreviewConfig  `mapstructure:"preview"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

// GroupingConfig drives how consecutive messages are grouped into runs
type GroupingConfig struct {
	MaxInterval        time.Duration `mapstructure:"-"`
	MaxIntervalStr     string        `mapstructure:"max_interval"`
	SupportedReactions []string      `mapstructure:"supported_reactions"`
	JumbomojiLimit     int           `mapstructure:"jumbomoji_limit"`
}

// LayoutConfig holds the list layout engine geometry
type LayoutConfig struct {
	EstimatedItemHeight float64 `mapstructure:"estimated_item_height"`
	Spacing             float64 `mapstructure:"spacing"`
}

// PreviewConfig holds terminal preview settings
type PreviewConfig struct {
	Width               int     `mapstructure:"width"`
	Height              int     `mapstructure:"height"`
	EstimatedItemHeight float64 `mapstructure:"estimated_item_height"`
	Spacing             float64 `mapstructure:"spacing"`
	TemplateCacheSize   int     `mapstructure:"template_cache_size"`
}

var cfg *Config

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}

// IsLoaded reports whether Load has completed successfully
func IsLoaded() bool {
	return cfg != nil
}

// Load loads configuration from file and environment
func Load(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		paths, err := SearchPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		for _, p := range paths {
			viper.AddConfigPath(p)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(SettingsName)
	}

	viper.AutomaticEnv()
	bindEnvironmentVariables()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := processDurations(loaded); err != nil {
		return nil, fmt.Errorf("failed to process durations: %w", err)
	}

	cfg = loaded
	return cfg, nil
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("logging.log_file", "./.chatlist/system.log")
	viper.SetDefault("logging.preserve", false)
	viper.SetDefault("logging.level", "info")

	viper.SetDefault("grouping.max_interval", "60s")
	viper.SetDefault("grouping.supported_reactions", []string{"like", "love", "haha", "wow", "sad"})
	viper.SetDefault("grouping.jumbomoji_limit", 3)

	viper.SetDefault("layout.estimated_item_height", 200)
	viper.SetDefault("layout.spacing", 2)

	viper.SetDefault("preview.width", 80)
	viper.SetDefault("preview.height", 24)
	viper.SetDefault("preview.estimated_item_height", 4)
	viper.SetDefault("preview.spacing", 1)
	viper.SetDefault("preview.template_cache_size", 64)
}

// bindEnvironmentVariables binds CHATLIST_ environment variables to Viper keys
func bindEnvironmentVariables() {
	viper.BindEnv("logging.log_file", "CHATLIST_LOG_FILE")
	viper.BindEnv("logging.level", "CHATLIST_LOG_LEVEL")
	viper.BindEnv("logging.preserve", "CHATLIST_LOG_PRESERVE")
	viper.BindEnv("grouping.max_interval", "CHATLIST_GROUPING_MAX_INTERVAL")
	viper.BindEnv("grouping.jumbomoji_limit", "CHATLIST_JUMBOMOJI_LIMIT")
	viper.BindEnv("layout.estimated_item_height", "CHATLIST_ESTIMATED_ITEM_HEIGHT")
	viper.BindEnv("layout.spacing", "CHATLIST_SPACING")
	viper.BindEnv("preview.width", "CHATLIST_PREVIEW_WIDTH")
	viper.BindEnv("preview.height", "CHATLIST_PREVIEW_HEIGHT")
}

// processDurations converts string durations to time.Duration
func processDurations(cfg *Config) error {
	if cfg.Grouping.MaxIntervalStr != "" {
		d, err := time.ParseDuration(cfg.Grouping.MaxIntervalStr)
		if err != nil {
			return fmt.Errorf("invalid grouping.max_interval: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("invalid grouping.max_interval: %s is negative", d)
		}
		cfg.Grouping.MaxInterval = d
	} else if cfg.Grouping.MaxInterval == 0 {
		cfg.Grouping.MaxInterval = 60 * time.Second
	}
	return nil
}

// GetConfigFileUsed returns the path to the config file being used
func GetConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
