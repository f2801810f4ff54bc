package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Demo        DemoConfig        `mapstructure:"demo"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Map MapConfig `mapstructure:"map"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Width         int `mapstructure:"width"`
	Height        int `mapstructure:"height"`
	TreesRatio    int `mapstructure:"trees_ratio"`
	CityRatio     int `mapstructure:"city_ratio"`
	WaterRatio    int `mapstructure:"water_ratio"`
	BuildingRatio int `mapstructure:"building_ratio"`
	RoadLength    int `mapstructure:"road_length"`
	SectorCount   int `mapstructure:"sector_count"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig holds demo binary configuration
type DemoConfig struct {
	Players  int   `mapstructure:"players"`
	MaxTurns int   `mapstructure:"max_turns"`
	Seed     int64 `mapstructure:"seed"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Map defaults
	v.SetDefault("game.map.width", 10)
	v.SetDefault("game.map.height", 10)
	v.SetDefault("game.map.trees_ratio", 8)
	v.SetDefault("game.map.city_ratio", 25)
	v.SetDefault("game.map.water_ratio", 20)
	v.SetDefault("game.map.building_ratio", 2)
	v.SetDefault("game.map.road_length", 10)
	v.SetDefault("game.map.sector_count", 2)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Demo defaults
	v.SetDefault("demo.players", 2)
	v.SetDefault("demo.max_turns", 20)
	v.SetDefault("demo.seed", 0)

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
}

// Init loads configuration from file, environment and defaults
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/hexfront")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("HEXFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If we have a specific config path and it doesn't exist, that's ok - use defaults
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate checks configuration consistency
func Validate(c *Config) error {
	if c.Game.Map.Width <= 0 || c.Game.Map.Height <= 0 {
		return fmt.Errorf("game.map dimensions must be positive")
	}
	if c.Game.Map.TreesRatio < 0 || c.Game.Map.CityRatio < 0 || c.Game.Map.WaterRatio < 0 {
		return fmt.Errorf("game.map terrain ratios must be non-negative")
	}
	if c.Game.Map.BuildingRatio < 0 {
		return fmt.Errorf("game.map.building_ratio must be non-negative")
	}
	if c.Game.Map.RoadLength < 0 {
		return fmt.Errorf("game.map.road_length must be non-negative")
	}
	if c.Game.Map.SectorCount < 0 {
		return fmt.Errorf("game.map.sector_count must be non-negative")
	}
	if c.Demo.Players < 1 {
		return fmt.Errorf("demo.players must be at least 1")
	}
	if c.Demo.MaxTurns < 0 {
		return fmt.Errorf("demo.max_turns must be non-negative")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}
	return nil
}
