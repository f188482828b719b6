// Package config loads the CLI configuration from a YAML file with
// sensible defaults for a stock Paperang P1.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Printer PrinterConfig `mapstructure:"printer"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// PrinterConfig configures the device connection and print defaults.
type PrinterConfig struct {
	Device             string `mapstructure:"device"`
	Baud               int    `mapstructure:"baud"`
	ReadTimeoutSeconds int    `mapstructure:"readTimeoutSeconds"`
	HeatDensity        int    `mapstructure:"heatDensity"`
	FeedPadding        int    `mapstructure:"feedPadding"`
}

// LoggerConfig configures log output and rotation.
type LoggerConfig struct {
	Level         string `mapstructure:"level"`
	Format        string `mapstructure:"format"`
	FilePath      string `mapstructure:"filePath"`
	MaxSizeMB     int    `mapstructure:"maxSizeMB"`
	MaxBackups    int    `mapstructure:"maxBackups"`
	MaxAgeDays    int    `mapstructure:"maxAgeDays"`
	EnableConsole bool   `mapstructure:"enableConsole"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("printer.device", "/dev/rfcomm0")
	v.SetDefault("printer.baud", 115200)
	v.SetDefault("printer.readTimeoutSeconds", 60)
	v.SetDefault("printer.heatDensity", 75)
	v.SetDefault("printer.feedPadding", 300)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.filePath", "")
	v.SetDefault("logger.maxSizeMB", 10)
	v.SetDefault("logger.maxBackups", 3)
	v.SetDefault("logger.maxAgeDays", 30)
	v.SetDefault("logger.enableConsole", true)
}

// Load reads the configuration at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
