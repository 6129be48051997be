package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the inventory run configuration.
type Config struct {
	Output         string        `mapstructure:"output"`
	LogFile        string        `mapstructure:"log_file"`
	LogLevel       string        `mapstructure:"log_level"`
	SheetName      string        `mapstructure:"sheet_name"`
	Lock           bool          `mapstructure:"lock"`
	CommandTimeout time.Duration `mapstructure:"command_timeout"`
	HeaderFill     string        `mapstructure:"header_fill"`
}

// Load reads configuration from file and environment. A missing default
// config file is not an error; a missing explicit one is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pcspecs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/pcspecs")
	}

	v.SetDefault("output", "system_info.xlsx")
	v.SetDefault("log_file", "system_info.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("sheet_name", "System Info")
	v.SetDefault("lock", true)
	v.SetDefault("command_timeout", "5s")
	v.SetDefault("header_fill", "FFFF00")

	v.SetEnvPrefix("PCSPECS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
