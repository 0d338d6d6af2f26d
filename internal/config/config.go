package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the demo binary.
type Config struct {
	AppName string `mapstructure:"app_name"`
	DataDir string `mapstructure:"data_dir"`

	Logging struct {
		Level  string `mapstructure:"level"`
		SeqURL string `mapstructure:"seq_url"`
	} `mapstructure:"logging"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{
		AppName: "gradedb",
		DataDir: "datasets",
	}
	cfg.Logging.Level = "info"
	return cfg
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("app_name", "gradedb")
	v.SetDefault("data_dir", "datasets")
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
