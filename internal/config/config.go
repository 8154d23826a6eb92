package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr  string `mapstructure:"listen_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	GinMode     string `mapstructure:"gin_mode"`
	StaticDir   string `mapstructure:"static_dir"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load reads configuration from an optional yaml file with environment
// variable overrides (AUCTIONARY_ prefix). A missing config file is fine;
// defaults cover local development.
func Load(configPath string) (*Config, error) {
	viper.SetConfigType("yaml")

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
	}

	// Set defaults
	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("database_url", "host=localhost user=postgres password=postgres dbname=auctionary port=5432 sslmode=disable")
	viper.SetDefault("gin_mode", "debug")
	viper.SetDefault("static_dir", "./web/dist")
	viper.SetDefault("log_level", "info")

	// Read from environment variables (with priority)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTIONARY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// DATABASE_URL wins when set, so hosted deployments need no prefix
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		viper.Set("database_url", dsn)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
