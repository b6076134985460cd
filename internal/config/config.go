// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the glossary lookup service.
type Config struct {
	Environment string
	TableName   string
	LogLevel    logrus.Level
	Port        string
}

// Load reads configuration from environment variables, falling back to a
// .env file when one exists (local runs only; the Lambda environment sets
// variables directly).
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("GLOSSARY_TABLE_NAME", "glossary")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PORT", "8080")

	level, err := logrus.ParseLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", viper.GetString("LOG_LEVEL"), err)
	}

	cfg := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		TableName:   viper.GetString("GLOSSARY_TABLE_NAME"),
		LogLevel:    level,
		Port:        viper.GetString("PORT"),
	}

	if cfg.TableName == "" {
		return nil, fmt.Errorf("GLOSSARY_TABLE_NAME must not be empty")
	}

	return cfg, nil
}
