// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub GitHubConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token string
}

// LoadConfig initializes and loads configuration from environment
// variables. A missing token is a fatal configuration error, reported
// here before any fetch can occur.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.BindEnv("github.token", "GITHUB_TOKEN")

	config := &Config{
		GitHub: GitHubConfig{
			Token: v.GetString("github.token"),
		},
	}

	if config.GitHub.Token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}
	return config, nil
}
