package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Owner    string     `yaml:"owner,omitempty" env:"HOMEAUDIT_OWNER"`       // identity stamped onto created assessments
	Database string     `yaml:"database,omitempty" env:"HOMEAUDIT_DATABASE"` // path to the SQLite database file
	MQTT     MQTTConfig `yaml:"mqtt,omitempty"`
}

// MQTTConfig holds MQTT broker settings for publishing usage readings
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled" env:"HOMEAUDIT_MQTT_ENABLED"`
	Broker      string `yaml:"broker" env:"HOMEAUDIT_MQTT_BROKER"` // host:port
	Username    string `yaml:"username,omitempty" env:"HOMEAUDIT_MQTT_USERNAME"`
	Password    string `yaml:"password,omitempty" env:"HOMEAUDIT_MQTT_PASSWORD"`
	TopicPrefix string `yaml:"topic_prefix,omitempty" env:"HOMEAUDIT_MQTT_TOPIC_PREFIX"`
}

// Load reads the config file and applies environment variable overrides
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetOwner returns the configured owner identity, or "homeowner" if unset
func (c *Config) GetOwner() string {
	if c.Owner == "" {
		return "homeowner"
	}
	return c.Owner
}

// GetDatabase returns the configured database path, or "assessments.db" if unset
func (c *Config) GetDatabase() string {
	if c.Database == "" {
		return "assessments.db"
	}
	return c.Database
}
