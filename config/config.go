package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Environment string `mapstructure:"environment"`

	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Database struct {
		Host          string `mapstructure:"host"`
		Port          string `mapstructure:"port"`
		User          string `mapstructure:"user"`
		Password      string `mapstructure:"password"`
		Name          string `mapstructure:"name"`
		RunMigrations bool   `mapstructure:"run_migrations"`
	} `mapstructure:"database"`

	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`

	JWT struct {
		AccessSecret  string        `mapstructure:"access_secret"`
		RefreshSecret string        `mapstructure:"refresh_secret"`
		AccessTTL     time.Duration `mapstructure:"access_ttl"`
		RefreshTTL    time.Duration `mapstructure:"refresh_ttl"`
	} `mapstructure:"jwt"`

	Bcrypt struct {
		Cost int `mapstructure:"cost"`
	} `mapstructure:"bcrypt"`
}

// LoadConfig reads config.yml from the given path and applies environment
// variable overrides (nested keys use underscores, e.g. JWT_ACCESS_SECRET).
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("environment", "development")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("jwt.access_ttl", 15*time.Minute)
	viper.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	viper.SetDefault("bcrypt.cost", bcrypt.DefaultCost)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that must be correct before the server
// starts. Signing secrets are deliberately not required here: login fails
// closed with a 500 when they are absent instead of preventing startup.
func (c *Config) Validate() error {
	if c.Bcrypt.Cost < bcrypt.MinCost || c.Bcrypt.Cost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d outside valid range [%d, %d]", c.Bcrypt.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.JWT.AccessTTL <= 0 {
		return fmt.Errorf("jwt access_ttl must be positive, got %s", c.JWT.AccessTTL)
	}
	if c.JWT.RefreshTTL <= 0 {
		return fmt.Errorf("jwt refresh_ttl must be positive, got %s", c.JWT.RefreshTTL)
	}
	return nil
}
