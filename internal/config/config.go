package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Probe   ProbeConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
	StaticDir      string
}

// ProbeConfig holds latency probe configuration
type ProbeConfig struct {
	Host           string
	Count          int
	ScanCount      int
	TimeoutSeconds int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("STATIC_DIR", "frontend")
	viper.SetDefault("PING_HOST", "8.8.8.8")
	viper.SetDefault("PING_COUNT", 5)
	viper.SetDefault("SCAN_PING_COUNT", 3)
	viper.SetDefault("DIAG_TIMEOUT_SECONDS", 30)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	// Try to read .env file for the current environment
	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // Ignore error - file may not exist

	// Environment variables override .env file values
	viper.AutomaticEnv()

	viper.BindEnv("PORT")
	viper.BindEnv("ENVIRONMENT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("STATIC_DIR")
	viper.BindEnv("PING_HOST")
	viper.BindEnv("PING_COUNT")
	viper.BindEnv("SCAN_PING_COUNT")
	viper.BindEnv("DIAG_TIMEOUT_SECONDS")
	viper.BindEnv("LOG_LEVEL")
	viper.BindEnv("LOG_FORMAT")

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")
	config.Server.StaticDir = viper.GetString("STATIC_DIR")
	config.Probe.Host = viper.GetString("PING_HOST")
	config.Probe.Count = viper.GetInt("PING_COUNT")
	config.Probe.ScanCount = viper.GetInt("SCAN_PING_COUNT")
	config.Probe.TimeoutSeconds = viper.GetInt("DIAG_TIMEOUT_SECONDS")
	config.Logging.Level = viper.GetString("LOG_LEVEL")
	config.Logging.Format = viper.GetString("LOG_FORMAT")

	return &config, nil
}
