// Package config provides configuration loading and validation for swapkit
// adapters.
//
// It uses Viper to load configuration from YAML files with environment
// variable overrides, and godotenv to load a .env file first so local
// secrets (like SWAPKIT_API_KEY) never live in the config file.
//
// # Usage
//
//	cfg, err := config.Load[jupiter.Config]("config.yml")
//
// Environment variables override file values using the SWAPKIT_ prefix with
// underscore-separated paths (e.g. SWAPKIT_LOGGING_LEVEL).
package config
