// Package config provides configuration loading and validation.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with .env file support via godotenv. Environment variables
// override file values using underscore-separated paths (e.g.
// CADENCE_TARGET maps to cadence.target).
//
// # Usage
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	}
//
//	var cfg AppConfig
//	err := config.LoadConfig("ticker", &cfg)
package config
