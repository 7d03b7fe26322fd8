// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their variables with caarlos0/env tags. Load
// reads an optional .env file once (joho/godotenv), parses the struct and caches
// the result per type, so every caller asking for the same type sees the same
// values for the lifetime of the process.
//
// # Usage
//
//	type Config struct {
//		Env     string `env:"APP_ENV" envDefault:"development"`
//		Service string `env:"APP_SERVICE" envDefault:"explorer"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Load returns ErrNilPointer for a nil destination and an error matching
// ErrParsingConfig when parsing fails (for example a missing required variable).
package config
