// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The `.env` file in the working directory is loaded once, if present.
//   - Any struct annotated with `env` tags can be populated.
//   - Each configuration type is parsed once per process and cached.
//
// # Usage
//
//	type TOTPConfig struct {
//	    Period uint `env:"TOTP_PERIOD" envDefault:"30"`
//	    Digits int  `env:"TOTP_DIGITS" envDefault:"6"`
//	}
//
//	var cfg TOTPConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// MustLoad panics instead of returning an error and suits configuration the
// process cannot start without.
//
// # Error Handling
//
//   - `ErrParsingConfig` – env vars could not be parsed into the struct.
//   - `ErrNilPointer` – nil pointer passed to `Load`/`MustLoad`.
package config
