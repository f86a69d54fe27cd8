// Package config loads PureText configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` in the working directory when no path is given).
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per struct type for the lifetime of the process.
//   - MustLoad and MustLoadEnv panic instead of returning an error, for
//     configuration the binary cannot start without.
//   - ResetCache and ForceReloadConfig drop cached values, which tests need
//     after changing the environment.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string        `env:"HTTP_ADDR" envDefault:"127.0.0.1:7878"`
//	    Wait time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrConfigNotLoaded and
// ErrNilPointer and can be compared with errors.Is.
package config
