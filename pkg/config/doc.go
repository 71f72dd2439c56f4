// Package config loads typed settings from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file (if any) is read once, then the environment is parsed into
// a struct using `env` and `envDefault` field tags. Each configuration type is
// parsed at most once per process and served from an in-memory cache after
// that.
//
// The inputkit packages expose their own Config structs (formatter.Config,
// dateutil.Config, logger.Config) which are loaded through this package:
//
//	type Config struct {
//	    DecimalSeparator string `env:"FORMAT_DECIMAL_SEPARATOR" envDefault:"."`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv reads additional .env files before the first Load. Reset clears the
// cache, which is mostly useful in tests that change the environment.
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer.
package config
