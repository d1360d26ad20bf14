package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every variable name, nested structs included.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files instead of the default ./.env. Unlike
// the default file, these must exist. Variables already set in the process
// environment are never overridden.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// Load fills v from environment variables according to its `env` struct tags.
//
// The default .env file in the working directory is read once per process if
// it exists; a missing file is not an error.
//
// Example:
//
//	type PollConfig struct {
//		Interval time.Duration `env:"POLL_INTERVAL" envDefault:"100ms"`
//		Timeout  time.Duration `env:"POLL_TIMEOUT" envDefault:"100s"`
//	}
//
//	var cfg PollConfig
//	if err := config.Load(&cfg, config.WithPrefix("APP_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		defaultEnvLoaded.Do(func() {
			// The default file is optional.
			_ = godotenv.Load()
		})
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
