package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the parsed value of one configuration type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// cache maps a configuration type to its entry.
	cache sync.Map

	dotenvOnce sync.Once
)

// Load parses environment variables into v according to its env struct tags.
//
// A .env file in the working directory is loaded once, before the first parse;
// variables already set in the environment take precedence. Each configuration
// type is parsed only once: later calls for the same type get the cached value,
// and a failed parse keeps failing with the same error.
//
// Example:
//
//	type ServerConfig struct {
//		Addr string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Idle time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	raw, _ := cache.LoadOrStore(reflect.TypeFor[T](), &entry{})
	e := raw.(*entry)

	e.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
