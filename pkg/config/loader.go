package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry caches one parsed configuration type. A failed parse is not cached,
// so a later call can succeed once the environment is fixed.
type entry struct {
	mu     sync.Mutex
	loaded bool
	value  any
}

var (
	cacheMu sync.Mutex
	cache   = make(map[reflect.Type]*entry)

	dotenvOnce sync.Once
)

// Load parses environment variables into v, once per configuration type.
// The first call also reads a .env file from the working directory when one
// exists. Later calls for the same type return the cached value.
//
//	type Config struct {
//		TagName string `env:"VALIDATION_TAG" envDefault:"validate"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	e := lookup(reflect.TypeFor[T]())
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			return errors.Join(ErrParsingConfig, err)
		}
		e.value, e.loaded = parsed, true
	}

	cached, ok := e.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads variables from the given files, or from .env when none is
// given, into the process environment, overriding variables already set.
// Later files win. Cached configurations are dropped so the next Load sees
// the new values.
func LoadEnv(files ...string) error {
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	ResetCache()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache forgets every loaded configuration.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

func lookup(t reflect.Type) *entry {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	e, ok := cache[t]
	if !ok {
		e = &entry{}
		cache[t] = e
	}
	return e
}
