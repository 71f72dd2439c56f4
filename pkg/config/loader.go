package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed copy per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newCache() *cache {
	return &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

func (c *cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *cache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.onces[key]
	if !ok {
		o = new(sync.Once)
		c.onces[key] = o
	}
	return o
}

func (c *cache) set(key string, v any) {
	c.mu.Lock()
	c.values[key] = v
	c.mu.Unlock()
}

func (c *cache) reset() {
	c.mu.Lock()
	c.values = make(map[string]any)
	c.onces = make(map[string]*sync.Once)
	c.mu.Unlock()
}

var (
	globalCache      = newCache()
	defaultEnvLoaded sync.Once
)

// LoadEnv reads the given .env files into the process environment. Variables
// that are already set are not overridden. Unlike the implicit default .env
// lookup done by Load, a missing file is an error here.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v based on its `env` field tags.
// Each configuration type is parsed once; later calls copy the cached value.
// A parse failure is not cached, so a later call can succeed after the
// environment is fixed.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if cached, ok := globalCache.get(key); ok {
		*v = cached.(T)
		return nil
	}

	var err error
	globalCache.once(key).Do(func() {
		var parsed T
		if parseErr := env.Parse(&parsed); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		globalCache.set(key, parsed)
	})
	if err != nil {
		// Allow a retry on the next call.
		globalCache.mu.Lock()
		delete(globalCache.onces, key)
		globalCache.mu.Unlock()
		return err
	}

	cached, ok := globalCache.get(key)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration so the next Load parses the
// environment again.
func Reset() {
	globalCache.reset()
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
