package buildenv

import "os"

// Environ is the environment variable tier. It is also the target that
// Overrides are published into.
type Environ interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
}

// OSEnviron reads and writes the process environment
type OSEnviron struct{}

func (OSEnviron) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnviron) Set(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnviron is an in-memory environment, used for dry runs
type MapEnviron map[string]string

func (m MapEnviron) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnviron) Set(key, value string) error {
	m[key] = value
	return nil
}

func getenv(env Environ, key string) string {
	v, _ := env.Lookup(key)
	return v
}
