package buildenv

import "fmt"

// Overrides are directories of a prebuilt OpenCV given by the user. Empty
// fields were not set.
type Overrides struct {
	IncludeDir string `json:"includeDir,omitempty" yaml:"includeDir,omitempty"`
	LibDir     string `json:"libDir,omitempty" yaml:"libDir,omitempty"`
	BinDir     string `json:"binDir,omitempty" yaml:"binDir,omitempty"`
}

// Vars returns the overrides keyed by environment variable
func (o Overrides) Vars() [][2]string {
	return [][2]string{
		{EnvIncludeDir, o.IncludeDir},
		{EnvLibDir, o.LibDir},
		{EnvBinDir, o.BinDir},
	}
}

// IsZero reports whether no override is set
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// Apply publishes the overrides into env. A variable is written only when
// the override is non-empty and differs from the current value; nothing is
// ever unset. It returns the names of the variables it wrote.
func (o Overrides) Apply(env Environ) ([]string, error) {
	var written []string
	for _, kv := range o.Vars() {
		name, value := kv[0], kv[1]
		if value == "" {
			continue
		}
		if cur, ok := env.Lookup(name); ok && cur == value {
			continue
		}
		if err := env.Set(name, value); err != nil {
			return written, fmt.Errorf("setting %s: %w", name, err)
		}
		written = append(written, name)
	}
	return written, nil
}
