package buildenv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesApply(t *testing.T) {
	env := &recordingEnviron{vars: MapEnviron{
		EnvIncludeDir: "/opt/opencv/include",
		EnvLibDir:     "/old/lib",
	}}
	o := Overrides{IncludeDir: "/opt/opencv/include", LibDir: "/opt/opencv/lib"}

	written, err := o.Apply(env)
	require.NoError(t, err)

	assert.Equal(t, []string{EnvLibDir}, written)
	assert.Equal(t, []string{EnvLibDir}, env.writes, "unchanged value is not rewritten")
	assert.Equal(t, "/opt/opencv/lib", env.vars[EnvLibDir])
	_, ok := env.vars[EnvBinDir]
	assert.False(t, ok, "empty override is not written")
}

func TestOverridesApply_Idempotent(t *testing.T) {
	env := &recordingEnviron{vars: MapEnviron{}}
	o := Overrides{IncludeDir: "/i", LibDir: "/l", BinDir: "/b"}

	written, err := o.Apply(env)
	require.NoError(t, err)
	assert.Equal(t, []string{EnvIncludeDir, EnvLibDir, EnvBinDir}, written)

	written, err = o.Apply(env)
	require.NoError(t, err)
	assert.Empty(t, written)
	assert.Len(t, env.writes, 3)
}

func TestOverridesApply_NeverClears(t *testing.T) {
	env := MapEnviron{EnvBinDir: "/usr/bin"}

	written, err := Overrides{}.Apply(env)
	require.NoError(t, err)

	assert.Empty(t, written)
	assert.Equal(t, "/usr/bin", env[EnvBinDir])
}

func TestOverridesApply_Error(t *testing.T) {
	o := Overrides{IncludeDir: "/i", LibDir: "/l"}

	written, err := o.Apply(failingEnviron{})

	assert.ErrorContains(t, err, EnvIncludeDir)
	assert.Empty(t, written)
}

func TestOverridesApply_OSEnviron(t *testing.T) {
	t.Setenv(EnvIncludeDir, "/before")

	written, err := Overrides{IncludeDir: "/after"}.Apply(OSEnviron{})
	require.NoError(t, err)

	assert.Equal(t, []string{EnvIncludeDir}, written)
	v, _ := OSEnviron{}.Lookup(EnvIncludeDir)
	assert.Equal(t, "/after", v)
}

type failingEnviron struct{}

func (failingEnviron) Lookup(string) (string, bool) { return "", false }

func (failingEnviron) Set(string, string) error { return errors.New("read-only") }
