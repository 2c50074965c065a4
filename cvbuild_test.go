package cvbuild

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AppliesOverrides(t *testing.T) {
	env := MapEnviron{}

	b, err := Resolve(&Params{
		RootDir:    t.TempDir(),
		ModuleRoot: t.TempDir(),
		LibDir:     String("/opt/opencv/lib"),
		Environ:    MapEnviron{},
	}, env)
	require.NoError(t, err)

	assert.Equal(t, MapEnviron{"OPENCV_LIB_DIR": "/opt/opencv/lib"}, env)
	assert.Equal(t, []string{"/opt/opencv/lib"}, b.Layout.Libraries)
}

func TestResolve_MissingRoot(t *testing.T) {
	_, err := Resolve(&Params{RootDir: filepath.Join(t.TempDir(), "nope"), Environ: MapEnviron{}}, nil)

	assert.True(t, errors.Is(err, ErrRootNotFound))
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestBuild_RecordAndState(t *testing.T) {
	b, err := Resolve(&Params{
		RootDir:    t.TempDir(),
		ModuleRoot: t.TempDir(),
		BuildCUDA:  Bool(true),
		GOOS:       "linux",
		Environ:    MapEnviron{},
	}, nil)
	require.NoError(t, err)

	_, _, err = b.State()
	assert.ErrorIs(t, err, ErrNoState)

	require.NoError(t, os.MkdirAll(b.Env.LibDir(), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(b.Env.LibDir(), "libopencv_core.so"), nil, 0644))

	recorded, err := b.Record()
	require.NoError(t, err)
	require.Len(t, recorded.Modules, 1)

	s, ok, err := b.State()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, DefaultOpenCVVersion, s.OpencvVersion)
}
