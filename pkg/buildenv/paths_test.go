package buildenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths_Composition(t *testing.T) {
	moduleRoot := filepath.Join("/", "home", "me", ".cache", "cvbuild")
	e := &BuildEnv{version: "3.4.16", moduleRoot: moduleRoot, goos: "linux"}

	root := filepath.Join(moduleRoot, "opencv-3.4.16")
	assert.Equal(t, root, e.RootBuildDir())
	assert.Equal(t, filepath.Join(root, "opencv"), e.SrcDir())
	assert.Equal(t, filepath.Join(root, "opencv_contrib"), e.ContribSrcDir())
	assert.Equal(t, filepath.Join(root, "opencv_contrib", "modules"), e.ContribModulesDir())
	assert.Equal(t, filepath.Join(root, "build"), e.BuildDir())
	assert.Equal(t, filepath.Join(root, "build", "include"), e.IncludeDir())
	assert.Equal(t, filepath.Join(root, "build", "include", "opencv4"), e.Include4Dir())
	assert.Equal(t, filepath.Join(root, "auto-build.json"), e.AutoBuildFile())
}

func TestPaths_FlagsChangeRoot(t *testing.T) {
	plain := &BuildEnv{version: "4.5.5", moduleRoot: "/m"}
	cuda := &BuildEnv{version: "4.5.5", moduleRoot: "/m", buildWithCUDA: true}

	assert.Equal(t, filepath.Join("/m", "opencv-4.5.5"), plain.RootBuildDir())
	assert.Equal(t, filepath.Join("/m", "opencv-4.5.5-39466"), cuda.RootBuildDir())
}

func TestPaths_PlatformBranch(t *testing.T) {
	tests := []struct {
		goos string
		lib  string
		bin  string
	}{
		{goos: "windows", lib: filepath.Join("lib", "Release"), bin: filepath.Join("bin", "Release")},
		{goos: "linux", lib: "lib", bin: "bin"},
		{goos: "darwin", lib: "lib", bin: "bin"},
		{goos: "freebsd", lib: "lib", bin: "bin"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			e := &BuildEnv{version: "3.4.16", moduleRoot: "/m", goos: tt.goos}
			assert.Equal(t, filepath.Join(e.BuildDir(), tt.lib), e.LibDir())
			assert.Equal(t, filepath.Join(e.BuildDir(), tt.bin), e.BinDir())
		})
	}
}
