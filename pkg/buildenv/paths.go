package buildenv

import (
	"path/filepath"

	"github.com/arc-language/cvbuild/pkg/platform"
)

// AutoBuildFileName records what the orchestrator built last time
const AutoBuildFileName = "auto-build.json"

// RootBuildDir returns <module root>/opencv-<version><optHash>
func (e *BuildEnv) RootBuildDir() string {
	return filepath.Join(e.moduleRoot, "opencv-"+e.version+e.OptHash())
}

// SrcDir returns the OpenCV source tree
func (e *BuildEnv) SrcDir() string {
	return filepath.Join(e.RootBuildDir(), "opencv")
}

// ContribSrcDir returns the opencv_contrib source tree
func (e *BuildEnv) ContribSrcDir() string {
	return filepath.Join(e.RootBuildDir(), "opencv_contrib")
}

// ContribModulesDir is passed to CMake as OPENCV_EXTRA_MODULES_PATH
func (e *BuildEnv) ContribModulesDir() string {
	return filepath.Join(e.ContribSrcDir(), "modules")
}

func (e *BuildEnv) BuildDir() string {
	return filepath.Join(e.RootBuildDir(), "build")
}

func (e *BuildEnv) IncludeDir() string {
	return filepath.Join(e.BuildDir(), "include")
}

// Include4Dir is the include directory used by OpenCV 4 installs
func (e *BuildEnv) Include4Dir() string {
	return filepath.Join(e.IncludeDir(), "opencv4")
}

// LibDir returns the library output directory. MSVC builds place it under
// a Release subdirectory.
func (e *BuildEnv) LibDir() string {
	if platform.IsWindows(e.goos) {
		return filepath.Join(e.BuildDir(), "lib", "Release")
	}
	return filepath.Join(e.BuildDir(), "lib")
}

// BinDir returns the binary output directory
func (e *BuildEnv) BinDir() string {
	if platform.IsWindows(e.goos) {
		return filepath.Join(e.BuildDir(), "bin", "Release")
	}
	return filepath.Join(e.BuildDir(), "bin")
}

// AutoBuildFile returns the path of the build state file
func (e *BuildEnv) AutoBuildFile() string {
	return filepath.Join(e.RootBuildDir(), AutoBuildFileName)
}
