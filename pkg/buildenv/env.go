package buildenv

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/arc-language/cvbuild/pkg/platform"
)

// BuildEnv is the resolved configuration of one OpenCV build. Its fields are
// fixed once New returns.
type BuildEnv struct {
	version           string
	autoBuildFlags    string
	buildWithCUDA     bool
	withoutContrib    bool
	autoBuildDisabled bool
	rootDir           string
	moduleRoot        string
	goos              string
	overrides         Overrides
	manifest          Section
}

// New resolves a BuildEnv from p, the package.json found in the root
// directory and the environment. The only error it returns is a
// *ConfigError for a root directory that cannot be found.
func New(p *Params) (*BuildEnv, error) {
	if p == nil {
		p = &Params{}
	}
	env := p.Environ
	if env == nil {
		env = OSEnviron{}
	}
	logger := p.Logger
	if logger == nil {
		logger = discardLogger()
	}

	e := &BuildEnv{
		version: resolveVersion(p, env, logger),
		goos:    p.GOOS,
	}
	if e.goos == "" {
		e.goos = runtime.GOOS
	}

	rootDir, err := resolveRootDir(p, env, logger)
	if err != nil {
		return nil, err
	}
	e.rootDir = rootDir

	section, err := ReadManifestSection(rootDir, logger)
	if err != nil {
		logger.Error("failed to parse package.json", "error", err)
		section = Section{}
	}
	if len(section) > 0 {
		logger.Info("opencv4nodejs options are set in package.json")
		for _, key := range section.Keys() {
			logger.Info("package.json option", "key", key, "value", section.Value(key))
		}
	}
	e.manifest = section

	e.autoBuildFlags = Resolve(OptAutoBuildFlags, p, section, env)
	e.buildWithCUDA = ResolveBool(OptBuildCUDA, p, section, env)
	e.withoutContrib = ResolveBool(OptWithoutContrib, p, section, env)
	e.autoBuildDisabled = ResolveBool(OptDisableAutoBuild, p, section, env)
	e.overrides = Overrides{
		IncludeDir: Resolve(OptIncludeDir, p, section, env),
		LibDir:     Resolve(OptLibDir, p, section, env),
		BinDir:     Resolve(OptBinDir, p, section, env),
	}
	e.moduleRoot = resolveModuleRoot(p, env)

	return e, nil
}

func resolveVersion(p *Params, env Environ, logger *slog.Logger) string {
	if p.Version != "" {
		return p.Version
	}
	if v := getenv(env, EnvOpenCVVersion); v != "" {
		logger.Info("using OpenCV version override", "env", EnvOpenCVVersion, "version", v)
		return v
	}
	logger.Info("using default OpenCV version", "env", EnvOpenCVVersion, "version", DefaultOpenCVVersion)
	return DefaultOpenCVVersion
}

func resolveRootDir(p *Params, env Environ, logger *slog.Logger) (string, error) {
	initCwd := getenv(env, EnvInitCwd)
	if initCwd != "" {
		logger.Info("overwriting root path", "env", EnvInitCwd, "path", initCwd)
	}

	root := p.RootDir
	if root == "" {
		root = initCwd
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", &ConfigError{Op: "resolve root", Err: err}
		}
		root = wd
	}

	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return "", &ConfigError{Op: "resolve root", Path: root, Err: ErrRootNotFound}
		}
		return "", &ConfigError{Op: "resolve root", Path: root, Err: err}
	}
	return root, nil
}

// resolveModuleRoot picks where build trees live, defaulting to the user
// cache directory.
func resolveModuleRoot(p *Params, env Environ) string {
	if p.ModuleRoot != "" {
		return p.ModuleRoot
	}
	if v := getenv(env, EnvModuleRoot); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "cvbuild")
	}
	return filepath.Join(home, ".cache", "cvbuild")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Version returns the OpenCV version to build
func (e *BuildEnv) Version() string { return e.version }

// AutoBuildFlags returns the raw extra CMake flags
func (e *BuildEnv) AutoBuildFlags() string { return e.autoBuildFlags }

// BuildWithCUDA reports whether CUDA modules are enabled
func (e *BuildEnv) BuildWithCUDA() bool { return e.buildWithCUDA }

// WithoutContrib reports whether opencv_contrib is excluded
func (e *BuildEnv) WithoutContrib() bool { return e.withoutContrib }

// AutoBuildDisabled reports whether the automatic build is turned off
func (e *BuildEnv) AutoBuildDisabled() bool { return e.autoBuildDisabled }

// RootDir returns the validated project root
func (e *BuildEnv) RootDir() string { return e.rootDir }

// ModuleRoot returns the directory build trees are created in
func (e *BuildEnv) ModuleRoot() string { return e.moduleRoot }

// GOOS returns the platform the layout is computed for
func (e *BuildEnv) GOOS() string { return e.goos }

// Overrides returns the resolved include/lib/bin directory overrides
func (e *BuildEnv) Overrides() Overrides { return e.overrides }

// Manifest returns a copy of the package.json section that was applied
func (e *BuildEnv) Manifest() Section {
	out := make(Section, len(e.manifest))
	for k, v := range e.manifest {
		out[k] = v
	}
	return out
}

// ParseAutoBuildFlags splits the flag string on single spaces. Quoting is
// not supported.
func (e *BuildEnv) ParseAutoBuildFlags() []string {
	if e.autoBuildFlags == "" {
		return []string{}
	}
	return strings.Split(e.autoBuildFlags, " ")
}

// NumberOfCoresAvailable returns the logical CPUs usable by the process
func (e *BuildEnv) NumberOfCoresAvailable() int {
	return platform.LogicalCPUs()
}
