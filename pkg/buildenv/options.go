package buildenv

import "log/slog"

// DefaultOpenCVVersion is built when no version override is given
const DefaultOpenCVVersion = "3.4.16"

// Environment variables read by New
const (
	EnvOpenCVVersion    = "OPENCV4NODEJS_AUTOBUILD_OPENCV_VERSION"
	EnvInitCwd          = "INIT_CWD"
	EnvModuleRoot       = "OPENCV_BUILD_ROOT"
	EnvAutoBuildFlags   = "OPENCV4NODEJS_AUTOBUILD_FLAGS"
	EnvBuildCUDA        = "OPENCV4NODEJS_BUILD_CUDA"
	EnvWithoutContrib   = "OPENCV4NODEJS_AUTOBUILD_WITHOUT_CONTRIB"
	EnvDisableAutoBuild = "OPENCV4NODEJS_DISABLE_AUTOBUILD"
	EnvIncludeDir       = "OPENCV_INCLUDE_DIR"
	EnvLibDir           = "OPENCV_LIB_DIR"
	EnvBinDir           = "OPENCV_BIN_DIR"
)

// Kind tells the resolver how an explicit parameter is collapsed to a string
type Kind int

const (
	KindString Kind = iota
	KindBool
)

// Option names one tiered setting: its manifest key, its environment
// variable and its kind.
type Option struct {
	Key    string
	EnvVar string
	Kind   Kind
}

var (
	OptAutoBuildFlags   = Option{Key: "autoBuildFlags", EnvVar: EnvAutoBuildFlags, Kind: KindString}
	OptBuildCUDA        = Option{Key: "autoBuildBuildCuda", EnvVar: EnvBuildCUDA, Kind: KindBool}
	OptWithoutContrib   = Option{Key: "autoBuildWithoutContrib", EnvVar: EnvWithoutContrib, Kind: KindBool}
	OptDisableAutoBuild = Option{Key: "disableAutoBuild", EnvVar: EnvDisableAutoBuild, Kind: KindBool}
	OptIncludeDir       = Option{Key: "opencvIncludeDir", EnvVar: EnvIncludeDir, Kind: KindString}
	OptLibDir           = Option{Key: "opencvLibDir", EnvVar: EnvLibDir, Kind: KindString}
	OptBinDir           = Option{Key: "opencvBinDir", EnvVar: EnvBinDir, Kind: KindString}
)

// Options lists every tiered option in resolution order
var Options = []Option{
	OptAutoBuildFlags,
	OptBuildCUDA,
	OptWithoutContrib,
	OptDisableAutoBuild,
	OptIncludeDir,
	OptLibDir,
	OptBinDir,
}

// Params holds the explicit, highest priority tier. A nil pointer means the
// parameter was not given; a non-nil pointer always wins, even when it
// points at false or "".
type Params struct {
	// Version of OpenCV to build
	Version string

	// RootDir is searched for package.json
	RootDir string

	// ModuleRoot is where opencv-<version> build trees are created
	ModuleRoot string

	AutoBuildFlags   *string
	BuildCUDA        *bool
	WithoutContrib   *bool
	DisableAutoBuild *bool
	IncludeDir       *string
	LibDir           *string
	BinDir           *string

	// GOOS selects the lib/bin layout; defaults to runtime.GOOS
	GOOS string

	// Environ is the environment tier; defaults to the process environment
	Environ Environ

	// Logger for advisory messages; nil discards them
	Logger *slog.Logger
}

// String returns a pointer to s
func String(s string) *string { return &s }

// Bool returns a pointer to b
func Bool(b bool) *bool { return &b }

// lookup collapses an explicit parameter to its string form. Booleans become
// "1" or "".
func (p *Params) lookup(opt Option) (string, bool) {
	if p == nil {
		return "", false
	}

	switch opt.Kind {
	case KindBool:
		var b *bool
		switch opt.Key {
		case OptBuildCUDA.Key:
			b = p.BuildCUDA
		case OptWithoutContrib.Key:
			b = p.WithoutContrib
		case OptDisableAutoBuild.Key:
			b = p.DisableAutoBuild
		}
		if b == nil {
			return "", false
		}
		if *b {
			return "1", true
		}
		return "", true
	default:
		var s *string
		switch opt.Key {
		case OptAutoBuildFlags.Key:
			s = p.AutoBuildFlags
		case OptIncludeDir.Key:
			s = p.IncludeDir
		case OptLibDir.Key:
			s = p.LibDir
		case OptBinDir.Key:
			s = p.BinDir
		}
		if s == nil {
			return "", false
		}
		return *s, true
	}
}

// Resolve returns the value of opt from the first tier that provides it:
// explicit parameter, then a non-empty manifest value, then the
// environment. It returns "" when no tier has a value.
func Resolve(opt Option, p *Params, manifest Section, env Environ) string {
	if v, ok := p.lookup(opt); ok {
		return v
	}
	if v := manifest.Value(opt.Key); v != "" {
		return v
	}
	if env == nil {
		return ""
	}
	return getenv(env, opt.EnvVar)
}

// ResolveBool resolves opt and coerces it: only "" is false
func ResolveBool(opt Option, p *Params, manifest Section, env Environ) bool {
	return Resolve(opt, p, manifest, env) != ""
}
