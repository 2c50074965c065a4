package layout

import (
	"github.com/arc-language/cvbuild/pkg/buildenv"
)

// New returns the layout of the build described by env. A directory
// override replaces the derived directory of the same kind.
func New(env *buildenv.BuildEnv) *Layout {
	o := env.Overrides()

	l := &Layout{GOOS: env.GOOS()}

	if o.IncludeDir != "" {
		l.Includes = []string{o.IncludeDir}
	} else {
		l.Includes = []string{env.Include4Dir(), env.IncludeDir()}
	}

	if o.LibDir != "" {
		l.Libraries = []string{o.LibDir}
	} else {
		l.Libraries = []string{env.LibDir()}
	}

	if o.BinDir != "" {
		l.Binaries = []string{o.BinDir}
	} else {
		l.Binaries = []string{env.BinDir()}
	}

	return l
}
