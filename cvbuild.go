// Package cvbuild resolves where and how OpenCV is built from source.
package cvbuild

import (
	"github.com/arc-language/cvbuild/pkg/autobuild"
	"github.com/arc-language/cvbuild/pkg/buildenv"
	"github.com/arc-language/cvbuild/pkg/layout"
)

// Re-export buildenv types for convenience
type (
	BuildEnv   = buildenv.BuildEnv
	Params     = buildenv.Params
	Overrides  = buildenv.Overrides
	Paths      = buildenv.Paths
	Snapshot   = buildenv.Snapshot
	Environ    = buildenv.Environ
	OSEnviron  = buildenv.OSEnviron
	MapEnviron = buildenv.MapEnviron
	// State is the content of auto-build.json
	State = autobuild.State
)

// DefaultOpenCVVersion is built when no version override is given
const DefaultOpenCVVersion = buildenv.DefaultOpenCVVersion

// New resolves the build environment from p, package.json and the process
// environment
func New(p *Params) (*BuildEnv, error) {
	return buildenv.New(p)
}

// Build bundles a resolved environment with its artifact layout
type Build struct {
	Env    *BuildEnv
	Layout *layout.Layout
}

// Resolve resolves p and publishes its directory overrides into env. A nil
// env leaves every environment untouched.
func Resolve(p *Params, env Environ) (*Build, error) {
	e, err := buildenv.New(p)
	if err != nil {
		return nil, err
	}

	if env != nil {
		if _, err := e.Overrides().Apply(env); err != nil {
			return nil, err
		}
	}

	return &Build{Env: e, Layout: layout.New(e)}, nil
}

// State loads the recorded build and reports whether it can be reused
func (b *Build) State() (*State, bool, error) {
	s, err := autobuild.Load(b.Env.AutoBuildFile())
	if err != nil {
		return nil, false, err
	}
	return s, s.Compare(b.Env).OK(), nil
}

// Record writes auto-build.json for the libraries currently in the build tree
func (b *Build) Record() (*State, error) {
	s := autobuild.New(b.Env, b.Layout)
	if err := autobuild.Save(b.Env.AutoBuildFile(), s); err != nil {
		return nil, err
	}
	return s, nil
}

// String returns a pointer to s
func String(s string) *string { return buildenv.String(s) }

// Bool returns a pointer to b
func Bool(b bool) *bool { return buildenv.Bool(b) }
