package cvbuild

import (
	"github.com/arc-language/cvbuild/pkg/autobuild"
	"github.com/arc-language/cvbuild/pkg/buildenv"
)

var (
	// ErrRootNotFound indicates the project root directory does not exist
	ErrRootNotFound = buildenv.ErrRootNotFound

	// ErrNoState indicates no auto-build.json was recorded yet
	ErrNoState = autobuild.ErrNoState
)

// ConfigError wraps a configuration failure with the path it concerns
type ConfigError = buildenv.ConfigError
