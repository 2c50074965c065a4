package buildenv

import (
	"errors"
	"fmt"
)

// ErrRootNotFound indicates the resolved root directory does not exist
var ErrRootNotFound = errors.New("directory does not exist")

// ConfigError wraps a configuration failure with the path it concerns
type ConfigError struct {
	Op   string // Operation that failed
	Path string // Path involved, if any
	Err  error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
