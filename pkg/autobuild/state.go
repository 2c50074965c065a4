// Package autobuild reads and writes auto-build.json, the record an
// orchestrator keeps of the last OpenCV build in a build tree.
package autobuild

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arc-language/cvbuild/pkg/buildenv"
	"github.com/arc-language/cvbuild/pkg/layout"
)

// ErrNoState indicates no auto-build.json exists yet
var ErrNoState = errors.New("no auto-build state")

// Module is one OpenCV module and the library that provides it
type Module struct {
	OpencvModule string `json:"opencvModule"`
	LibPath      string `json:"libPath"`
}

// State is the content of auto-build.json
type State struct {
	OpencvVersion  string   `json:"opencvVersion"`
	AutoBuildFlags string   `json:"autoBuildFlags"`
	Modules        []Module `json:"modules"`
}

// New records the build described by env with the modules found in l
func New(env *buildenv.BuildEnv, l *layout.Layout) *State {
	s := &State{
		OpencvVersion:  env.Version(),
		AutoBuildFlags: env.AutoBuildFlags(),
		Modules:        []Module{},
	}
	for _, lib := range l.ModuleLibraries() {
		s.Modules = append(s.Modules, Module{OpencvModule: lib.Module, LibPath: lib.Path})
	}
	return s
}

// Load reads a state file. It returns ErrNoState when the file is missing.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("reading state: %w", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing state %s: %w", path, err)
	}

	return &s, nil
}

// Save writes s to path, creating the parent directory
func Save(path string, s *State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}

	return nil
}

// Mismatch explains why a recorded build cannot be reused. An empty
// Mismatch means the build matches.
type Mismatch []string

func (m Mismatch) OK() bool { return len(m) == 0 }

// Compare checks s against the configuration in env. Modules recorded in
// s must still exist on disk.
func (s *State) Compare(env *buildenv.BuildEnv) Mismatch {
	var m Mismatch

	if s.OpencvVersion != env.Version() {
		m = append(m, fmt.Sprintf("opencv version %q differs from %q", s.OpencvVersion, env.Version()))
	}
	if s.AutoBuildFlags != env.AutoBuildFlags() {
		m = append(m, fmt.Sprintf("build flags %q differ from %q", s.AutoBuildFlags, env.AutoBuildFlags()))
	}
	if len(s.Modules) == 0 {
		m = append(m, "no modules recorded")
	}
	for _, mod := range s.Modules {
		if _, err := os.Stat(mod.LibPath); err != nil {
			m = append(m, fmt.Sprintf("library for module %s is missing: %s", mod.OpencvModule, mod.LibPath))
		}
	}

	return m
}
