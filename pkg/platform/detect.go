// Package platform describes the host an OpenCV build runs on.
package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"slices"
)

// Build tools an OpenCV source build needs on PATH
var buildTools = []string{"git", "cmake", "make", "ninja", "msbuild"}

// Platform represents the detected build host
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	CPUs      int      // Logical processors available to the process
	Available []string // Build tools found on PATH
	Generator string   // Preferred CMake generator
}

// Detect detects the current platform and the build tools on PATH
func Detect() *Platform {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      LogicalCPUs(),
		Available: []string{},
	}

	for _, tool := range buildTools {
		if onPath(tool) {
			p.Available = append(p.Available, tool)
		}
	}

	// Visual Studio generators are picked by CMake itself on Windows
	switch {
	case IsWindows(p.OS):
		p.Generator = ""
	case slices.Contains(p.Available, "ninja"):
		p.Generator = "Ninja"
	case slices.Contains(p.Available, "make"):
		p.Generator = "Unix Makefiles"
	}

	return p
}

// Missing returns the tools required on this OS that were not found
func (p *Platform) Missing() []string {
	required := []string{"git", "cmake"}
	if !IsWindows(p.OS) && p.Generator == "" {
		required = append(required, "make")
	}

	var missing []string
	for _, tool := range required {
		if !slices.Contains(p.Available, tool) {
			missing = append(missing, tool)
		}
	}
	return missing
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (cpus: %d, tools: %v)",
		p.OS, p.Arch, p.CPUs, p.Available)
}

// IsWindows reports whether goos builds with MSVC's Release layout
func IsWindows(goos string) bool {
	return goos == "windows"
}

// LogicalCPUs returns the number of logical CPUs usable by the process
func LogicalCPUs() int {
	return runtime.NumCPU()
}

func onPath(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}
