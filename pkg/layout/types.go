package layout

// Layout lists where the artifacts of one build are located
type Layout struct {
	Includes  []string // Include directories, most specific first
	Libraries []string // Library directories
	Binaries  []string // Binary directories
	GOOS      string   // Platform the build targets
}

// Library represents a found library file
type Library struct {
	Name     string // Library name without lib prefix or extension (e.g., "opencv_core")
	Module   string // OpenCV module (e.g., "core"), empty for non-OpenCV libraries
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dylib", ".dll", ".lib"
	IsStatic bool   // True for .a files
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}
