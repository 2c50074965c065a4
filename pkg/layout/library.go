package layout

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const opencvPrefix = "opencv_"

// FindLibrary searches for a library by name, e.g. "opencv_core". Shared
// libraries are preferred over static ones. Windows version suffixes
// ("opencv_core3416") are ignored when matching.
func (l *Layout) FindLibrary(name string) *Library {
	all := l.FindAllLibraries()

	for _, ext := range LibraryExtensions(l.GOOS) {
		for _, lib := range all {
			if lib.Type != ext {
				continue
			}
			if lib.Name == name || trimVersion(lib.Name) == name {
				return lib
			}
		}
	}

	return nil
}

// FindAllLibraries returns all libraries in the layout's library directories
func (l *Layout) FindAllLibraries() []*Library {
	var libraries []*Library
	extensions := LibraryExtensions(l.GOOS)

	seen := make(map[string]bool) // Avoid duplicates

	for _, dir := range l.Libraries {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			name := entry.Name()

			for _, ext := range extensions {
				if !strings.HasSuffix(name, ext) && !strings.Contains(name, ext+".") {
					continue
				}

				fullPath := filepath.Join(dir, name)
				if seen[fullPath] {
					break
				}
				seen[fullPath] = true

				libName := parseLibraryName(name)
				libraries = append(libraries, &Library{
					Name:     libName,
					Module:   moduleName(libName),
					Path:     fullPath,
					Type:     ext,
					IsStatic: isStatic(ext),
				})
				break
			}
		}
	}

	return libraries
}

// HasLibrary checks if a library exists in the layout
func (l *Layout) HasLibrary(name string) bool {
	return l.FindLibrary(name) != nil
}

// Modules returns the sorted, unique OpenCV modules that were built
func (l *Layout) Modules() []string {
	seen := make(map[string]bool)
	var modules []string

	for _, lib := range l.FindAllLibraries() {
		if lib.Module == "" || seen[lib.Module] {
			continue
		}
		seen[lib.Module] = true
		modules = append(modules, lib.Module)
	}

	sort.Strings(modules)
	return modules
}

// ModuleLibraries returns one library per OpenCV module, preferring shared
// libraries, sorted by module name
func (l *Layout) ModuleLibraries() []*Library {
	byModule := make(map[string]*Library)

	for _, lib := range l.FindAllLibraries() {
		if lib.Module == "" {
			continue
		}
		if cur, ok := byModule[lib.Module]; ok && (!cur.IsStatic || lib.IsStatic) {
			continue
		}
		byModule[lib.Module] = lib
	}

	libs := make([]*Library, 0, len(byModule))
	for _, lib := range byModule {
		libs = append(libs, lib)
	}
	sort.Slice(libs, func(i, j int) bool { return libs[i].Module < libs[j].Module })
	return libs
}

// CompilerFlags returns -I flags for the existing include directories, -L
// flags for the library directories and one -l flag per OpenCV module
func (l *Layout) CompilerFlags() *CompilerFlags {
	flags := &CompilerFlags{}

	for _, dir := range l.Includes {
		if dirExists(dir) {
			flags.IncludeFlags = append(flags.IncludeFlags, "-I"+dir)
		}
	}

	for _, dir := range l.Libraries {
		flags.LibraryFlags = append(flags.LibraryFlags, "-L"+dir)
	}

	for _, lib := range l.ModuleLibraries() {
		flags.LinkFlags = append(flags.LinkFlags, "-l"+lib.Name)
	}

	return flags
}

// parseLibraryName strips the lib prefix, the extension and any version from
// a file name: libopencv_core.so.3.4 -> opencv_core
func parseLibraryName(file string) string {
	name := strings.TrimPrefix(file, "lib")
	return strings.Split(name, ".")[0]
}

// moduleName maps opencv_core and opencv_core3416 to core
func moduleName(libName string) string {
	if !strings.HasPrefix(libName, opencvPrefix) {
		return ""
	}
	return trimVersion(strings.TrimPrefix(libName, opencvPrefix))
}

func trimVersion(name string) string {
	return strings.TrimRight(name, "0123456789")
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
