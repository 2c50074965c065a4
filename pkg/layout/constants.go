package layout

// LibraryExtensions returns file extensions to look for on goos
func LibraryExtensions(goos string) []string {
	switch goos {
	case "darwin":
		return []string{".dylib", ".a"}
	case "windows":
		return []string{".dll", ".lib"}
	default: // linux, etc.
		return []string{".so", ".a"}
	}
}

// SharedLibraryExtensions returns only shared library extensions
func SharedLibraryExtensions(goos string) []string {
	switch goos {
	case "darwin":
		return []string{".dylib"}
	case "windows":
		return []string{".dll"}
	default:
		return []string{".so"}
	}
}

func isStatic(ext string) bool {
	return ext == ".a" || ext == ".lib"
}
