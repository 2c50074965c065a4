package buildenv

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

const (
	// ManifestFile is looked up directly inside the root directory
	ManifestFile = "package.json"

	// ManifestSection is the only part of the manifest that is read
	ManifestSection = "opencv4nodejs"
)

// Section is the decoded opencv4nodejs section of a manifest
type Section map[string]any

// Value returns the string form of key. Values that are falsy in the
// manifest (missing, null, false, 0, "") return "". Objects and arrays
// are returned as compact JSON.
func (s Section) Value(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		// objects and arrays keep their JSON form
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Keys returns the section's keys in sorted order
func (s Section) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ManifestPath returns the manifest location for a root directory
func ManifestPath(rootDir string) string {
	return filepath.Join(rootDir, ManifestFile)
}

// ReadManifestSection reads the opencv4nodejs section of <rootDir>/package.json.
// A missing manifest yields an empty section and no error. A manifest without
// the section yields an empty section and an advisory log line. Malformed
// JSON is returned as an error.
func ReadManifestSection(rootDir string, logger *slog.Logger) (Section, error) {
	if logger == nil {
		logger = discardLogger()
	}
	path := ManifestPath(rootDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Section{}, nil
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	logger.Info("looking for opencv4nodejs options", "manifest", path)

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	raw, ok := doc[ManifestSection]
	if !ok || string(raw) == "null" {
		logger.Info("no opencv4nodejs section found", "manifest", path)
		return Section{}, nil
	}

	var section Section
	if err := json.Unmarshal(raw, &section); err != nil {
		return nil, &ConfigError{Op: "parse manifest section", Path: path, Err: err}
	}
	logger.Info("found opencv4nodejs section", "manifest", path)

	return section, nil
}
