package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Discovery locates candidate plugin files in a list of search directories.
// It only finds files by naming convention; nothing is loaded or linked.
type Discovery struct {
	paths []string
}

// NewDiscovery returns a Discovery seeded with the default search paths for
// the current platform.
func NewDiscovery() *Discovery {
	return &Discovery{paths: defaultSearchPaths()}
}

// DiscoveryWithPaths returns a Discovery that scans exactly the given paths.
func DiscoveryWithPaths(paths []string) *Discovery {
	return &Discovery{paths: append([]string(nil), paths...)}
}

// AddPath appends a search directory. Duplicate and overlapping paths are
// legal; they are simply scanned again.
func (d *Discovery) AddPath(path string) {
	d.paths = append(d.paths, path)
}

// SearchPaths returns the configured search directories in scan order.
func (d *Discovery) SearchPaths() []string {
	return append([]string(nil), d.paths...)
}

// Candidates scans every search path and collects regular files carrying a
// native-module extension. Missing or non-directory paths are skipped, as are
// directories the process may not list; any other listing failure aborts the
// scan.
func (d *Discovery) Candidates() ([]string, error) {
	var found []string
	for _, dir := range d.paths {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				continue
			}
			return nil, fmt.Errorf("list plugin dir %s: %w", dir, err)
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if hasModuleExt(entry.Name()) {
				found = append(found, filepath.Join(dir, entry.Name()))
			}
		}
	}
	return found, nil
}

// FindByName returns the first candidate whose filename stem is name or
// "lib"+name. The second return value reports whether anything matched.
func (d *Discovery) FindByName(name string) (string, bool, error) {
	candidates, err := d.Candidates()
	if err != nil {
		return "", false, err
	}
	for _, path := range candidates {
		base := filepath.Base(path)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if stem == name || stem == "lib"+name {
			return path, true, nil
		}
	}
	return "", false, nil
}

// hasModuleExt reports whether name carries a native-module extension,
// compared case-insensitively.
func hasModuleExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".so", ".dylib", ".dll":
		return true
	}
	return false
}

// defaultSearchPaths builds the platform defaults: a user plugins directory
// plus the conventional system-wide locations. Unresolvable entries are
// omitted rather than failing.
func defaultSearchPaths() []string {
	var paths []string

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".splash", "plugins"))
	}

	switch runtime.GOOS {
	case "windows":
		if programFiles := os.Getenv("ProgramFiles"); programFiles != "" {
			paths = append(paths, filepath.Join(programFiles, "splash", "plugins"))
		}
	case "plan9", "js", "wasip1":
		// no conventional system plugin directories
	default:
		paths = append(paths,
			"/usr/local/lib/splash/plugins",
			"/usr/lib/splash/plugins",
		)
	}
	return paths
}
