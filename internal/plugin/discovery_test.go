package plugin

import (
	"os"
	"path/filepath"
	"testing"
)

func writePluginFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
	return path
}

func TestCandidates(t *testing.T) {
	dir := t.TempDir()
	want1 := writePluginFile(t, dir, "libapache.so")
	want2 := writePluginFile(t, dir, "syslog.DLL") // extension match is case-insensitive
	writePluginFile(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "nested.so"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	d := DiscoveryWithPaths([]string{dir})
	got, err := d.Candidates()
	if err != nil {
		t.Fatalf("Candidates returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Candidates = %v, want 2 entries", got)
	}
	seen := map[string]bool{got[0]: true, got[1]: true}
	if !seen[want1] || !seen[want2] {
		t.Fatalf("Candidates = %v, want %v and %v", got, want1, want2)
	}
}

func TestCandidatesSkipsMissingPaths(t *testing.T) {
	d := DiscoveryWithPaths([]string{
		filepath.Join(t.TempDir(), "does-not-exist"),
	})

	got, err := d.Candidates()
	if err != nil {
		t.Fatalf("Candidates returned error for a missing path: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Candidates = %v, want empty", got)
	}
}

func TestCandidatesSkipsNonDirectoryPaths(t *testing.T) {
	dir := t.TempDir()
	file := writePluginFile(t, dir, "plain.so")

	d := DiscoveryWithPaths([]string{file})
	got, err := d.Candidates()
	if err != nil {
		t.Fatalf("Candidates returned error for a file path: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Candidates = %v, want empty", got)
	}
}

func TestCandidatesScansDuplicatePathsTwice(t *testing.T) {
	dir := t.TempDir()
	writePluginFile(t, dir, "libapache.so")

	d := DiscoveryWithPaths([]string{dir, dir})
	got, err := d.Candidates()
	if err != nil {
		t.Fatalf("Candidates returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Candidates = %v, want the file listed twice", got)
	}
}

func TestFindByName(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		query   string
		want    string
		wantHit bool
	}{
		{"lib prefix", []string{"libapache.so"}, "apache", "libapache.so", true},
		{"bare stem", []string{"apache.dylib"}, "apache", "apache.dylib", true},
		{"no match", []string{"libnginx.so"}, "apache", "", false},
		{"wrong extension ignored", []string{"apache.txt"}, "apache", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				writePluginFile(t, dir, f)
			}

			d := DiscoveryWithPaths([]string{dir})
			path, found, err := d.FindByName(tt.query)
			if err != nil {
				t.Fatalf("FindByName returned error: %v", err)
			}
			if found != tt.wantHit {
				t.Fatalf("found = %v, want %v", found, tt.wantHit)
			}
			if tt.wantHit && path != filepath.Join(dir, tt.want) {
				t.Fatalf("path = %q, want %q", path, filepath.Join(dir, tt.want))
			}
		})
	}
}

func TestAddPathOrdering(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writePluginFile(t, first, "libapache.so")
	writePluginFile(t, second, "apache.so")

	d := DiscoveryWithPaths([]string{first})
	d.AddPath(second)

	paths := d.SearchPaths()
	if len(paths) != 2 || paths[0] != first || paths[1] != second {
		t.Fatalf("SearchPaths = %v, want [%s %s]", paths, first, second)
	}

	// first match in scan order wins
	path, found, err := d.FindByName("apache")
	if err != nil {
		t.Fatalf("FindByName returned error: %v", err)
	}
	if !found || path != filepath.Join(first, "libapache.so") {
		t.Fatalf("FindByName = %q (found=%v), want the entry from the first path", path, found)
	}
}

func TestDefaultSearchPathsIncludeHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	d := NewDiscovery()
	paths := d.SearchPaths()
	if len(paths) == 0 {
		t.Fatal("NewDiscovery returned no default paths")
	}
	if paths[0] != filepath.Join(home, ".splash", "plugins") {
		t.Fatalf("first default path = %q, want user plugins dir under %q", paths[0], home)
	}
}
