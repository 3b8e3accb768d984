package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if settings.Racer != DefaultRacer {
		t.Fatalf("expected default racer, got %q", settings.Racer)
	}
	if settings.Timeout() != time.Duration(DefaultTimeoutSeconds)*time.Second {
		t.Fatalf("expected default timeout, got %s", settings.Timeout())
	}
}

func TestLoadReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `racer = "/opt/racer/bin/racer"
search_paths = ["~/rust/src", "/usr/local/rust/src"]
timeout_seconds = 30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Racer != "/opt/racer/bin/racer" {
		t.Fatalf("unexpected racer: %q", settings.Racer)
	}
	if len(settings.SearchPaths) != 2 || settings.SearchPaths[0] != "~/rust/src" {
		t.Fatalf("unexpected search paths: %#v", settings.SearchPaths)
	}
	if settings.Timeout() != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", settings.Timeout())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`search_paths = ["/rust/src"]`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Racer != DefaultRacer {
		t.Fatalf("absent keys must keep defaults, got %q", settings.Racer)
	}
	if len(settings.SearchPaths) != 1 {
		t.Fatalf("unexpected search paths: %#v", settings.SearchPaths)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("racer = [not valid"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTimeoutFloorsNonPositiveValues(t *testing.T) {
	settings := Settings{TimeoutSeconds: -5}
	if settings.Timeout() != time.Duration(DefaultTimeoutSeconds)*time.Second {
		t.Fatalf("non-positive timeout must fall back to default, got %s", settings.Timeout())
	}
}

func TestStoreReplaceSwapsSnapshot(t *testing.T) {
	store := NewStore(Settings{Racer: "racer-v1"})
	if store.Snapshot().Racer != "racer-v1" {
		t.Fatalf("unexpected initial snapshot: %#v", store.Snapshot())
	}

	store.Replace(Settings{Racer: "racer-v2", SearchPaths: []string{"/rust/src"}})
	snapshot := store.Snapshot()
	if snapshot.Racer != "racer-v2" || len(snapshot.SearchPaths) != 1 {
		t.Fatalf("unexpected snapshot after replace: %#v", snapshot)
	}
}

func TestStoreSnapshotIsStable(t *testing.T) {
	store := NewStore(Settings{Racer: "racer-v1"})
	snapshot := store.Snapshot()
	store.Replace(Settings{Racer: "racer-v2"})
	if snapshot.Racer != "racer-v1" {
		t.Fatalf("a taken snapshot must not change under replace, got %#v", snapshot)
	}
}
