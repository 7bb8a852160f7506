package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MoroniPereira/TIME-SHEET/internal/storage"
)

func TestFileStoreMissingKey(t *testing.T) {
	s := storage.NewFileStore(t.TempDir(), nil)
	if v, ok := s.Get("nope"); ok || v != "" {
		t.Fatalf("Get on missing key = (%q, %v), want empty", v, ok)
	}
}

func TestFileStoreSetGetRemove(t *testing.T) {
	s := storage.NewFileStore(t.TempDir(), nil)

	s.Set(storage.KeyToken, "abc123")
	v, ok := s.Get(storage.KeyToken)
	if !ok || v != "abc123" {
		t.Fatalf("Get after Set = (%q, %v)", v, ok)
	}

	s.Set(storage.KeyToken, "def456")
	if v, _ := s.Get(storage.KeyToken); v != "def456" {
		t.Errorf("Get after overwrite = %q, want def456", v)
	}

	s.Remove(storage.KeyToken)
	if _, ok := s.Get(storage.KeyToken); ok {
		t.Error("key still present after Remove")
	}
	// Removing twice must stay silent.
	s.Remove(storage.KeyToken)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := storage.NewFileStore(dir, nil)
	s.Set("k", "v")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFileStoreUnavailableDirIsNoop(t *testing.T) {
	// Point the store at a path that cannot be created (child of a file).
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := storage.NewFileStore(filepath.Join(blocker, "sub"), nil)
	s.Set("k", "v") // must not panic
	if _, ok := s.Get("k"); ok {
		t.Error("Get returned a value from unavailable storage")
	}
}

func TestMemStore(t *testing.T) {
	s := storage.NewMemStore()
	if _, ok := s.Get("k"); ok {
		t.Fatal("empty store reported a value")
	}
	s.Set("k", "v")
	if v, ok := s.Get("k"); !ok || v != "v" {
		t.Fatalf("Get = (%q, %v)", v, ok)
	}
	s.Remove("k")
	if _, ok := s.Get("k"); ok {
		t.Fatal("key present after Remove")
	}
}
